package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"inventory-server/test/functional/driver"
	"io"
	"net/http"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver          *driver.APIDriver
	response           *http.Response
	responseData       map[string]any
	responseListData   []map[string]any
	installationTypeID string
	installationID     string
	schemaIDs          map[string]string
	require            *require.Assertions
	t                  godog.TestingT
}

func NewFeatureContext(baseURL string) *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver(baseURL),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.Then(`^the validation errors should contain code "([^"]*)" for field "([^"]*)"$`, fc.theValidationErrorsShouldContainCodeForField)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the response should contain status information$`, fc.theResponseShouldContainStatusInformation)

	// Installation type steps
	ctx.Given(`^an installation type exists with name "([^"]*)" and code "([^"]*)"$`, fc.anInstallationTypeExistsWithNameAndCode)
	ctx.When(`^I create an installation type with name "([^"]*)" and code "([^"]*)"$`, fc.iCreateAnInstallationTypeWithNameAndCode)
	ctx.When(`^I deactivate the installation type$`, fc.iDeactivateTheInstallationType)

	// Schema steps
	ctx.Given(`^the installation type has the schemas:$`, fc.theInstallationTypeHasTheSchemas)
	ctx.When(`^I sync the schemas:$`, fc.iSyncTheSchemas)
	ctx.When(`^I sync the schemas keeping "([^"]*)" and adding:$`, fc.iSyncTheSchemasKeepingAndAdding)
	ctx.When(`^I list the schemas of the installation type$`, fc.iListTheSchemasOfTheInstallationType)
	ctx.Then(`^the schema list should contain (\d+) schemas$`, fc.theSchemaListShouldContainSchemas)
	ctx.Then(`^the schema "([^"]*)" should keep its id$`, fc.theSchemaShouldKeepItsID)

	// Installation steps
	ctx.Given(`^an installation "([^"]*)" of the installation type exists$`, fc.anInstallationOfTheInstallationTypeExists)
	ctx.Given(`^an installation "([^"]*)" without type exists$`, fc.anInstallationWithoutTypeExists)
	ctx.When(`^I create an installation "([^"]*)" of the installation type$`, fc.iCreateAnInstallationOfTheInstallationType)
	ctx.When(`^I list the installations of the installation type$`, fc.iListTheInstallationsOfTheInstallationType)
	ctx.Then(`^the installation list should contain "([^"]*)"$`, fc.theInstallationListShouldContain)
	ctx.When(`^I delete the installation$`, fc.iDeleteTheInstallation)

	// Property steps
	ctx.When(`^I set the properties:$`, fc.iSetTheProperties)
	ctx.When(`^I get the properties of the installation$`, fc.iGetThePropertiesOfTheInstallation)
	ctx.Then(`^the properties should contain (\d+) entries$`, fc.thePropertiesShouldContainEntries)
	ctx.Then(`^the property "([^"]*)" should have value "([^"]*)"$`, fc.thePropertyShouldHaveValue)
	ctx.Then(`^the property "([^"]*)" should be unset$`, fc.thePropertyShouldBeUnset)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.installationTypeID = ""
	fc.installationID = ""
	fc.schemaIDs = map[string]string{}
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(body *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(body.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
