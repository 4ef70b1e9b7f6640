package steps

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// uniqueCode keeps codes from colliding with rows left by earlier runs.
func uniqueCode(code string) string {
	return fmt.Sprintf("%s_%s", code, strings.ToUpper(uuid.NewString()[:8]))
}

func (fc *FeatureContext) iCreateAnInstallationTypeWithNameAndCode(name, code string) error {
	response, err := fc.apiDriver.CreateInstallationType(name, uniqueCode(code), "created by functional tests")
	if err != nil {
		return err
	}
	fc.response = response

	if response.StatusCode == http.StatusCreated {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(response.Body, &data))
		fc.require.NotEmpty(data["id"])
		fc.installationTypeID = data["id"].(string)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) anInstallationTypeExistsWithNameAndCode(name, code string) error {
	if err := fc.iCreateAnInstallationTypeWithNameAndCode(name, code); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iDeactivateTheInstallationType() error {
	response, err := fc.apiDriver.DeactivateInstallationType(fc.installationTypeID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}
