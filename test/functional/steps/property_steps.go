package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// iSetTheProperties sends every value as a string, rows of name | value.
func (fc *FeatureContext) iSetTheProperties(table *godog.Table) error {
	properties := make([]map[string]any, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		properties = append(properties, map[string]any{
			"name":  row.Cells[0].Value,
			"value": row.Cells[1].Value,
		})
	}

	response, err := fc.apiDriver.SetProperties(fc.installationID, properties)
	if err != nil {
		return err
	}
	fc.response = response

	if response.StatusCode == http.StatusOK {
		return fc.readProperties(response)
	}
	return nil
}

func (fc *FeatureContext) iGetThePropertiesOfTheInstallation() error {
	response, err := fc.apiDriver.GetProperties(fc.installationID)
	if err != nil {
		return err
	}
	fc.response = response

	if response.StatusCode == http.StatusOK {
		return fc.readProperties(response)
	}
	return nil
}

func (fc *FeatureContext) readProperties(response *http.Response) error {
	var data struct {
		InstallationID string           `json:"installation_id"`
		Data           []map[string]any `json:"data"`
	}
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	fc.require.Equal(fc.installationID, data.InstallationID)
	fc.responseListData = data.Data
	return nil
}

func (fc *FeatureContext) thePropertiesShouldContainEntries(count int) error {
	fc.require.Len(fc.responseListData, count)
	return nil
}

func (fc *FeatureContext) thePropertyShouldHaveValue(name, expected string) error {
	property := fc.findProperty(name)
	fc.require.NotNil(property["value"], "property %q is unset", name)
	fc.require.Equal(expected, fmt.Sprint(property["value"]))
	return nil
}

func (fc *FeatureContext) thePropertyShouldBeUnset(name string) error {
	property := fc.findProperty(name)
	fc.require.Nil(property["value"])
	return nil
}

func (fc *FeatureContext) findProperty(name string) map[string]any {
	for _, property := range fc.responseListData {
		if property["name"] == name {
			return property
		}
	}
	fc.require.Failf("property not found", "property %q not in the list", name)
	return nil
}
