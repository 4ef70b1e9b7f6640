package steps

import (
	"net/http"
)

func (fc *FeatureContext) iCreateAnInstallationOfTheInstallationType(name string) error {
	return fc.createInstallation(name, fc.installationTypeID)
}

func (fc *FeatureContext) anInstallationOfTheInstallationTypeExists(name string) error {
	if err := fc.createInstallation(name, fc.installationTypeID); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) anInstallationWithoutTypeExists(name string) error {
	if err := fc.createInstallation(name, ""); err != nil {
		return err
	}
	fc.require.Equal(http.StatusCreated, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) createInstallation(name, typeID string) error {
	response, err := fc.apiDriver.CreateInstallation(name, typeID)
	if err != nil {
		return err
	}
	fc.response = response

	if response.StatusCode == http.StatusCreated {
		var data map[string]any
		fc.require.NoError(fc.decodeBody(response.Body, &data))
		fc.require.NotEmpty(data["id"])
		fc.installationID = data["id"].(string)
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) iListTheInstallationsOfTheInstallationType() error {
	response, err := fc.apiDriver.ListInstallations(fc.installationTypeID)
	if err != nil {
		return err
	}
	fc.response = response
	fc.require.Equal(http.StatusOK, response.StatusCode)

	data, err := fc.decodePaginatedResponse(response)
	fc.require.NoError(err)
	fc.responseListData = data
	return nil
}

func (fc *FeatureContext) theInstallationListShouldContain(name string) error {
	for _, installation := range fc.responseListData {
		if installation["name"] == name {
			return nil
		}
	}
	fc.require.Failf("installation not found", "installation %q not in the list", name)
	return nil
}

func (fc *FeatureContext) iDeleteTheInstallation() error {
	response, err := fc.apiDriver.DeleteInstallation(fc.installationID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}
