package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	response, err := fc.apiDriver.GetHealthz()
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainStatusInformation() error {
	var data map[string]any
	err := fc.decodeBody(fc.response.Body, &data)
	fc.require.NoError(err)

	fc.require.Equal("success", data["status"])
	fc.require.NotEmpty(data["node_id"])
	fc.require.NotEmpty(data["version"])
	fc.require.Contains(data, "commit_hash")

	fc.responseData = data
	return nil
}
