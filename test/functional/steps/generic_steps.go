package steps

import (
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}

	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code")
	return nil
}

func (fc *FeatureContext) theValidationErrorsShouldContainCodeForField(code, field string) error {
	var data struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
			Code  string `json:"code"`
		} `json:"errors"`
	}
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	for _, fieldErr := range data.Errors {
		if fieldErr.Field == field && fieldErr.Code == code {
			return nil
		}
	}
	fc.require.Failf("validation error not found", "expected %s on %s, got %+v", code, field, data.Errors)
	return nil
}
