package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/healthz", d.baseURL))
}

func (d *APIDriver) CreateInstallationType(name, code, description string) (*http.Response, error) {
	return d.post("/v1/installation-types", map[string]any{
		"name":        name,
		"code":        code,
		"description": description,
	})
}

func (d *APIDriver) GetInstallationType(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/installation-types/%s", d.baseURL, id))
}

func (d *APIDriver) DeactivateInstallationType(id string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/installation-types/%s/deactivate", d.baseURL, id), "application/json", nil)
}

func (d *APIDriver) ListSchemas(typeID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/installation-types/%s/schemas", d.baseURL, typeID))
}

func (d *APIDriver) SyncSchemas(typeID string, schemas []map[string]any) (*http.Response, error) {
	return d.put(fmt.Sprintf("/v1/installation-types/%s/schemas", typeID), map[string]any{"schemas": schemas})
}

func (d *APIDriver) CreateInstallation(name string, typeID string) (*http.Response, error) {
	body := map[string]any{"name": name}
	if typeID != "" {
		body["installation_type_id"] = typeID
	}
	return d.post("/v1/installations", body)
}

func (d *APIDriver) ListInstallations(typeID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/installations?installation_type_id=%s", d.baseURL, typeID))
}

func (d *APIDriver) DeleteInstallation(id string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/installations/%s", d.baseURL, id), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) GetProperties(installationID string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/installations/%s/properties", d.baseURL, installationID))
}

func (d *APIDriver) SetProperties(installationID string, properties []map[string]any) (*http.Response, error) {
	return d.put(fmt.Sprintf("/v1/installations/%s/properties", installationID), map[string]any{"properties": properties})
}

func (d *APIDriver) post(path string, body any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return d.client.Post(d.baseURL+path, "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) put(path string, body any) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, d.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}
