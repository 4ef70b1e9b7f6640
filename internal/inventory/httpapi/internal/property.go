package internal

import (
	"fmt"
	"inventory-server/internal/inventory/domain"
	"strconv"
)

type PropertiesSetRequest struct {
	Properties []PropertyEntryRequest `json:"properties"`
}

// PropertyEntryRequest accepts the value as any JSON scalar. It is turned back
// into its text form before validation.
type PropertyEntryRequest struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type PropertyListResponse struct {
	InstallationID string             `json:"installation_id"`
	Data           []PropertyResponse `json:"data"`
}

type PropertyResponse struct {
	SchemaID    string              `json:"schema_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Type        string              `json:"type"`
	Options     []string            `json:"options"`
	Required    bool                `json:"required"`
	Value       any                 `json:"value"`
	Problem     *FieldErrorResponse `json:"problem,omitempty"`
}

func ToPropertyEntries(request PropertiesSetRequest) ([]domain.PropertyEntry, error) {
	entries := make([]domain.PropertyEntry, len(request.Properties))
	for i, property := range request.Properties {
		raw, err := rawValue(property.Value)
		if err != nil {
			return nil, fmt.Errorf("properties[%d].value: %w", i, err)
		}
		entries[i] = domain.PropertyEntry{Name: property.Name, Value: raw}
	}
	return entries, nil
}

func ToPropertyListResponse(installationID string, properties []domain.PropertyWithSchema) PropertyListResponse {
	data := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		data[i] = PropertyResponse{
			SchemaID:    property.Schema.ID.String(),
			Name:        string(property.Schema.Name),
			Description: string(property.Schema.Description),
			Type:        string(property.Schema.Type()),
			Options:     property.Schema.Options(),
			Required:    property.Schema.Required,
			Value:       property.Value,
		}
		if property.Problem != nil {
			problem := ToFieldErrorResponse(*property.Problem)
			data[i].Problem = &problem
		}
	}
	return PropertyListResponse{InstallationID: installationID, Data: data}
}

func rawValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("value must be a string, number or boolean")
	}
}
