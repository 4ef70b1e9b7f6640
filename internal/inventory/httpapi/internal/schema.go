package internal

import (
	"errors"
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
)

type SchemaListResponse struct {
	Data []SchemaResponse `json:"data"`
}

type SchemaResponse struct {
	ID                 string     `json:"id"`
	InstallationTypeID string     `json:"installation_type_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Type               string     `json:"type"`
	Options            []string   `json:"options"`
	Required           bool       `json:"required"`
	Position           int        `json:"position"`
	CreatedAt          utils.Time `json:"created_at"`
	UpdatedAt          utils.Time `json:"updated_at"`
}

// ErrSchemasMissing rejects a sync body without a schemas list. An empty list
// is accepted and deletes every field.
var ErrSchemasMissing = errors.New("schemas is required")

// SchemaSyncRequest carries the complete desired field set of a type. Fields
// left out are deleted.
type SchemaSyncRequest struct {
	Schemas *[]SchemaRequest `json:"schemas"`
}

type SchemaRequest struct {
	ID          *string  `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Options     []string `json:"options,omitempty"`
	Required    *bool    `json:"required,omitempty"`
}

func ToSchemaPayloads(request SchemaSyncRequest) ([]usecases.SchemaPayload, error) {
	if request.Schemas == nil {
		return nil, ErrSchemasMissing
	}

	schemas := *request.Schemas
	payloads := make([]usecases.SchemaPayload, len(schemas))
	for i, schema := range schemas {
		payloads[i] = usecases.SchemaPayload{
			Name:        schema.Name,
			Description: schema.Description,
			Type:        schema.Type,
			Options:     schema.Options,
			Required:    schema.Required,
		}
		if schema.ID != nil {
			id := shareddomain.ID(*schema.ID)
			payloads[i].ID = &id
		}
	}
	return payloads, nil
}

func ToSchemaResponse(schema domain.FieldSchema) SchemaResponse {
	return SchemaResponse{
		ID:                 schema.ID.String(),
		InstallationTypeID: schema.InstallationTypeID.String(),
		Name:               string(schema.Name),
		Description:        string(schema.Description),
		Type:               string(schema.Type()),
		Options:            schema.Options(),
		Required:           schema.Required,
		Position:           schema.Position,
		CreatedAt:          utils.NewTime(schema.CreatedAt),
		UpdatedAt:          utils.NewTime(schema.UpdatedAt),
	}
}

func ToSchemaListResponse(schemas []domain.FieldSchema) SchemaListResponse {
	data := make([]SchemaResponse, len(schemas))
	for i, schema := range schemas {
		data[i] = ToSchemaResponse(schema)
	}
	return SchemaListResponse{Data: data}
}
