package internal

import (
	"inventory-server/internal/infra/avro"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

func FromSchemas(installationTypeID shareddomain.ID, schemas []domain.FieldSchema) *avro.AvroInstallationSchemasSynced {
	message := &avro.AvroInstallationSchemasSynced{
		InstallationTypeID: installationTypeID.String(),
		Schemas:            make([]avro.AvroFieldSchema, len(schemas)),
		SyncedAt:           time.Now().UTC(),
	}

	for i, schema := range schemas {
		message.Schemas[i] = avro.AvroFieldSchema{
			ID:          schema.ID.String(),
			Name:        string(schema.Name),
			Description: string(schema.Description),
			Type:        string(schema.Type()),
			Options:     schema.Options(),
			Required:    schema.Required,
			Position:    schema.Position,
			UpdatedAt:   schema.UpdatedAt.UTC(),
		}
	}

	return message
}

// FromProperties carries values in their stored text form. A value that
// cannot be encoded under its schema travels as unset with a problem.
func FromProperties(installationID shareddomain.ID, properties []domain.PropertyWithSchema) *avro.AvroInstallationPropertiesSet {
	message := &avro.AvroInstallationPropertiesSet{
		InstallationID: installationID.String(),
		Properties:     make([]avro.AvroPropertyValue, len(properties)),
		SetAt:          time.Now().UTC(),
	}

	for i, property := range properties {
		entry := avro.AvroPropertyValue{
			SchemaID: property.Schema.ID.String(),
			Name:     string(property.Schema.Name),
			Type:     string(property.Schema.Type()),
		}

		if property.Problem != nil {
			problem := property.Problem.Message
			entry.Problem = &problem
		}

		if property.IsSet() {
			encoded, err := domain.EncodeValue(property.Schema.Kind, property.Value)
			if err != nil {
				problem := err.Error()
				entry.Problem = &problem
			} else {
				entry.Value = &encoded
			}
		}

		message.Properties[i] = entry
	}

	return message
}
