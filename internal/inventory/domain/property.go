package domain

import (
	"inventory-server/internal/infra/utils"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

// PropertyValue is the stored value of one schema for one installation. The
// value is always kept as text; its meaning comes from the schema kind.
type PropertyValue struct {
	ID                   shareddomain.ID
	InstallationID       shareddomain.ID
	InstallationSchemaID shareddomain.ID
	Value                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func NewPropertyValue(installationID, schemaID shareddomain.ID, value string) PropertyValue {
	now := time.Now()
	return PropertyValue{
		ID:                   shareddomain.ID(utils.GenerateUUID()),
		InstallationID:       installationID,
		InstallationSchemaID: schemaID,
		Value:                value,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// PropertyEntry is a requested assignment of a raw value to a field by name.
type PropertyEntry struct {
	Name  string
	Value string
}

// PropertyWithSchema is the decoded value of a field together with its
// metadata. Value is nil when the installation has no value for the field, or
// when the stored value no longer decodes under the current field type, in
// which case Problem describes why.
type PropertyWithSchema struct {
	Schema  FieldSchema
	Value   any
	Problem *FieldError
}

func (p PropertyWithSchema) IsSet() bool {
	return p.Value != nil
}
