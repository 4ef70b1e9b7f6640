package internal

import (
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

type InstallationProperty struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	InstallationID       string    `json:"installation_id" gorm:"uniqueIndex:ux_installation_properties_pair;not null"`
	InstallationSchemaID string    `json:"installation_schema_id" gorm:"uniqueIndex:ux_installation_properties_pair;index;not null"`
	Value                string    `json:"value" gorm:"not null"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (InstallationProperty) TableName() string {
	return "installation_properties"
}

func FromPropertyValue(value domain.PropertyValue) InstallationProperty {
	return InstallationProperty{
		ID:                   value.ID.String(),
		InstallationID:       value.InstallationID.String(),
		InstallationSchemaID: value.InstallationSchemaID.String(),
		Value:                value.Value,
		CreatedAt:            value.CreatedAt,
		UpdatedAt:            value.UpdatedAt,
	}
}

func (p InstallationProperty) ToDomain() domain.PropertyValue {
	return domain.PropertyValue{
		ID:                   shareddomain.ID(p.ID),
		InstallationID:       shareddomain.ID(p.InstallationID),
		InstallationSchemaID: shareddomain.ID(p.InstallationSchemaID),
		Value:                p.Value,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
