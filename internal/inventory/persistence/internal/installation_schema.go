package internal

import (
	"encoding/json"
	"fmt"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"

	"gorm.io/datatypes"
)

// UniqueLiveNameIndex keeps names unique per type, ignoring case and soft
// deleted rows. Both postgres and sqlite accept this statement.
const UniqueLiveNameIndex = `CREATE UNIQUE INDEX IF NOT EXISTS ux_installation_schemas_live_name
ON installation_schemas (installation_type_id, lower(name)) WHERE deleted_at IS NULL`

type InstallationSchema struct {
	ID                 string         `json:"id" gorm:"primaryKey"`
	InstallationTypeID string         `json:"installation_type_id" gorm:"index;not null"`
	Name               string         `json:"name" gorm:"not null"`
	Description        string         `json:"description"`
	FieldType          string         `json:"field_type" gorm:"not null"`
	Options            datatypes.JSON `json:"options" gorm:"type:json"`
	Required           bool           `json:"required" gorm:"not null"`
	Position           int            `json:"position" gorm:"not null"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
}

func (InstallationSchema) TableName() string {
	return "installation_schemas"
}

func FromFieldSchema(value domain.FieldSchema) (InstallationSchema, error) {
	options, err := json.Marshal(value.Options())
	if err != nil {
		return InstallationSchema{}, fmt.Errorf("marshaling options: %w", err)
	}

	return InstallationSchema{
		ID:                 value.ID.String(),
		InstallationTypeID: value.InstallationTypeID.String(),
		Name:               string(value.Name),
		Description:        string(value.Description),
		FieldType:          string(value.Type()),
		Options:            datatypes.JSON(options),
		Required:           value.Required,
		Position:           value.Position,
		CreatedAt:          value.CreatedAt,
		UpdatedAt:          value.UpdatedAt,
		DeletedAt:          value.DeletedAt,
	}, nil
}

func (s InstallationSchema) ToDomain() (domain.FieldSchema, error) {
	fieldType, err := domain.ParseFieldType(s.FieldType)
	if err != nil {
		return domain.FieldSchema{}, fmt.Errorf("schema %s: %w", s.ID, err)
	}

	options := make([]string, 0)
	if len(s.Options) > 0 {
		if err := json.Unmarshal(s.Options, &options); err != nil {
			return domain.FieldSchema{}, fmt.Errorf("schema %s: unmarshaling options: %w", s.ID, err)
		}
	}

	kind, err := domain.NewFieldKind(fieldType, options)
	if err != nil {
		return domain.FieldSchema{}, fmt.Errorf("schema %s: %w", s.ID, err)
	}

	return domain.FieldSchema{
		ID:                 shareddomain.ID(s.ID),
		InstallationTypeID: shareddomain.ID(s.InstallationTypeID),
		Name:               shareddomain.Name(s.Name),
		Description:        shareddomain.Description(s.Description),
		Kind:               kind,
		Required:           s.Required,
		Position:           s.Position,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		DeletedAt:          s.DeletedAt,
	}, nil
}
