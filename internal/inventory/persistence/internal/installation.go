package internal

import (
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

type Installation struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	Name               string     `json:"name" gorm:"not null"`
	InstallationTypeID *string    `json:"installation_type_id,omitempty" gorm:"index"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Installation) TableName() string {
	return "installations"
}

func FromInstallation(value domain.Installation) Installation {
	var typeID *string
	if value.HasType() {
		id := value.InstallationTypeID.String()
		typeID = &id
	}

	return Installation{
		ID:                 value.ID.String(),
		Name:               string(value.Name),
		InstallationTypeID: typeID,
		CreatedAt:          value.CreatedAt,
		UpdatedAt:          value.UpdatedAt,
		DeletedAt:          value.DeletedAt,
	}
}

func (i Installation) ToDomain() domain.Installation {
	var typeID *shareddomain.ID
	if i.InstallationTypeID != nil && *i.InstallationTypeID != "" {
		id := shareddomain.ID(*i.InstallationTypeID)
		typeID = &id
	}

	return domain.Installation{
		ID:                 shareddomain.ID(i.ID),
		Name:               shareddomain.Name(i.Name),
		InstallationTypeID: typeID,
		CreatedAt:          i.CreatedAt,
		UpdatedAt:          i.UpdatedAt,
		DeletedAt:          i.DeletedAt,
	}
}
