package internal

import (
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

type InstallationType struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (InstallationType) TableName() string {
	return "installation_types"
}

func FromInstallationType(value domain.InstallationType) InstallationType {
	return InstallationType{
		ID:          value.ID.String(),
		Name:        string(value.Name),
		Code:        value.Code.String(),
		Description: string(value.Description),
		IsActive:    value.IsActive,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}

func (t InstallationType) ToDomain() domain.InstallationType {
	return domain.InstallationType{
		ID:          shareddomain.ID(t.ID),
		Name:        shareddomain.Name(t.Name),
		Code:        shareddomain.Code(t.Code),
		Description: shareddomain.Description(t.Description),
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
