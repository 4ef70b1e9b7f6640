package internal

import (
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
)

type InstallationTypeResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   utils.Time `json:"created_at"`
	UpdatedAt   utils.Time `json:"updated_at"`
}

type InstallationTypeCreateRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type InstallationTypeUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func ToInstallationTypeResponse(installationType domain.InstallationType) InstallationTypeResponse {
	return InstallationTypeResponse{
		ID:          installationType.ID.String(),
		Name:        string(installationType.Name),
		Code:        installationType.Code.String(),
		Description: string(installationType.Description),
		IsActive:    installationType.IsActive,
		CreatedAt:   utils.NewTime(installationType.CreatedAt),
		UpdatedAt:   utils.NewTime(installationType.UpdatedAt),
	}
}
