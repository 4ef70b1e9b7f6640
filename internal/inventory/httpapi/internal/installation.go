package internal

import (
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
)

type InstallationResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	InstallationTypeID *string    `json:"installation_type_id"`
	CreatedAt          utils.Time `json:"created_at"`
	UpdatedAt          utils.Time `json:"updated_at"`
}

type InstallationCreateRequest struct {
	Name               string  `json:"name"`
	InstallationTypeID *string `json:"installation_type_id,omitempty"`
}

// InstallationUpdateRequest changes only the attributes present. An empty
// installation_type_id detaches the installation from its type.
type InstallationUpdateRequest struct {
	Name               *string `json:"name,omitempty"`
	InstallationTypeID *string `json:"installation_type_id,omitempty"`
}

func ToInstallationResponse(installation domain.Installation) InstallationResponse {
	response := InstallationResponse{
		ID:        installation.ID.String(),
		Name:      string(installation.Name),
		CreatedAt: utils.NewTime(installation.CreatedAt),
		UpdatedAt: utils.NewTime(installation.UpdatedAt),
	}

	if installation.HasType() {
		typeID := installation.InstallationTypeID.String()
		response.InstallationTypeID = &typeID
	}

	return response
}
