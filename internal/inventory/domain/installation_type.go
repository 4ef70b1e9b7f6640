package domain

import (
	"inventory-server/internal/infra/utils"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

// InstallationType is a category of physical site (terminal, tollbooth...)
// owning a set of field schemas.
type InstallationType struct {
	ID          shareddomain.ID
	Name        shareddomain.Name
	Code        shareddomain.Code
	Description shareddomain.Description
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *InstallationType) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
}

func (t *InstallationType) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
}

func (t *InstallationType) UpdateInfo(name, description string) {
	if name != "" {
		t.Name = shareddomain.Name(name)
	}
	if description != "" {
		t.Description = shareddomain.Description(description)
	}
	t.UpdatedAt = time.Now()
}

func NewInstallationTypeBuilder() *installationTypeBuilder {
	return &installationTypeBuilder{}
}

type installationTypeBuilder struct {
	actions []installationTypeHandler
}

type installationTypeHandler func(v *InstallationType) error

func (b *installationTypeBuilder) WithName(value string) *installationTypeBuilder {
	b.actions = append(b.actions, func(d *InstallationType) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *installationTypeBuilder) WithCode(value string) *installationTypeBuilder {
	b.actions = append(b.actions, func(d *InstallationType) error {
		d.Code = shareddomain.NewCode(value)
		return nil
	})
	return b
}

func (b *installationTypeBuilder) WithDescription(value string) *installationTypeBuilder {
	b.actions = append(b.actions, func(d *InstallationType) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *installationTypeBuilder) Build() (InstallationType, error) {
	now := time.Now()
	result := InstallationType{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return InstallationType{}, err
		}
	}

	if result.Name.Normalized() == "" {
		return InstallationType{}, ErrNameRequired
	}

	if result.Code == "" {
		return InstallationType{}, ErrCodeRequired
	}

	return result, nil
}
