package domain

import (
	"inventory-server/internal/infra/utils"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

type Installation struct {
	ID                 shareddomain.ID
	Name               shareddomain.Name
	InstallationTypeID *shareddomain.ID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

func (i *Installation) HasType() bool {
	return i.InstallationTypeID != nil && *i.InstallationTypeID != ""
}

func (i *Installation) IsDeleted() bool {
	return i.DeletedAt != nil
}

func (i *Installation) SoftDelete() {
	now := time.Now()
	i.DeletedAt = &now
	i.UpdatedAt = now
}

func (i *Installation) AssignType(typeID *shareddomain.ID) {
	i.InstallationTypeID = typeID
	i.UpdatedAt = time.Now()
}

func (i *Installation) Rename(name string) {
	if name != "" {
		i.Name = shareddomain.Name(name)
	}
	i.UpdatedAt = time.Now()
}

func NewInstallationBuilder() *installationBuilder {
	return &installationBuilder{}
}

type installationBuilder struct {
	actions []installationHandler
}

type installationHandler func(v *Installation) error

func (b *installationBuilder) WithName(value string) *installationBuilder {
	b.actions = append(b.actions, func(d *Installation) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *installationBuilder) WithInstallationTypeID(value shareddomain.ID) *installationBuilder {
	b.actions = append(b.actions, func(d *Installation) error {
		if value == "" {
			d.InstallationTypeID = nil
			return nil
		}
		d.InstallationTypeID = &value
		return nil
	})
	return b
}

func (b *installationBuilder) Build() (Installation, error) {
	now := time.Now()
	result := Installation{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Installation{}, err
		}
	}

	if result.Name.Normalized() == "" {
		return Installation{}, ErrNameRequired
	}

	return result, nil
}
