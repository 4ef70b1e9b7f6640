package domain

import (
	"inventory-server/internal/infra/utils"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

// FieldSchema is a runtime defined, typed attribute of an installation type.
type FieldSchema struct {
	ID                 shareddomain.ID
	InstallationTypeID shareddomain.ID
	Name               shareddomain.Name
	Description        shareddomain.Description
	Kind               FieldKind
	Required           bool
	Position           int
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time
}

func (s FieldSchema) Type() FieldType {
	if s.Kind == nil {
		return ""
	}
	return s.Kind.Type()
}

func (s FieldSchema) Options() []string {
	if s.Kind == nil {
		return []string{}
	}
	return KindOptions(s.Kind)
}

func (s *FieldSchema) IsDeleted() bool {
	return s.DeletedAt != nil
}

func (s *FieldSchema) SoftDelete() {
	now := time.Now()
	s.DeletedAt = &now
	s.UpdatedAt = now
}

// Redefine replaces the mutable attributes and reports whether anything
// changed. The owning installation type never changes after creation.
func (s *FieldSchema) Redefine(name shareddomain.Name, description shareddomain.Description, kind FieldKind, required bool, position int) bool {
	if s.Name == name &&
		s.Description == description &&
		SameKind(s.Kind, kind) &&
		s.Required == required &&
		s.Position == position {
		return false
	}

	s.Name = name
	s.Description = description
	s.Kind = kind
	s.Required = required
	s.Position = position
	s.UpdatedAt = time.Now()
	return true
}

func NewFieldSchemaBuilder() *fieldSchemaBuilder {
	return &fieldSchemaBuilder{}
}

type fieldSchemaBuilder struct {
	actions []fieldSchemaHandler
}

type fieldSchemaHandler func(v *FieldSchema) error

func (b *fieldSchemaBuilder) WithInstallationTypeID(value shareddomain.ID) *fieldSchemaBuilder {
	b.actions = append(b.actions, func(d *FieldSchema) error {
		d.InstallationTypeID = value
		return nil
	})
	return b
}

func (b *fieldSchemaBuilder) WithName(value string) *fieldSchemaBuilder {
	b.actions = append(b.actions, func(d *FieldSchema) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *fieldSchemaBuilder) WithDescription(value string) *fieldSchemaBuilder {
	b.actions = append(b.actions, func(d *FieldSchema) error {
		d.Description = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *fieldSchemaBuilder) WithKind(value FieldKind) *fieldSchemaBuilder {
	b.actions = append(b.actions, func(d *FieldSchema) error {
		d.Kind = value
		return nil
	})
	return b
}

func (b *fieldSchemaBuilder) WithRequired(value bool) *fieldSchemaBuilder {
	b.actions = append(b.actions, func(d *FieldSchema) error {
		d.Required = value
		return nil
	})
	return b
}

func (b *fieldSchemaBuilder) WithPosition(value int) *fieldSchemaBuilder {
	b.actions = append(b.actions, func(d *FieldSchema) error {
		d.Position = value
		return nil
	})
	return b
}

func (b *fieldSchemaBuilder) Build() (FieldSchema, error) {
	now := time.Now()
	result := FieldSchema{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Kind:      StringKind{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldSchema{}, err
		}
	}

	if result.InstallationTypeID == "" {
		return FieldSchema{}, ErrInstallationTypeIDRequired
	}

	if result.Name.Normalized() == "" {
		return FieldSchema{}, ErrNameRequired
	}

	return result, nil
}
