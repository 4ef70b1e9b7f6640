package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/inventory/usecases/repository_port_mock.go -package=usecases -mock_names=SchemaStore=MockSchemaStore,PropertyStore=MockPropertyStore,InstallationTypeRepository=MockInstallationTypeRepository,InstallationRepository=MockInstallationRepository,ChangePublisher=MockChangePublisher

import (
	"context"
	"errors"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

var (
	ErrInstallationTypeNotFound  = errors.New("installation type not found")
	ErrInstallationNotFound      = errors.New("installation not found")
	ErrSchemaNotFound            = errors.New("schema not found")
	ErrInstallationWithoutType   = errors.New("installation has no installation type")
	ErrDuplicateSchemaName       = errors.New("schema name already in use for this installation type")
	ErrInstallationTypeCodeTaken = errors.New("installation type code already in use")
	ErrInstallationTypeInactive  = errors.New("installation type is inactive")
)

type Pagination struct {
	Limit  int
	Offset int
}

// UniquenessField names a column value that must not exist elsewhere,
// optionally scoped to rows sharing ScopeColumn = ScopeValue.
type UniquenessField struct {
	Column      string
	Value       string
	ScopeColumn string
	ScopeValue  string
}

type SchemaStore interface {
	FindByInstallationTypeID(ctx context.Context, installationTypeID shareddomain.ID) ([]domain.FieldSchema, error)
	GetByID(ctx context.Context, id shareddomain.ID) (domain.FieldSchema, error)
	Create(ctx context.Context, schema domain.FieldSchema) error
	Update(ctx context.Context, schema domain.FieldSchema) error
	Delete(ctx context.Context, id shareddomain.ID) error
	DeleteMany(ctx context.Context, ids []shareddomain.ID) error
	ForceDeleteMany(ctx context.Context, ids []shareddomain.ID) error
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]domain.FieldSchema, error)
	CheckUniqueness(ctx context.Context, fields []UniquenessField, excludeID *shareddomain.ID) ([]UniquenessField, error)
	Transaction(ctx context.Context, fn func(tx SchemaStore) error) error
}

type PropertyStore interface {
	FindByInstallationID(ctx context.Context, installationID shareddomain.ID) ([]domain.PropertyValue, error)
	Upsert(ctx context.Context, value domain.PropertyValue) error
	Transaction(ctx context.Context, fn func(tx PropertyStore) error) error
}

type InstallationTypeRepository interface {
	Create(ctx context.Context, installationType domain.InstallationType) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.InstallationType, error)
	GetByCode(ctx context.Context, code shareddomain.Code) (domain.InstallationType, error)
	FindAll(ctx context.Context, pagination Pagination) ([]domain.InstallationType, int, error)
	Update(ctx context.Context, installationType domain.InstallationType) error
}

type InstallationFilter struct {
	InstallationTypeID *shareddomain.ID
}

type InstallationRepository interface {
	Create(ctx context.Context, installation domain.Installation) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Installation, error)
	FindAll(ctx context.Context, filter InstallationFilter, pagination Pagination) ([]domain.Installation, int, error)
	Update(ctx context.Context, installation domain.Installation) error
	Delete(ctx context.Context, id shareddomain.ID) error
}

// ChangePublisher announces committed changes to other services.
type ChangePublisher interface {
	SchemasSynced(ctx context.Context, installationTypeID shareddomain.ID, schemas []domain.FieldSchema) error
	PropertiesSet(ctx context.Context, installationID shareddomain.ID, properties []domain.PropertyWithSchema) error
}
