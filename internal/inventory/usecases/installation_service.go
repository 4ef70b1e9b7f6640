package usecases

//go:generate mockgen -source=installation_service.go -destination=../../../test/unit/doubles/inventory/usecases/installation_service_mock.go -package=usecases -mock_names=InstallationAggregate=MockInstallationAggregate

import (
	"context"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
)

// InstallationAggregate is the entry point for the operations that cross the
// installation type / installation boundary.
type InstallationAggregate interface {
	SyncSchemas(ctx context.Context, installationTypeID shareddomain.ID, desired []SchemaPayload) ([]domain.FieldSchema, error)
	SetProperties(ctx context.Context, installationID shareddomain.ID, entries []domain.PropertyEntry) ([]domain.PropertyWithSchema, error)
	GetPropertiesWithSchema(ctx context.Context, installationID shareddomain.ID) ([]domain.PropertyWithSchema, error)
}

func NewInstallationService(schemaSync SchemaSyncer, properties PropertyManager) *InstallationService {
	return &InstallationService{
		schemaSync: schemaSync,
		properties: properties,
	}
}

var _ InstallationAggregate = (*InstallationService)(nil)

type InstallationService struct {
	schemaSync SchemaSyncer
	properties PropertyManager
}

func (s *InstallationService) SyncSchemas(
	ctx context.Context,
	installationTypeID shareddomain.ID,
	desired []SchemaPayload,
) ([]domain.FieldSchema, error) {
	return s.schemaSync.SyncSchemas(ctx, installationTypeID, desired)
}

func (s *InstallationService) SetProperties(
	ctx context.Context,
	installationID shareddomain.ID,
	entries []domain.PropertyEntry,
) ([]domain.PropertyWithSchema, error) {
	return s.properties.SetProperties(ctx, installationID, entries)
}

func (s *InstallationService) GetPropertiesWithSchema(
	ctx context.Context,
	installationID shareddomain.ID,
) ([]domain.PropertyWithSchema, error) {
	return s.properties.GetPropertiesWithSchema(ctx, installationID)
}
