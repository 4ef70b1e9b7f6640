//go:build wireinject
// +build wireinject

package wire

import (
	"time"

	"inventory-server/internal/inventory/communication"
	"inventory-server/internal/inventory/httpapi"
	"inventory-server/internal/inventory/persistence"
	"inventory-server/internal/inventory/usecases"

	"github.com/google/wire"
)

func InitializeInstallationTypeController() (*httpapi.InstallationTypeController, error) {
	wire.Build(
		RepositorySet,
		InstallationServiceSet,
		wire.Bind(new(usecases.InstallationAggregate), new(*usecases.InstallationService)),
		usecases.NewInstallationTypeService,
		wire.Bind(new(usecases.InstallationTypeService), new(*usecases.SimpleInstallationTypeService)),
		httpapi.NewInstallationTypeController,
	)
	return nil, nil
}

func InitializeInstallationController() (*httpapi.InstallationController, error) {
	wire.Build(
		RepositorySet,
		InstallationServiceSet,
		wire.Bind(new(usecases.InstallationAggregate), new(*usecases.InstallationService)),
		usecases.NewInstallationCatalogService,
		wire.Bind(new(usecases.InstallationCatalogService), new(*usecases.SimpleInstallationCatalogService)),
		httpapi.NewInstallationController,
	)
	return nil, nil
}

func InitializeInstallationTypeService() (usecases.InstallationTypeService, error) {
	wire.Build(
		RepositorySet,
		usecases.NewInstallationTypeService,
		wire.Bind(new(usecases.InstallationTypeService), new(*usecases.SimpleInstallationTypeService)),
	)
	return nil, nil
}

func InitializeInstallationCatalogService() (usecases.InstallationCatalogService, error) {
	wire.Build(
		RepositorySet,
		usecases.NewInstallationCatalogService,
		wire.Bind(new(usecases.InstallationCatalogService), new(*usecases.SimpleInstallationCatalogService)),
	)
	return nil, nil
}

func InitializeInstallationService() (usecases.InstallationAggregate, error) {
	wire.Build(
		RepositorySet,
		InstallationServiceSet,
		wire.Bind(new(usecases.InstallationAggregate), new(*usecases.InstallationService)),
	)
	return nil, nil
}

func InitializeSchemaStore() (usecases.SchemaStore, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewSchemaRepository,
		wire.Bind(new(usecases.SchemaStore), new(*persistence.SimpleSchemaRepository)),
	)
	return nil, nil
}

func InitializeSchemaPurgeWorker(ticker *time.Ticker) (*usecases.SchemaPurgeWorker, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		persistence.NewSchemaRepository,
		wire.Bind(new(usecases.SchemaStore), new(*persistence.SimpleSchemaRepository)),
		provideSchemaPurgeWorker,
	)
	return nil, nil
}

var RepositorySet = wire.NewSet(
	provideAppConfig,
	provideDatabase,
	persistence.NewInstallationTypeRepository,
	wire.Bind(new(usecases.InstallationTypeRepository), new(*persistence.SimpleInstallationTypeRepository)),
	persistence.NewSchemaRepository,
	wire.Bind(new(usecases.SchemaStore), new(*persistence.SimpleSchemaRepository)),
	persistence.NewInstallationRepository,
	wire.Bind(new(usecases.InstallationRepository), new(*persistence.SimpleInstallationRepository)),
)

var InstallationServiceSet = wire.NewSet(
	providePubSubFactory,
	providePublisherFactory,
	communication.NewChangePublisher,
	wire.Bind(new(usecases.ChangePublisher), new(*communication.ChangePublisher)),
	persistence.NewPropertyRepository,
	wire.Bind(new(usecases.PropertyStore), new(*persistence.SimplePropertyRepository)),
	usecases.NewSchemaSyncEngine,
	wire.Bind(new(usecases.SchemaSyncer), new(*usecases.SchemaSyncEngine)),
	usecases.NewPropertyService,
	wire.Bind(new(usecases.PropertyManager), new(*usecases.PropertyService)),
	usecases.NewInstallationService,
)
