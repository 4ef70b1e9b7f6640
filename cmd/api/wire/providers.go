package wire

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"inventory-server/cmd/config"
	"inventory-server/internal/infra/pubsub"
	"inventory-server/internal/infra/sql"
	"inventory-server/internal/inventory/usecases"
)

// Every injector shares one database and one broker so an in-memory
// environment sees a single store.
var (
	databaseOnce sync.Once
	database     sql.ORM
	databaseErr  error

	pubSubOnce    sync.Once
	pubSubFactory *pubsub.Factory
	pubSubErr     error
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(config config.AppConfig) (sql.ORM, error) {
	databaseOnce.Do(func() {
		database, databaseErr = openDatabase(config)
	})
	return database, databaseErr
}

func openDatabase(config config.AppConfig) (sql.ORM, error) {
	if config.General.IsLocal() || config.Database.Driver == "sqlite" {
		slog.Info("using in-memory database")
		return sql.NewMemoryORM()
	}

	if err := sql.WaitReady(context.Background(), sql.NewPostgreDatabase(config.Database.DSN)); err != nil {
		return nil, err
	}

	orm, err := sql.NewPostgreORM(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening orm: %w", err)
	}
	return orm, nil
}

func providePubSubFactory(config config.AppConfig) (*pubsub.Factory, error) {
	pubSubOnce.Do(func() {
		pubSubFactory, pubSubErr = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       config.General.Environment,
			KafkaBrokers:      config.Kafka.Brokers,
			SchemaRegistryURL: config.Kafka.SchemaRegistry,
		})
	})
	return pubSubFactory, pubSubErr
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideSchemaPurgeWorker(
	ticker *time.Ticker,
	config config.AppConfig,
	schemas usecases.SchemaStore,
) (*usecases.SchemaPurgeWorker, error) {
	return usecases.NewSchemaPurgeWorker(ticker, config.Purge.Schedule, config.Purge.Retention, schemas)
}
