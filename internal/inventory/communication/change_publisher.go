package communication

import (
	"context"
	"fmt"
	"inventory-server/internal/infra/avro"
	"inventory-server/internal/infra/pubsub"
	"inventory-server/internal/inventory/communication/internal"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
)

const (
	_installationSchemasTopic    = "installation_schemas"
	_installationPropertiesTopic = "installation_properties"
)

func NewChangePublisher(factory pubsub.PublisherFactory) (*ChangePublisher, error) {
	schemas, err := factory.New(_installationSchemasTopic, avro.AvroInstallationSchemasSynced{})
	if err != nil {
		return nil, fmt.Errorf("creating schemas publisher: %w", err)
	}

	properties, err := factory.New(_installationPropertiesTopic, avro.AvroInstallationPropertiesSet{})
	if err != nil {
		return nil, fmt.Errorf("creating properties publisher: %w", err)
	}

	return &ChangePublisher{
		schemas:    schemas,
		properties: properties,
	}, nil
}

var _ usecases.ChangePublisher = (*ChangePublisher)(nil)

// ChangePublisher emits the full field set of a type after a sync and the
// full property set of an installation after values are written. Messages
// are keyed by the owning aggregate so consumers see them in order.
type ChangePublisher struct {
	schemas    pubsub.Publisher
	properties pubsub.Publisher
}

func (p *ChangePublisher) SchemasSynced(
	ctx context.Context,
	installationTypeID shareddomain.ID,
	schemas []domain.FieldSchema,
) error {
	message := internal.FromSchemas(installationTypeID, schemas)
	err := p.schemas.Publish(ctx, pubsub.Key(installationTypeID), message)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}

func (p *ChangePublisher) PropertiesSet(
	ctx context.Context,
	installationID shareddomain.ID,
	properties []domain.PropertyWithSchema,
) error {
	message := internal.FromProperties(installationID, properties)
	err := p.properties.Publish(ctx, pubsub.Key(installationID), message)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}
