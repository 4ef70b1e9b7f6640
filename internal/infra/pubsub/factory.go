package pubsub

import (
	"fmt"
	"inventory-server/internal/infra/avro"
	"inventory-server/internal/infra/cache"
)

// Schema ids and writer schemas for every event type fit comfortably.
const _codecCacheEntries = 256

// Factory picks the publisher implementation for the environment.
type Factory struct {
	publisherFactory PublisherFactory
}

type FactoryOptions struct {
	Environment       string
	KafkaBrokers      []string
	SchemaRegistryURL string
}

// NewFactory returns the in-memory broker for the local environment and Kafka
// for every other one.
func NewFactory(opts FactoryOptions) (*Factory, error) {
	if opts.Environment == "local" {
		return &Factory{publisherFactory: NewMemoryPublisherFactory()}, nil
	}

	store, err := cache.New(cache.WithMaxEntries(_codecCacheEntries))
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	var registry avro.SchemaRegistry
	if opts.SchemaRegistryURL != "" {
		registry = avro.NewSchemaRegistry(opts.SchemaRegistryURL)
	}

	codecs := codecSource{registryURL: opts.SchemaRegistryURL, registry: registry, cache: store}
	return &Factory{publisherFactory: NewKafkaPublisherFactory(opts.KafkaBrokers, codecs)}, nil
}

func (f *Factory) GetPublisherFactory() PublisherFactory {
	return f.publisherFactory
}

// codecSource builds codecs sharing one registry client and cache.
type codecSource struct {
	registryURL string
	registry    avro.SchemaRegistry
	cache       cache.Cache
}

func (s codecSource) codecFor(prototype any) (Codec, error) {
	return newCodec(prototype, s.registry, s.cache)
}
