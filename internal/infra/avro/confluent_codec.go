package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"inventory-server/internal/infra/cache"
	"reflect"
	"time"

	"github.com/hamba/avro/v2"
	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaIDCacheTTL = 5 * time.Minute
	_defaultWriterCacheTTL   = 30 * time.Minute
	_wireHeaderSize          = 5
	_magicByte               = 0
)

// ConfluentAvroCodec encodes messages in the Confluent wire format: a zero
// magic byte, the big endian registry schema ID and the Avro payload.
type ConfluentAvroCodec struct {
	prototype      reflect.Type
	schemaRegistry SchemaRegistry
	subjectSuffix  string
	cache          cache.Cache
}

func NewConfluentAvroCodec(prototype any, schemaRegistry SchemaRegistry, cache cache.Cache) (*ConfluentAvroCodec, error) {
	t := messageType(prototype)
	if _, err := definitionFor(t); err != nil {
		return nil, err
	}

	return &ConfluentAvroCodec{
		prototype:      t,
		schemaRegistry: schemaRegistry,
		subjectSuffix:  "-value",
		cache:          cache,
	}, nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	def, err := definitionFor(messageType(value))
	if err != nil {
		return nil, fmt.Errorf("getting schema for message: %w", err)
	}

	schemaID, err := c.getOrRegisterSchemaID(def)
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	payload, err := avro.Marshal(def.schema, value)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, _wireHeaderSize+len(payload))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_wireHeaderSize], uint32(schemaID))
	copy(result[_wireHeaderSize:], payload)

	return result, nil
}

// Decode reads the payload with the schema it was written with and returns a
// pointer to a new value of the prototype type.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _wireHeaderSize {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:_wireHeaderSize]))

	writer, err := c.getWriterSchema(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting writer schema %d: %w", schemaID, err)
	}

	instance := reflect.New(c.prototype).Interface()
	if err := avro.Unmarshal(writer, data[_wireHeaderSize:], instance); err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	return instance, nil
}

// getOrRegisterSchemaID reuses the latest registered version when it is the
// same schema in canonical form, and registers a new version otherwise.
func (c *ConfluentAvroCodec) getOrRegisterSchemaID(def definition) (int, error) {
	subject := def.subject + c.subjectSuffix

	id, err := c.cache.GetOrSet(context.Background(), "subject:"+subject, _defaultSchemaIDCacheTTL, func() (any, error) {
		latest, err := c.schemaRegistry.GetLatestSchema(subject)
		if err == nil && latest != nil && sameSchema(latest.Schema(), def.source) {
			return latest.ID(), nil
		}

		created, err := c.schemaRegistry.CreateSchema(subject, def.source, srclient.Avro)
		if err != nil {
			return nil, fmt.Errorf("registering schema: %w", err)
		}
		return created.ID(), nil
	})
	if err != nil {
		return 0, err
	}

	return id.(int), nil
}

func (c *ConfluentAvroCodec) getWriterSchema(schemaID int) (avro.Schema, error) {
	key := fmt.Sprintf("schema:%d", schemaID)
	writer, err := c.cache.GetOrSet(context.Background(), key, _defaultWriterCacheTTL, func() (any, error) {
		registered, err := c.schemaRegistry.GetSchema(schemaID)
		if err != nil {
			return nil, fmt.Errorf("fetching schema from registry: %w", err)
		}

		schema, err := avro.Parse(registered.Schema())
		if err != nil {
			return nil, fmt.Errorf("parsing registered schema: %w", err)
		}
		return schema, nil
	})
	if err != nil {
		return nil, err
	}

	return writer.(avro.Schema), nil
}

func sameSchema(registered, local string) bool {
	registeredCodec, err := goavro.NewCodec(registered)
	if err != nil {
		return false
	}
	localCodec, err := goavro.NewCodec(local)
	if err != nil {
		return false
	}
	return registeredCodec.CanonicalSchema() == localCodec.CanonicalSchema()
}
