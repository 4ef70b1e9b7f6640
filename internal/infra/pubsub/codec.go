package pubsub

import (
	"encoding/json"
	"fmt"
	"inventory-server/internal/infra/avro"
	"inventory-server/internal/infra/cache"
	"reflect"
)

type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

// newCodec picks the wire format for a prototype. Messages with an Avro
// schema use the Confluent format when a registry is configured and plain
// Avro otherwise. Anything else travels as JSON.
func newCodec(prototype any, registry avro.SchemaRegistry, store cache.Cache) (Codec, error) {
	if _, err := avro.Subject(prototype); err != nil {
		return newJSONCodec(prototype), nil
	}

	if registry == nil {
		return avro.NewAvroCodec(prototype)
	}

	return avro.NewConfluentAvroCodec(prototype, registry, store)
}

func newJSONCodec(prototype any) *JSONCodec {
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return &JSONCodec{prototype: t}
}

var _ Codec = &JSONCodec{}

type JSONCodec struct {
	prototype reflect.Type
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

func (c *JSONCodec) Decode(data []byte) (any, error) {
	instance := reflect.New(c.prototype).Interface()
	err := json.Unmarshal(data, instance)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance, nil
}
