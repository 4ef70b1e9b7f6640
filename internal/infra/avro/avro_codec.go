package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes messages with the embedded schemas and no wire header.
type AvroCodec struct {
	prototype reflect.Type
}

func NewAvroCodec(prototype any) (*AvroCodec, error) {
	t := messageType(prototype)
	if _, err := definitionFor(t); err != nil {
		return nil, err
	}
	return &AvroCodec{prototype: t}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	def, err := definitionFor(messageType(value))
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	data, err := avro.Marshal(def.schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a new value of the prototype type.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	def, err := definitionFor(c.prototype)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	instance := reflect.New(c.prototype).Interface()
	if err := avro.Unmarshal(def.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}
