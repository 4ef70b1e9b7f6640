package avro

import "time"

// AvroFieldSchema is one field definition as carried by schema events.
type AvroFieldSchema struct {
	ID          string    `avro:"id"`
	Name        string    `avro:"name"`
	Description string    `avro:"description"`
	Type        string    `avro:"type"`
	Options     []string  `avro:"options"`
	Required    bool      `avro:"required"`
	Position    int       `avro:"position"`
	UpdatedAt   time.Time `avro:"updated_at"`
}

// AvroInstallationSchemasSynced carries the full field set of an
// installation type after a sync.
type AvroInstallationSchemasSynced struct {
	InstallationTypeID string            `avro:"installation_type_id"`
	Schemas            []AvroFieldSchema `avro:"schemas"`
	SyncedAt           time.Time         `avro:"synced_at"`
}

// AvroPropertyValue holds a value in its stored text form. Value is nil when
// the installation has none for the field.
type AvroPropertyValue struct {
	SchemaID string  `avro:"schema_id"`
	Name     string  `avro:"name"`
	Type     string  `avro:"type"`
	Value    *string `avro:"value"`
	Problem  *string `avro:"problem"`
}

type AvroInstallationPropertiesSet struct {
	InstallationID string              `avro:"installation_id"`
	Properties     []AvroPropertyValue `avro:"properties"`
	SetAt          time.Time           `avro:"set_at"`
}
