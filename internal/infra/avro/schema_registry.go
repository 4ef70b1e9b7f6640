package avro

import "github.com/riferrei/srclient"

// SchemaRegistry is the part of the Confluent registry API the codec needs.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

var _ SchemaRegistry = (*srclient.SchemaRegistryClient)(nil)

func NewSchemaRegistry(url string) *srclient.SchemaRegistryClient {
	return srclient.CreateSchemaRegistryClient(url)
}
