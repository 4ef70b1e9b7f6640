package avro

import (
	"embed"
	"fmt"
	"reflect"
	"sync"

	"github.com/hamba/avro/v2"
)

//go:embed schemas/*.avsc
var _schemaFiles embed.FS

type definition struct {
	subject string
	source  string
	schema  avro.Schema
}

var _definitionFiles = map[reflect.Type]struct {
	subject string
	file    string
}{
	reflect.TypeOf(AvroInstallationSchemasSynced{}): {"installation_schemas", "schemas/installation_schemas_synced.avsc"},
	reflect.TypeOf(AvroInstallationPropertiesSet{}): {"installation_properties", "schemas/installation_properties_set.avsc"},
}

var (
	_definitionsOnce sync.Once
	_definitions     map[reflect.Type]definition
	_definitionsErr  error
)

func loadDefinitions() {
	_definitions = make(map[reflect.Type]definition, len(_definitionFiles))
	for messageType, entry := range _definitionFiles {
		source, err := _schemaFiles.ReadFile(entry.file)
		if err != nil {
			_definitionsErr = fmt.Errorf("reading schema file %s: %w", entry.file, err)
			return
		}

		schema, err := avro.Parse(string(source))
		if err != nil {
			_definitionsErr = fmt.Errorf("parsing schema file %s: %w", entry.file, err)
			return
		}

		_definitions[messageType] = definition{
			subject: entry.subject,
			source:  string(source),
			schema:  schema,
		}
	}
}

func messageType(value any) reflect.Type {
	t := reflect.TypeOf(value)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func definitionFor(t reflect.Type) (definition, error) {
	_definitionsOnce.Do(loadDefinitions)
	if _definitionsErr != nil {
		return definition{}, _definitionsErr
	}

	def, ok := _definitions[t]
	if !ok {
		return definition{}, fmt.Errorf("no Avro schema found for message type: %v", t)
	}
	return def, nil
}

// Subject returns the registry subject a message type is published under.
func Subject(value any) (string, error) {
	def, err := definitionFor(messageType(value))
	if err != nil {
		return "", err
	}
	return def.subject, nil
}
