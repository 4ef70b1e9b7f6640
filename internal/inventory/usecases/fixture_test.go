package usecases_test

import (
	"context"
	"inventory-server/internal/infra/sql"
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/persistence"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"sync"

	. "github.com/onsi/gomega"
)

// inventory wires the services to repositories over a private in-memory
// database.
type inventory struct {
	orm           sql.ORM
	schemas       *persistence.SimpleSchemaRepository
	properties    *persistence.SimplePropertyRepository
	types         *persistence.SimpleInstallationTypeRepository
	installations *persistence.SimpleInstallationRepository
	publisher     *recordingPublisher
	engine        *usecases.SchemaSyncEngine
	propertySvc   *usecases.PropertyService
}

func newInventory() *inventory {
	orm, err := sql.NewMemoryORM()
	Expect(err).NotTo(HaveOccurred())

	types, err := persistence.NewInstallationTypeRepository(orm)
	Expect(err).NotTo(HaveOccurred())
	installations, err := persistence.NewInstallationRepository(orm)
	Expect(err).NotTo(HaveOccurred())
	schemas, err := persistence.NewSchemaRepository(orm)
	Expect(err).NotTo(HaveOccurred())
	properties, err := persistence.NewPropertyRepository(orm)
	Expect(err).NotTo(HaveOccurred())

	publisher := &recordingPublisher{}
	return &inventory{
		orm:           orm,
		schemas:       schemas,
		properties:    properties,
		types:         types,
		installations: installations,
		publisher:     publisher,
		engine:        usecases.NewSchemaSyncEngine(schemas, types, publisher),
		propertySvc:   usecases.NewPropertyService(properties, schemas, installations, publisher),
	}
}

func (i *inventory) createType(code string) domain.InstallationType {
	installationType, err := domain.NewInstallationTypeBuilder().
		WithName(code).
		WithCode(code).
		Build()
	Expect(err).NotTo(HaveOccurred())
	Expect(i.types.Create(context.Background(), installationType)).To(Succeed())
	return installationType
}

func (i *inventory) createInstallation(name string, typeID shareddomain.ID) domain.Installation {
	installation, err := domain.NewInstallationBuilder().
		WithName(name).
		WithInstallationTypeID(typeID).
		Build()
	Expect(err).NotTo(HaveOccurred())
	Expect(i.installations.Create(context.Background(), installation)).To(Succeed())
	return installation
}

func (i *inventory) sync(typeID shareddomain.ID, desired ...usecases.SchemaPayload) []domain.FieldSchema {
	result, err := i.engine.SyncSchemas(context.Background(), typeID, desired)
	Expect(err).NotTo(HaveOccurred())
	return result
}

func (i *inventory) storedSchemas(typeID shareddomain.ID) []domain.FieldSchema {
	schemas, err := i.schemas.FindByInstallationTypeID(context.Background(), typeID)
	Expect(err).NotTo(HaveOccurred())
	return schemas
}

func (i *inventory) storedValues(installationID shareddomain.ID) []domain.PropertyValue {
	values, err := i.properties.FindByInstallationID(context.Background(), installationID)
	Expect(err).NotTo(HaveOccurred())
	return values
}

func field(name, fieldType string) usecases.SchemaPayload {
	return usecases.SchemaPayload{Name: name, Type: fieldType}
}

func requiredField(name, fieldType string) usecases.SchemaPayload {
	payload := field(name, fieldType)
	payload.Required = utils.BoolPtr(true)
	return payload
}

func enumField(name string, options ...string) usecases.SchemaPayload {
	payload := field(name, "enum")
	payload.Options = options
	return payload
}

// keep turns a stored schema back into a payload that leaves it unchanged.
func keep(schema domain.FieldSchema) usecases.SchemaPayload {
	id := schema.ID
	description := string(schema.Description)
	required := schema.Required
	return usecases.SchemaPayload{
		ID:          &id,
		Name:        string(schema.Name),
		Description: &description,
		Type:        string(schema.Type()),
		Options:     schema.Options(),
		Required:    &required,
	}
}

func withID(payload usecases.SchemaPayload, id shareddomain.ID) usecases.SchemaPayload {
	payload.ID = &id
	return payload
}

func names(schemas []domain.FieldSchema) []string {
	result := make([]string, len(schemas))
	for i, schema := range schemas {
		result[i] = string(schema.Name)
	}
	return result
}

func validationError(err error) *domain.ValidationError {
	var validationErr *domain.ValidationError
	ExpectWithOffset(1, err).To(BeAssignableToTypeOf(validationErr))
	return err.(*domain.ValidationError)
}

type recordingPublisher struct {
	mu         sync.Mutex
	synced     [][]domain.FieldSchema
	properties [][]domain.PropertyWithSchema
	err        error
}

func (p *recordingPublisher) SchemasSynced(_ context.Context, _ shareddomain.ID, schemas []domain.FieldSchema) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.synced = append(p.synced, schemas)
	return p.err
}

func (p *recordingPublisher) PropertiesSet(_ context.Context, _ shareddomain.ID, properties []domain.PropertyWithSchema) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.properties = append(p.properties, properties)
	return p.err
}

func (p *recordingPublisher) syncedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.synced)
}
