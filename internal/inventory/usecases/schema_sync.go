package usecases

//go:generate mockgen -source=schema_sync.go -destination=../../../test/unit/doubles/inventory/usecases/schema_sync_mock.go -package=usecases -mock_names=SchemaSyncer=MockSchemaSyncer

import (
	"context"
	"errors"
	"fmt"
	"inventory-server/internal/infra/utils"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SchemaPayload is one entry of the desired field set. A nil ID asks for a new
// schema, a present ID updates the schema that owns it. On updates an empty
// Type and nil Description or Required keep the stored attribute; options sent
// without a Type replace those of a stored enum.
type SchemaPayload struct {
	ID          *shareddomain.ID
	Name        string
	Description *string
	Type        string
	Options     []string
	Required    *bool
}

type SchemaSyncer interface {
	SyncSchemas(ctx context.Context, installationTypeID shareddomain.ID, desired []SchemaPayload) ([]domain.FieldSchema, error)
}

func NewSchemaSyncEngine(
	schemas SchemaStore,
	installationTypes InstallationTypeRepository,
	publisher ChangePublisher,
) *SchemaSyncEngine {
	meter := otel.Meter("inventory-server")
	counter, err := meter.Int64Counter("schema_syncs",
		metric.WithDescription("Schema sync calls by outcome"),
	)
	if err != nil {
		slog.Warn("creating schema_syncs counter", slog.String("error", err.Error()))
	}

	return &SchemaSyncEngine{
		schemas:           schemas,
		installationTypes: installationTypes,
		publisher:         publisher,
		syncCounter:       counter,
	}
}

var _ SchemaSyncer = (*SchemaSyncEngine)(nil)

type SchemaSyncEngine struct {
	schemas           SchemaStore
	installationTypes InstallationTypeRepository
	publisher         ChangePublisher
	syncCounter       metric.Int64Counter
}

// syncPlan is the partition of a desired field set against the stored one.
type syncPlan struct {
	toCreate []domain.FieldSchema
	toUpdate []domain.FieldSchema
	toDelete []shareddomain.ID
}

// desiredEntry is a payload after per-entry validation.
type desiredEntry struct {
	index   int
	payload SchemaPayload
	name    shareddomain.Name
	kind    domain.FieldKind
	current *domain.FieldSchema
}

func (e *SchemaSyncEngine) SyncSchemas(
	ctx context.Context,
	installationTypeID shareddomain.ID,
	desired []SchemaPayload,
) ([]domain.FieldSchema, error) {
	if _, err := e.installationTypes.GetByID(ctx, installationTypeID); err != nil {
		if errors.Is(err, ErrInstallationTypeNotFound) {
			return nil, ErrInstallationTypeNotFound
		}
		return nil, fmt.Errorf("syncing schemas: getting installation type: %w", err)
	}

	var plan syncPlan
	err := e.schemas.Transaction(ctx, func(tx SchemaStore) error {
		current, err := tx.FindByInstallationTypeID(ctx, installationTypeID)
		if err != nil {
			return fmt.Errorf("loading current schemas: %w", err)
		}

		plan, err = planSync(installationTypeID, current, desired)
		if err != nil {
			return err
		}

		return applySync(ctx, tx, plan)
	})
	if err != nil {
		e.countSync(ctx, "failed")

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return nil, validationErr
		}
		slog.Error("syncing schemas",
			slog.String("installation_type_id", installationTypeID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("syncing schemas: %w", err)
	}

	result, err := e.schemas.FindByInstallationTypeID(ctx, installationTypeID)
	if err != nil {
		return nil, fmt.Errorf("syncing schemas: reloading schemas: %w", err)
	}

	e.countSync(ctx, "applied")
	slog.Info("schemas synced",
		slog.String("installation_type_id", installationTypeID.String()),
		slog.Int("created", len(plan.toCreate)),
		slog.Int("updated", len(plan.toUpdate)),
		slog.Int("deleted", len(plan.toDelete)),
	)

	if err := e.publisher.SchemasSynced(ctx, installationTypeID, result); err != nil {
		slog.Error("publishing schemas synced event",
			slog.String("installation_type_id", installationTypeID.String()),
			slog.String("error", err.Error()),
		)
	}

	return result, nil
}

func (e *SchemaSyncEngine) countSync(ctx context.Context, outcome string) {
	if e.syncCounter == nil {
		return
	}
	e.syncCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// planSync validates the desired set against the snapshot and partitions it.
// It never touches storage; every problem found is returned in one
// ValidationError.
func planSync(
	installationTypeID shareddomain.ID,
	current []domain.FieldSchema,
	desired []SchemaPayload,
) (syncPlan, error) {
	currentByID := make(map[shareddomain.ID]*domain.FieldSchema, len(current))
	for i := range current {
		currentByID[current[i].ID] = &current[i]
	}

	problems := make([]domain.FieldError, 0)
	report := func(fieldErr *domain.FieldError) {
		problems = append(problems, *fieldErr)
	}

	entries := make([]desiredEntry, len(desired))
	keptIDs := make(map[shareddomain.ID]int, len(desired))
	for i, payload := range desired {
		entry := desiredEntry{index: i, payload: payload, name: shareddomain.Name(strings.TrimSpace(payload.Name))}

		if payload.ID != nil {
			if first, seen := keptIDs[*payload.ID]; seen {
				report(domain.NewFieldError(schemaPath(i, "id"), domain.CodeDuplicateID,
					fmt.Sprintf("schema id already used by schemas[%d]", first), payload.ID.String()))
			} else if owner, ok := currentByID[*payload.ID]; ok {
				keptIDs[*payload.ID] = i
				entry.current = owner
			} else {
				report(domain.NewFieldError(schemaPath(i, "id"), domain.CodeNotFound,
					"schema does not exist for this installation type", payload.ID.String()))
			}
		}

		if entry.name.Normalized() == "" {
			report(domain.NewFieldError(schemaPath(i, "name"), domain.CodeRequired, "name is required", payload.Name))
		}

		if kind, fieldErr := resolveKind(i, payload, entry.current); fieldErr != nil {
			report(fieldErr)
		} else {
			entry.kind = kind
		}

		entries[i] = entry
	}

	for _, fieldErr := range checkNameUniqueness(entries, current, keptIDs) {
		report(fieldErr)
	}

	if len(problems) > 0 {
		return syncPlan{}, domain.NewValidationError("invalid schemas", problems)
	}

	plan := syncPlan{}
	for _, schema := range current {
		if _, kept := keptIDs[schema.ID]; !kept {
			plan.toDelete = append(plan.toDelete, schema.ID)
		}
	}

	for _, entry := range entries {
		if entry.current == nil {
			schema, err := domain.NewFieldSchemaBuilder().
				WithInstallationTypeID(installationTypeID).
				WithName(string(entry.name)).
				WithDescription(utils.DerefOr(entry.payload.Description, "")).
				WithKind(entry.kind).
				WithRequired(utils.DerefOr(entry.payload.Required, false)).
				WithPosition(entry.index).
				Build()
			if err != nil {
				return syncPlan{}, fmt.Errorf("building schema %q: %w", entry.name, err)
			}
			plan.toCreate = append(plan.toCreate, schema)
			continue
		}

		updated := *entry.current
		changed := updated.Redefine(
			entry.name,
			shareddomain.Description(utils.DerefOr(entry.payload.Description, string(updated.Description))),
			entry.kind,
			utils.DerefOr(entry.payload.Required, updated.Required),
			entry.index,
		)
		if changed {
			plan.toUpdate = append(plan.toUpdate, updated)
		}
	}

	return plan, nil
}

// checkNameUniqueness flags repeated names inside the batch and names that
// collide with schemas surviving the sync. Renaming a schema to its own
// current name is not a collision.
func checkNameUniqueness(
	entries []desiredEntry,
	current []domain.FieldSchema,
	keptIDs map[shareddomain.ID]int,
) []*domain.FieldError {
	occurrences := make(map[string]int, len(entries))
	for _, entry := range entries {
		if key := entry.name.Normalized(); key != "" {
			occurrences[key]++
		}
	}

	remaining := make(map[string]shareddomain.ID, len(current))
	for _, schema := range current {
		if _, kept := keptIDs[schema.ID]; kept {
			remaining[schema.Name.Normalized()] = schema.ID
		}
	}

	problems := make([]*domain.FieldError, 0)
	for _, entry := range entries {
		key := entry.name.Normalized()
		if key == "" {
			continue
		}

		if occurrences[key] > 1 {
			problems = append(problems, domain.NewFieldError(schemaPath(entry.index, "name"),
				domain.CodeDuplicateNameInBatch, "name is repeated in the request", entry.payload.Name))
		}

		owner, taken := remaining[key]
		if !taken {
			continue
		}
		if entry.current != nil && entry.current.ID == owner {
			continue
		}
		problems = append(problems, domain.NewFieldError(schemaPath(entry.index, "name"),
			domain.CodeDuplicateNameInDatabase, "name is already used by another schema of this installation type",
			entry.payload.Name))
	}

	return problems
}

// resolveKind reads the kind an entry asks for. An update without a type keeps
// the stored kind, except that an enum receiving options takes the new ones.
func resolveKind(index int, payload SchemaPayload, current *domain.FieldSchema) (domain.FieldKind, *domain.FieldError) {
	if payload.Type != "" || current == nil {
		return kindFromPayload(index, payload)
	}

	if len(payload.Options) == 0 || current.Type() != domain.FieldTypeEnum {
		return current.Kind, nil
	}

	payload.Type = string(domain.FieldTypeEnum)
	return kindFromPayload(index, payload)
}

func kindFromPayload(index int, payload SchemaPayload) (domain.FieldKind, *domain.FieldError) {
	fieldType, err := domain.ParseFieldType(payload.Type)
	if err != nil {
		return nil, domain.NewFieldError(schemaPath(index, "type"), domain.CodeInvalidType,
			fmt.Sprintf("type must be one of %s", joinFieldTypes()), payload.Type)
	}

	if fieldType == domain.FieldTypeEnum {
		if problem := domain.CheckEnumOptions(payload.Options); problem != "" {
			return nil, domain.NewFieldError(schemaPath(index, "options"), domain.CodeInvalidOptions, problem, payload.Options)
		}
	}

	kind, err := domain.NewFieldKind(fieldType, payload.Options)
	if err != nil {
		return nil, domain.NewFieldError(schemaPath(index, "type"), domain.CodeInvalidType, err.Error(), payload.Type)
	}
	return kind, nil
}

// applySync writes the plan. Deletes go first so a removed name can be reused
// by a create or an update in the same call.
func applySync(ctx context.Context, tx SchemaStore, plan syncPlan) error {
	if len(plan.toDelete) > 0 {
		if err := tx.DeleteMany(ctx, plan.toDelete); err != nil {
			return fmt.Errorf("deleting schemas: %w", err)
		}
	}

	for _, schema := range plan.toCreate {
		if err := tx.Create(ctx, schema); err != nil {
			return fmt.Errorf("creating schema %q: %w", schema.Name, err)
		}
	}

	for _, schema := range plan.toUpdate {
		if err := tx.Update(ctx, schema); err != nil {
			return fmt.Errorf("updating schema %s: %w", schema.ID, err)
		}
	}

	return nil
}

func schemaPath(index int, key string) string {
	return fmt.Sprintf("schemas[%d].%s", index, key)
}

func joinFieldTypes() string {
	names := make([]string, len(domain.FieldTypes))
	for i, fieldType := range domain.FieldTypes {
		names[i] = string(fieldType)
	}
	return strings.Join(names, ", ")
}
