package persistence

import (
	"context"
	"errors"
	"fmt"
	"inventory-server/internal/infra/sql"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/persistence/internal"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"
)

// Columns CheckUniqueness may compare. Anything else is rejected before it
// reaches a query.
var _schemaUniquenessColumns = map[string]bool{
	"name":                 true,
	"installation_type_id": true,
	"field_type":           true,
}

func NewSchemaRepository(orm sql.ORM) (*SimpleSchemaRepository, error) {
	err := orm.AutoMigrate(&internal.InstallationSchema{}, &internal.InstallationProperty{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	err = orm.Exec(internal.UniqueLiveNameIndex).Error()
	if err != nil {
		return nil, fmt.Errorf("creating schema name index: %w", err)
	}

	return &SimpleSchemaRepository{orm: orm}, nil
}

var _ usecases.SchemaStore = (*SimpleSchemaRepository)(nil)

type SimpleSchemaRepository struct {
	orm sql.ORM
}

func (r *SimpleSchemaRepository) FindByInstallationTypeID(
	ctx context.Context,
	installationTypeID shareddomain.ID,
) ([]domain.FieldSchema, error) {
	var entities []internal.InstallationSchema
	err := r.orm.
		WithContext(ctx).
		Where("installation_type_id = ? AND deleted_at IS NULL", installationTypeID.String()).
		Order("position ASC, created_at ASC, id ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toFieldSchemas(entities)
}

func (r *SimpleSchemaRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.FieldSchema, error) {
	var entity internal.InstallationSchema
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND deleted_at IS NULL", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldSchema{}, usecases.ErrSchemaNotFound
	}

	if err != nil {
		return domain.FieldSchema{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

func (r *SimpleSchemaRepository) Create(ctx context.Context, schema domain.FieldSchema) error {
	entity, err := internal.FromFieldSchema(schema)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %q", usecases.ErrDuplicateSchemaName, schema.Name)
	}
	if err != nil {
		return fmt.Errorf("creating schema in database: %w", err)
	}

	return nil
}

func (r *SimpleSchemaRepository) Update(ctx context.Context, schema domain.FieldSchema) error {
	entity, err := internal.FromFieldSchema(schema)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Save(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %q", usecases.ErrDuplicateSchemaName, schema.Name)
	}
	if err != nil {
		return fmt.Errorf("updating schema in database: %w", err)
	}

	return nil
}

func (r *SimpleSchemaRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	return r.DeleteMany(ctx, []shareddomain.ID{id})
}

func (r *SimpleSchemaRepository) DeleteMany(ctx context.Context, ids []shareddomain.ID) error {
	if len(ids) == 0 {
		return nil
	}

	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Exec("UPDATE installation_schemas SET deleted_at = ?, updated_at = ? WHERE id IN ? AND deleted_at IS NULL",
			now, now, idStrings(ids)).
		Error()
	if err != nil {
		return fmt.Errorf("soft deleting schemas: %w", err)
	}

	return nil
}

// ForceDeleteMany removes the rows for good, property values first.
func (r *SimpleSchemaRepository) ForceDeleteMany(ctx context.Context, ids []shareddomain.ID) error {
	if len(ids) == 0 {
		return nil
	}

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			WithContext(ctx).
			Where("installation_schema_id IN ?", idStrings(ids)).
			Delete(&internal.InstallationProperty{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting property values: %w", err)
		}

		err = tx.
			WithContext(ctx).
			Where("id IN ?", idStrings(ids)).
			Delete(&internal.InstallationSchema{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting schemas: %w", err)
		}

		return nil
	})
}

func (r *SimpleSchemaRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]domain.FieldSchema, error) {
	var entities []internal.InstallationSchema
	err := r.orm.
		WithContext(ctx).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff.UTC()).
		Order("deleted_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toFieldSchemas(entities)
}

// CheckUniqueness returns the fields whose value is already held by another
// live schema. Text comparison ignores case.
func (r *SimpleSchemaRepository) CheckUniqueness(
	ctx context.Context,
	fields []usecases.UniquenessField,
	excludeID *shareddomain.ID,
) ([]usecases.UniquenessField, error) {
	taken := make([]usecases.UniquenessField, 0)
	for _, field := range fields {
		if !_schemaUniquenessColumns[field.Column] {
			return nil, fmt.Errorf("column %q cannot be checked for uniqueness", field.Column)
		}

		query := r.orm.
			WithContext(ctx).
			Model(&internal.InstallationSchema{}).
			Where(fmt.Sprintf("lower(%s) = lower(?) AND deleted_at IS NULL", field.Column), field.Value)

		if field.ScopeColumn != "" {
			if !_schemaUniquenessColumns[field.ScopeColumn] {
				return nil, fmt.Errorf("column %q cannot scope a uniqueness check", field.ScopeColumn)
			}
			query = query.Where(fmt.Sprintf("%s = ?", field.ScopeColumn), field.ScopeValue)
		}

		if excludeID != nil {
			query = query.Where("id <> ?", excludeID.String())
		}

		var count int64
		if err := query.Count(&count).Error(); err != nil {
			return nil, fmt.Errorf("count query: %w", err)
		}

		if count > 0 {
			taken = append(taken, field)
		}
	}

	return taken, nil
}

// Transaction runs fn with a store bound to one database transaction.
func (r *SimpleSchemaRepository) Transaction(ctx context.Context, fn func(tx usecases.SchemaStore) error) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		return fn(&SimpleSchemaRepository{orm: tx})
	})
}

func toFieldSchemas(entities []internal.InstallationSchema) ([]domain.FieldSchema, error) {
	result := make([]domain.FieldSchema, len(entities))
	for i, entity := range entities {
		schema, err := entity.ToDomain()
		if err != nil {
			return nil, err
		}
		result[i] = schema
	}
	return result, nil
}

func idStrings(ids []shareddomain.ID) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = id.String()
	}
	return result
}
