package persistence

import (
	"context"
	"fmt"
	"inventory-server/internal/infra/sql"
	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/persistence/internal"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"time"

	"gorm.io/gorm/clause"
)

func NewPropertyRepository(orm sql.ORM) (*SimplePropertyRepository, error) {
	err := orm.AutoMigrate(&internal.InstallationProperty{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimplePropertyRepository{orm: orm}, nil
}

var _ usecases.PropertyStore = (*SimplePropertyRepository)(nil)

type SimplePropertyRepository struct {
	orm sql.ORM
}

func (r *SimplePropertyRepository) FindByInstallationID(
	ctx context.Context,
	installationID shareddomain.ID,
) ([]domain.PropertyValue, error) {
	var entities []internal.InstallationProperty
	err := r.orm.
		WithContext(ctx).
		Where("installation_id = ?", installationID.String()).
		Order("created_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.PropertyValue, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

// Upsert keys on (installation_id, installation_schema_id). An existing row
// keeps its id and creation time and takes the new value.
func (r *SimplePropertyRepository) Upsert(ctx context.Context, value domain.PropertyValue) error {
	entity := internal.FromPropertyValue(value)
	entity.UpdatedAt = time.Now()

	err := r.orm.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "installation_id"},
				{Name: "installation_schema_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("upserting property value: %w", err)
	}

	return nil
}

func (r *SimplePropertyRepository) Transaction(ctx context.Context, fn func(tx usecases.PropertyStore) error) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		return fn(&SimplePropertyRepository{orm: tx})
	})
}
