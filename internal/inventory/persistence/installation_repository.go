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

func NewInstallationRepository(orm sql.ORM) (*SimpleInstallationRepository, error) {
	err := orm.AutoMigrate(&internal.Installation{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleInstallationRepository{orm: orm}, nil
}

var _ usecases.InstallationRepository = (*SimpleInstallationRepository)(nil)

type SimpleInstallationRepository struct {
	orm sql.ORM
}

func (r *SimpleInstallationRepository) Create(ctx context.Context, installation domain.Installation) error {
	entity := internal.FromInstallation(installation)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating installation in database: %w", err)
	}

	return nil
}

func (r *SimpleInstallationRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Installation, error) {
	var entity internal.Installation
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND deleted_at IS NULL", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Installation{}, usecases.ErrInstallationNotFound
	}

	if err != nil {
		return domain.Installation{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleInstallationRepository) FindAll(
	ctx context.Context,
	filter usecases.InstallationFilter,
	pagination usecases.Pagination,
) ([]domain.Installation, int, error) {
	scoped := func() sql.ORM {
		query := r.orm.WithContext(ctx).Model(&internal.Installation{}).Where("deleted_at IS NULL")
		if filter.InstallationTypeID != nil {
			query = query.Where("installation_type_id = ?", filter.InstallationTypeID.String())
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Installation
	err := scoped().
		Order("name ASC, id ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Installation, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleInstallationRepository) Update(ctx context.Context, installation domain.Installation) error {
	entity := internal.FromInstallation(installation)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating installation in database: %w", err)
	}

	return nil
}

// Delete is a soft delete. Property values stay until a hard delete.
func (r *SimpleInstallationRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	now := time.Now().UTC()
	err := r.orm.
		WithContext(ctx).
		Exec("UPDATE installations SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL", now, now, id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("deleting installation in database: %w", err)
	}

	return nil
}
