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
)

func NewInstallationTypeRepository(orm sql.ORM) (*SimpleInstallationTypeRepository, error) {
	err := orm.AutoMigrate(&internal.InstallationType{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleInstallationTypeRepository{orm: orm}, nil
}

var _ usecases.InstallationTypeRepository = (*SimpleInstallationTypeRepository)(nil)

type SimpleInstallationTypeRepository struct {
	orm sql.ORM
}

func (r *SimpleInstallationTypeRepository) Create(ctx context.Context, installationType domain.InstallationType) error {
	entity := internal.FromInstallationType(installationType)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrInstallationTypeCodeTaken
	}
	if err != nil {
		return fmt.Errorf("creating installation type in database: %w", err)
	}

	return nil
}

func (r *SimpleInstallationTypeRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.InstallationType, error) {
	var entity internal.InstallationType
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.InstallationType{}, usecases.ErrInstallationTypeNotFound
	}

	if err != nil {
		return domain.InstallationType{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleInstallationTypeRepository) GetByCode(ctx context.Context, code shareddomain.Code) (domain.InstallationType, error) {
	var entity internal.InstallationType
	err := r.orm.
		WithContext(ctx).
		First(&entity, "code = ?", shareddomain.NewCode(code.String()).String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.InstallationType{}, usecases.ErrInstallationTypeNotFound
	}

	if err != nil {
		return domain.InstallationType{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleInstallationTypeRepository) FindAll(
	ctx context.Context,
	pagination usecases.Pagination,
) ([]domain.InstallationType, int, error) {
	var total int64
	err := r.orm.WithContext(ctx).Model(&internal.InstallationType{}).Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.InstallationType
	err = r.orm.
		WithContext(ctx).
		Order("name ASC, id ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.InstallationType, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleInstallationTypeRepository) Update(ctx context.Context, installationType domain.InstallationType) error {
	entity := internal.FromInstallationType(installationType)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating installation type in database: %w", err)
	}

	return nil
}
