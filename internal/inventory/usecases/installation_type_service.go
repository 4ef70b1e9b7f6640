package usecases

//go:generate mockgen -source=installation_type_service.go -destination=../../../test/unit/doubles/inventory/usecases/installation_type_service_mock.go -package=usecases -mock_names=InstallationTypeService=MockInstallationTypeService

import (
	"context"
	"errors"
	"fmt"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"log/slog"
)

type InstallationTypeService interface {
	CreateInstallationType(ctx context.Context, installationType domain.InstallationType) error
	GetInstallationType(ctx context.Context, id shareddomain.ID) (domain.InstallationType, error)
	ListInstallationTypes(ctx context.Context, pagination Pagination) ([]domain.InstallationType, int, error)
	UpdateInstallationType(ctx context.Context, installationType domain.InstallationType) error
	ActivateInstallationType(ctx context.Context, id shareddomain.ID) error
	DeactivateInstallationType(ctx context.Context, id shareddomain.ID) error
	ListSchemas(ctx context.Context, id shareddomain.ID) ([]domain.FieldSchema, error)
}

func NewInstallationTypeService(repository InstallationTypeRepository, schemas SchemaStore) *SimpleInstallationTypeService {
	return &SimpleInstallationTypeService{
		repository: repository,
		schemas:    schemas,
	}
}

var _ InstallationTypeService = (*SimpleInstallationTypeService)(nil)

type SimpleInstallationTypeService struct {
	repository InstallationTypeRepository
	schemas    SchemaStore
}

func (s *SimpleInstallationTypeService) CreateInstallationType(ctx context.Context, installationType domain.InstallationType) error {
	existing, err := s.repository.GetByCode(ctx, installationType.Code)
	if err != nil && !errors.Is(err, ErrInstallationTypeNotFound) {
		slog.Error("checking existing installation type", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing installation type: %w", err)
	}

	if existing.ID != "" {
		return ErrInstallationTypeCodeTaken
	}

	err = s.repository.Create(ctx, installationType)
	if err != nil {
		slog.Error("creating installation type", slog.String("error", err.Error()))
		return fmt.Errorf("creating installation type: %w", err)
	}

	slog.Info("installation type created",
		slog.String("id", installationType.ID.String()),
		slog.String("code", installationType.Code.String()))

	return nil
}

func (s *SimpleInstallationTypeService) GetInstallationType(ctx context.Context, id shareddomain.ID) (domain.InstallationType, error) {
	installationType, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrInstallationTypeNotFound) {
			return domain.InstallationType{}, ErrInstallationTypeNotFound
		}
		slog.Error("getting installation type", slog.String("error", err.Error()))
		return domain.InstallationType{}, fmt.Errorf("getting installation type: %w", err)
	}

	return installationType, nil
}

func (s *SimpleInstallationTypeService) ListInstallationTypes(
	ctx context.Context,
	pagination Pagination,
) ([]domain.InstallationType, int, error) {
	installationTypes, total, err := s.repository.FindAll(ctx, pagination)
	if err != nil {
		slog.Error("listing installation types", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing installation types: %w", err)
	}

	return installationTypes, total, nil
}

// UpdateInstallationType persists name, description and active flag. The code
// is a business key and keeps its stored value.
func (s *SimpleInstallationTypeService) UpdateInstallationType(ctx context.Context, installationType domain.InstallationType) error {
	existing, err := s.GetInstallationType(ctx, installationType.ID)
	if err != nil {
		return err
	}

	installationType.Code = existing.Code
	installationType.CreatedAt = existing.CreatedAt

	err = s.repository.Update(ctx, installationType)
	if err != nil {
		slog.Error("updating installation type", slog.String("error", err.Error()))
		return fmt.Errorf("updating installation type: %w", err)
	}

	return nil
}

func (s *SimpleInstallationTypeService) ActivateInstallationType(ctx context.Context, id shareddomain.ID) error {
	installationType, err := s.GetInstallationType(ctx, id)
	if err != nil {
		return err
	}

	installationType.Activate()
	return s.UpdateInstallationType(ctx, installationType)
}

func (s *SimpleInstallationTypeService) DeactivateInstallationType(ctx context.Context, id shareddomain.ID) error {
	installationType, err := s.GetInstallationType(ctx, id)
	if err != nil {
		return err
	}

	installationType.Deactivate()
	return s.UpdateInstallationType(ctx, installationType)
}

func (s *SimpleInstallationTypeService) ListSchemas(ctx context.Context, id shareddomain.ID) ([]domain.FieldSchema, error) {
	if _, err := s.GetInstallationType(ctx, id); err != nil {
		return nil, err
	}

	schemas, err := s.schemas.FindByInstallationTypeID(ctx, id)
	if err != nil {
		slog.Error("listing schemas", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing schemas: %w", err)
	}

	return schemas, nil
}
