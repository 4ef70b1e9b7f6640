package usecases

//go:generate mockgen -source=installation_catalog_service.go -destination=../../../test/unit/doubles/inventory/usecases/installation_catalog_service_mock.go -package=usecases -mock_names=InstallationCatalogService=MockInstallationCatalogService

import (
	"context"
	"errors"
	"fmt"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"log/slog"
)

type InstallationCatalogService interface {
	CreateInstallation(ctx context.Context, installation domain.Installation) error
	GetInstallation(ctx context.Context, id shareddomain.ID) (domain.Installation, error)
	ListInstallations(ctx context.Context, filter InstallationFilter, pagination Pagination) ([]domain.Installation, int, error)
	UpdateInstallation(ctx context.Context, installation domain.Installation) error
	DeleteInstallation(ctx context.Context, id shareddomain.ID) error
}

func NewInstallationCatalogService(
	repository InstallationRepository,
	installationTypes InstallationTypeRepository,
) *SimpleInstallationCatalogService {
	return &SimpleInstallationCatalogService{
		repository:        repository,
		installationTypes: installationTypes,
	}
}

var _ InstallationCatalogService = (*SimpleInstallationCatalogService)(nil)

type SimpleInstallationCatalogService struct {
	repository        InstallationRepository
	installationTypes InstallationTypeRepository
}

func (s *SimpleInstallationCatalogService) CreateInstallation(ctx context.Context, installation domain.Installation) error {
	if err := s.checkType(ctx, installation.InstallationTypeID); err != nil {
		return err
	}

	err := s.repository.Create(ctx, installation)
	if err != nil {
		slog.Error("creating installation", slog.String("error", err.Error()))
		return fmt.Errorf("creating installation: %w", err)
	}

	slog.Info("installation created", slog.String("id", installation.ID.String()))
	return nil
}

func (s *SimpleInstallationCatalogService) GetInstallation(ctx context.Context, id shareddomain.ID) (domain.Installation, error) {
	installation, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrInstallationNotFound) {
			return domain.Installation{}, ErrInstallationNotFound
		}
		slog.Error("getting installation", slog.String("error", err.Error()))
		return domain.Installation{}, fmt.Errorf("getting installation: %w", err)
	}

	return installation, nil
}

func (s *SimpleInstallationCatalogService) ListInstallations(
	ctx context.Context,
	filter InstallationFilter,
	pagination Pagination,
) ([]domain.Installation, int, error) {
	installations, total, err := s.repository.FindAll(ctx, filter, pagination)
	if err != nil {
		slog.Error("listing installations", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing installations: %w", err)
	}

	return installations, total, nil
}

func (s *SimpleInstallationCatalogService) UpdateInstallation(ctx context.Context, installation domain.Installation) error {
	existing, err := s.GetInstallation(ctx, installation.ID)
	if err != nil {
		return err
	}

	if !sameTypeID(existing.InstallationTypeID, installation.InstallationTypeID) {
		if err := s.checkType(ctx, installation.InstallationTypeID); err != nil {
			return err
		}
	}

	installation.CreatedAt = existing.CreatedAt
	err = s.repository.Update(ctx, installation)
	if err != nil {
		slog.Error("updating installation", slog.String("error", err.Error()))
		return fmt.Errorf("updating installation: %w", err)
	}

	return nil
}

func (s *SimpleInstallationCatalogService) DeleteInstallation(ctx context.Context, id shareddomain.ID) error {
	if _, err := s.GetInstallation(ctx, id); err != nil {
		return err
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		slog.Error("deleting installation", slog.String("error", err.Error()))
		return fmt.Errorf("deleting installation: %w", err)
	}

	return nil
}

// checkType accepts a missing type; a present one must exist and be active.
func (s *SimpleInstallationCatalogService) checkType(ctx context.Context, typeID *shareddomain.ID) error {
	if typeID == nil {
		return nil
	}

	installationType, err := s.installationTypes.GetByID(ctx, *typeID)
	if err != nil {
		if errors.Is(err, ErrInstallationTypeNotFound) {
			return ErrInstallationTypeNotFound
		}
		return fmt.Errorf("getting installation type: %w", err)
	}

	if !installationType.IsActive {
		return ErrInstallationTypeInactive
	}
	return nil
}

func sameTypeID(a, b *shareddomain.ID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
