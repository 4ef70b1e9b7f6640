package usecases

//go:generate mockgen -source=property_service.go -destination=../../../test/unit/doubles/inventory/usecases/property_service_mock.go -package=usecases -mock_names=PropertyManager=MockPropertyManager

import (
	"context"
	"errors"
	"fmt"
	"inventory-server/internal/inventory/domain"
	shareddomain "inventory-server/internal/shared_kernel/domain"
	"log/slog"
)

type PropertyManager interface {
	SetProperties(ctx context.Context, installationID shareddomain.ID, entries []domain.PropertyEntry) ([]domain.PropertyWithSchema, error)
	GetPropertiesWithSchema(ctx context.Context, installationID shareddomain.ID) ([]domain.PropertyWithSchema, error)
}

func NewPropertyService(
	properties PropertyStore,
	schemas SchemaStore,
	installations InstallationRepository,
	publisher ChangePublisher,
) *PropertyService {
	return &PropertyService{
		properties:    properties,
		schemas:       schemas,
		installations: installations,
		publisher:     publisher,
	}
}

var _ PropertyManager = (*PropertyService)(nil)

type PropertyService struct {
	properties    PropertyStore
	schemas       SchemaStore
	installations InstallationRepository
	publisher     ChangePublisher
}

// SetProperties validates every entry before writing any of them. Fields not
// named in entries keep their stored value.
func (s *PropertyService) SetProperties(
	ctx context.Context,
	installationID shareddomain.ID,
	entries []domain.PropertyEntry,
) ([]domain.PropertyWithSchema, error) {
	_, schemas, err := s.loadShape(ctx, installationID)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]domain.FieldSchema, len(schemas))
	for _, schema := range schemas {
		byName[schema.Name.Normalized()] = schema
	}

	values := make([]domain.PropertyValue, 0, len(entries))
	problems := make([]domain.FieldError, 0)
	for _, entry := range entries {
		schema, ok := byName[shareddomain.Name(entry.Name).Normalized()]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, entry.Name)
		}

		if fieldErr := domain.ValidateValue(schema, entry.Value); fieldErr != nil {
			problems = append(problems, *fieldErr)
			continue
		}

		values = append(values, domain.NewPropertyValue(installationID, schema.ID, entry.Value))
	}

	if len(problems) > 0 {
		return nil, domain.NewValidationError("invalid property values", problems)
	}

	err = s.properties.Transaction(ctx, func(tx PropertyStore) error {
		for _, value := range values {
			if err := tx.Upsert(ctx, value); err != nil {
				return fmt.Errorf("upserting property %s: %w", value.InstallationSchemaID, err)
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("setting properties",
			slog.String("installation_id", installationID.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("setting properties: %w", err)
	}

	result, err := s.GetPropertiesWithSchema(ctx, installationID)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.PropertiesSet(ctx, installationID, result); err != nil {
		slog.Error("publishing properties set event",
			slog.String("installation_id", installationID.String()),
			slog.String("error", err.Error()),
		)
	}

	return result, nil
}

// GetPropertiesWithSchema returns one entry per schema of the installation
// type, in schema order, whether or not a value is stored for it.
func (s *PropertyService) GetPropertiesWithSchema(
	ctx context.Context,
	installationID shareddomain.ID,
) ([]domain.PropertyWithSchema, error) {
	_, schemas, err := s.loadShape(ctx, installationID)
	if err != nil {
		return nil, err
	}

	stored, err := s.properties.FindByInstallationID(ctx, installationID)
	if err != nil {
		return nil, fmt.Errorf("getting properties: %w", err)
	}

	valuesBySchema := make(map[shareddomain.ID]string, len(stored))
	for _, value := range stored {
		valuesBySchema[value.InstallationSchemaID] = value.Value
	}

	result := make([]domain.PropertyWithSchema, len(schemas))
	for i, schema := range schemas {
		result[i] = domain.PropertyWithSchema{Schema: schema}

		raw, ok := valuesBySchema[schema.ID]
		if !ok {
			continue
		}

		value, err := domain.DecodeStored(schema, &raw)
		if err != nil {
			var fieldErr *domain.FieldError
			if !errors.As(err, &fieldErr) {
				return nil, fmt.Errorf("decoding property %q: %w", schema.Name, err)
			}
			slog.Warn("stored property no longer matches its schema",
				slog.String("installation_id", installationID.String()),
				slog.String("schema_id", schema.ID.String()),
				slog.String("field_type", string(schema.Type())),
			)
			result[i].Problem = fieldErr
			continue
		}
		result[i].Value = value
	}

	return result, nil
}

func (s *PropertyService) loadShape(
	ctx context.Context,
	installationID shareddomain.ID,
) (domain.Installation, []domain.FieldSchema, error) {
	installation, err := s.installations.GetByID(ctx, installationID)
	if err != nil {
		if errors.Is(err, ErrInstallationNotFound) {
			return domain.Installation{}, nil, ErrInstallationNotFound
		}
		return domain.Installation{}, nil, fmt.Errorf("getting installation: %w", err)
	}

	if !installation.HasType() {
		return domain.Installation{}, nil, ErrInstallationWithoutType
	}

	schemas, err := s.schemas.FindByInstallationTypeID(ctx, *installation.InstallationTypeID)
	if err != nil {
		return domain.Installation{}, nil, fmt.Errorf("getting schemas: %w", err)
	}

	return installation, schemas, nil
}
