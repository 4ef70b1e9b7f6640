package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"inventory-server/internal/inventory/domain"
	"inventory-server/internal/inventory/usecases"
	shareddomain "inventory-server/internal/shared_kernel/domain"
)

type seeder struct {
	types         usecases.InstallationTypeService
	catalog       usecases.InstallationCatalogService
	installations usecases.InstallationAggregate
	schemas       usecases.SchemaStore
	perType       int
}

type seedReport struct {
	Types         int
	Skipped       int
	Schemas       int
	Installations int
}

// Run creates every default type that does not exist yet, its field set and
// perType example installations with generated values.
func (s *seeder) Run(ctx context.Context, seeds []typeSeed) (seedReport, error) {
	report := seedReport{}
	for _, seed := range seeds {
		installationType, err := domain.NewInstallationTypeBuilder().
			WithName(seed.Name).
			WithCode(seed.Code).
			WithDescription(seed.Description).
			Build()
		if err != nil {
			return report, fmt.Errorf("building installation type %s: %w", seed.Code, err)
		}

		err = s.types.CreateInstallationType(ctx, installationType)
		if errors.Is(err, usecases.ErrInstallationTypeCodeTaken) {
			slog.Warn("installation type already exists, skipping", slog.String("code", seed.Code))
			report.Skipped++
			continue
		}
		if err != nil {
			return report, fmt.Errorf("creating installation type %s: %w", seed.Code, err)
		}
		report.Types++

		payloads, err := s.freshSchemas(ctx, installationType.ID, seed.Schemas)
		if err != nil {
			return report, err
		}

		schemas, err := s.installations.SyncSchemas(ctx, installationType.ID, payloads)
		if err != nil {
			return report, fmt.Errorf("syncing schemas of %s: %w", seed.Code, err)
		}
		report.Schemas += len(schemas)

		created, err := s.seedInstallations(ctx, installationType, schemas)
		report.Installations += created
		if err != nil {
			return report, err
		}
	}

	return report, nil
}

// freshSchemas drops the payloads whose name is already held by a schema of
// the type.
func (s *seeder) freshSchemas(
	ctx context.Context,
	typeID shareddomain.ID,
	payloads []usecases.SchemaPayload,
) ([]usecases.SchemaPayload, error) {
	fields := make([]usecases.UniquenessField, len(payloads))
	for i, payload := range payloads {
		fields[i] = usecases.UniquenessField{
			Column:      "name",
			Value:       payload.Name,
			ScopeColumn: "installation_type_id",
			ScopeValue:  typeID.String(),
		}
	}

	taken, err := s.schemas.CheckUniqueness(ctx, fields, nil)
	if err != nil {
		return nil, fmt.Errorf("checking schema names: %w", err)
	}

	takenNames := make(map[string]bool, len(taken))
	for _, field := range taken {
		slog.Warn("schema already exists, skipping", slog.String("name", field.Value))
		takenNames[shareddomain.Name(field.Value).Normalized()] = true
	}

	result := make([]usecases.SchemaPayload, 0, len(payloads))
	for _, payload := range payloads {
		if !takenNames[shareddomain.Name(payload.Name).Normalized()] {
			result = append(result, payload)
		}
	}
	return result, nil
}

func (s *seeder) seedInstallations(
	ctx context.Context,
	installationType domain.InstallationType,
	schemas []domain.FieldSchema,
) (int, error) {
	created := 0
	for n := range s.perType {
		installation, err := domain.NewInstallationBuilder().
			WithName(fmt.Sprintf("%s %d", installationType.Name, n+1)).
			WithInstallationTypeID(installationType.ID).
			Build()
		if err != nil {
			return created, fmt.Errorf("building installation: %w", err)
		}

		if err := s.catalog.CreateInstallation(ctx, installation); err != nil {
			return created, fmt.Errorf("creating installation %q: %w", installation.Name, err)
		}
		created++

		entries := make([]domain.PropertyEntry, 0, len(schemas))
		for _, schema := range schemas {
			entries = append(entries, domain.PropertyEntry{
				Name:  string(schema.Name),
				Value: domain.ExampleValue(schema.Kind, n),
			})
		}

		if _, err := s.installations.SetProperties(ctx, installation.ID, entries); err != nil {
			return created, fmt.Errorf("setting properties of %q: %w", installation.Name, err)
		}
	}

	return created, nil
}
