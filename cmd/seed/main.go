package main

import (
	"context"
	"log/slog"
	"os"

	"inventory-server/cmd/api/wire"
	"inventory-server/internal/inventory/usecases"

	"github.com/spf13/pflag"
)

func main() {
	perType := pflag.IntP("installations", "n", 2, "example installations created for each new type")
	verbose := pflag.BoolP("verbose", "v", false, "log at debug level")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	s := &seeder{
		types:         handleWireInjector(wire.InitializeInstallationTypeService()).(usecases.InstallationTypeService),
		catalog:       handleWireInjector(wire.InitializeInstallationCatalogService()).(usecases.InstallationCatalogService),
		installations: handleWireInjector(wire.InitializeInstallationService()).(usecases.InstallationAggregate),
		schemas:       handleWireInjector(wire.InitializeSchemaStore()).(usecases.SchemaStore),
		perType:       *perType,
	}

	report, err := s.Run(context.Background(), defaultTypes)
	if err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seeding finished",
		slog.Int("types", report.Types),
		slog.Int("skipped", report.Skipped),
		slog.Int("schemas", report.Schemas),
		slog.Int("installations", report.Installations),
	)
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
