package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"inventory-server/cmd/api/wire"
	"inventory-server/cmd/config"
	"inventory-server/internal/infra/async"
	"inventory-server/internal/infra/httpserver"
	"inventory-server/internal/infra/node"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	slog.SetDefault(newLogger(config.General.LogLevel))
	slog.Info("inventory server is initializing", slog.String("environment", config.General.Environment))
	slog.Debug("config loaded", "data", config)

	shutdownTelemetry, err := setupTelemetry(context.Background(), config)
	if err != nil {
		panic(err)
	}

	httpServer := httpserver.NewServer(
		httpserver.Options{
			Addr:           config.HTTP.Addr,
			AllowedOrigins: config.HTTP.AllowedOrigins,
		},
		handleWireInjector(wire.InitializeInstallationTypeController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeInstallationController()).(httpserver.Controller),
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	ticker := time.NewTicker(config.Purge.Tick)
	purgeWorker := handleWireInjector(wire.InitializeSchemaPurgeWorker(ticker)).(async.Worker)
	wg.Add(1)
	go purgeWorker.Run(appCtx, wg.Done)

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	purgeWorker.Shutdown()
	ticker.Stop()
	if err := shutdownTelemetry(); err != nil {
		slog.Error("shutting down telemetry", slog.String("error", err.Error()))
	}

	cancelFn()
	wg.Wait()
	slog.Info("good bye!!!")
	os.Exit(0)
}

func newLogger(logLevel string) *slog.Logger {
	level, ok := logLevelMapping[logLevel]
	if !ok {
		level = slog.LevelInfo
	}

	info := node.GetNodeInfo()
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       level,
		ReplaceAttr: slogReplaceAttr,
	})
	return slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("version", info.Version),
		slog.String("node_id", info.ID),
	}))
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
