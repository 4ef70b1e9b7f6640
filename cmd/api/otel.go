package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"inventory-server/cmd/config"
	"inventory-server/internal/infra/node"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	_serviceName       = "inventory-server"
	_collectPeriod     = 30 * time.Second
	_collectTimeout    = 35 * time.Second
	_runtimeStatsEvery = time.Minute
	_shutdownTimeout   = 5 * time.Second
)

// Latency buckets in milliseconds.
var _latencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

type shutdownFunc func() error

func noopShutdown() error { return nil }

// setupTelemetry installs global trace and meter providers exporting over
// OTLP/gRPC. The returned function flushes both and must run before exit.
func setupTelemetry(ctx context.Context, cfg config.AppConfig) (shutdownFunc, error) {
	if !cfg.Telemetry.Enabled {
		slog.Info("telemetry disabled")
		return noopShutdown, nil
	}

	slog.Info("starting telemetry providers", slog.String("endpoint", cfg.Telemetry.Endpoint))
	res := serviceResource(cfg.General.Environment)

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Telemetry.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating trace exporter: %w", err)
	}
	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Telemetry.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("creating metric exporter: %w", err),
			tracerProvider.Shutdown(ctx),
		)
	}
	meterProvider := metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(metricExporter,
			metric.WithTimeout(_collectTimeout),
			metric.WithInterval(_collectPeriod),
		)),
		metric.WithView(metric.NewView(
			metric.Instrument{Name: "*", Kind: metric.InstrumentKindHistogram},
			metric.Stream{Aggregation: metric.AggregationExplicitBucketHistogram{Boundaries: _latencyBuckets}},
		)),
	)
	otel.SetMeterProvider(meterProvider)

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(_runtimeStatsEvery)); err != nil {
		slog.Warn("runtime metrics not started", slog.String("error", err.Error()))
	}

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
		defer cancel()
		return errors.Join(
			meterProvider.Shutdown(ctx),
			tracerProvider.Shutdown(ctx),
		)
	}, nil
}

func serviceResource(environment string) *resource.Resource {
	info := node.GetNodeInfo()
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(_serviceName),
		semconv.ServiceVersionKey.String(info.Version),
		semconv.ServiceInstanceIDKey.String(info.ID),
		semconv.HostNameKey.String(info.Hostname),
		semconv.DeploymentEnvironmentKey.String(environment),
	)
}
