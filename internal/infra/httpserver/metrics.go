package httpserver

import (
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const _metricPrefix = "inventory_server"

var (
	_durationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

	uuidRegex = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	instrumentsMutex sync.Mutex
	instruments      *httpInstruments
)

type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

// ResetMetricsForTesting forces the next middleware to rebuild its instruments
// on the current meter provider.
func ResetMetricsForTesting() {
	instrumentsMutex.Lock()
	defer instrumentsMutex.Unlock()
	instruments = nil
}

func IsMetricsInitialized() bool {
	instrumentsMutex.Lock()
	defer instrumentsMutex.Unlock()
	return instruments != nil
}

func loadInstruments() *httpInstruments {
	instrumentsMutex.Lock()
	defer instrumentsMutex.Unlock()

	if instruments != nil {
		return instruments
	}

	built, err := newHTTPInstruments(otel.GetMeterProvider().Meter("inventory-server"))
	if err != nil {
		panic(err)
	}
	instruments = built
	return instruments
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	duration, err := meter.Float64Histogram(
		metricName("http.request.duration.seconds"),
		metric.WithDescription("Duration of HTTP requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(_durationBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("request duration histogram: %w", err)
	}

	total, err := meter.Int64Counter(
		metricName("http.requests.total"),
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("request counter: %w", err)
	}

	active, err := meter.Int64UpDownCounter(
		metricName("http.requests.active"),
		metric.WithDescription("Number of HTTP requests currently being processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("active requests counter: %w", err)
	}

	return &httpInstruments{duration: duration, total: total, active: active}, nil
}

func metricName(name string) string {
	return fmt.Sprintf("%s.%s", _metricPrefix, name)
}

// MetricsMiddleware records duration, count and in-flight requests per
// method and normalized endpoint. Completed requests also carry the status
// code and its class.
func MetricsMiddleware() func(http.Handler) http.Handler {
	inst := loadInstruments()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			route := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.endpoint", normalizeEndpoint(r.URL.Path)),
			)
			inst.active.Add(ctx, 1, route)
			defer inst.active.Add(ctx, -1, route)

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			outcome := metric.WithAttributes(
				attribute.Int("http.status_code", wrappedWriter.statusCode),
				attribute.String("http.status_class", statusClass(wrappedWriter.statusCode)),
			)
			inst.duration.Record(ctx, time.Since(start).Seconds(), route, outcome)
			inst.total.Add(ctx, 1, route, outcome)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

// normalizeEndpoint replaces ids in the path so every installation shares one
// series.
func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	return uuidRegex.ReplaceAllString(path, "_id")
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
