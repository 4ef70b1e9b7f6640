package httpserver

import (
	"context"
	"errors"
	"inventory-server/internal/infra/node"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const (
	_shutdownTimeout   = 10 * time.Second
	_readHeaderTimeout = 5 * time.Second
	_corsMaxAge        = 300
)

type Server interface {
	Run()
	Shutdown()
}

type Options struct {
	Addr           string
	AllowedOrigins []string
}

var _ Server = (*StandardServer)(nil)

type StandardServer struct {
	server *http.Server
}

// NewServer mounts the health and metrics endpoints plus every controller
// route on one mux behind the middleware chain.
func NewServer(options Options, controllers ...Controller) *StandardServer {
	router := http.NewServeMux()
	router.Handle("GET /healthz", getHealthz())
	router.Handle("GET /metrics", promhttp.Handler())
	for _, controller := range controllers {
		controller.AddRoutes(router)
	}

	handler := chain(router,
		newCORS(options.AllowedOrigins).Handler,
		MetricsMiddleware(),
		createTracingMiddleware(),
		createRequestIDMiddleware(),
		createUserHeaderMiddleware(),
		createAccessLogMiddleware(),
	)

	return &StandardServer{
		server: &http.Server{
			Addr:              options.Addr,
			Handler:           handler,
			ReadHeaderTimeout: _readHeaderTimeout,
		},
	}
}

func newCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			_requestIDHeader,
			"X-User-ID",
			"X-User-Name",
			"X-User-Email",
		},
		ExposedHeaders: []string{_requestIDHeader},
		MaxAge:         _corsMaxAge,
	})
}

func (s *StandardServer) Run() {
	slog.Info("http server listening", slog.String("addr", s.server.Addr))
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (s *StandardServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("shutting down http server", slog.String("error", err.Error()))
	}
}

// Handler exposes the full middleware chain, mostly for tests.
func (s *StandardServer) Handler() http.Handler {
	return s.server.Handler
}

type healthResponse struct {
	Status        string `json:"status"`
	NodeID        string `json:"node_id"`
	Hostname      string `json:"hostname"`
	Version       string `json:"version"`
	CommitHash    string `json:"commit_hash"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func getHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := node.GetNodeInfo()
		ReplyJSONResponse(w, http.StatusOK, healthResponse{
			Status:        "success",
			NodeID:        info.ID,
			Hostname:      info.Hostname,
			Version:       info.Version,
			CommitHash:    info.CommitHash,
			UptimeSeconds: int64(info.Uptime().Seconds()),
		})
	}
}
