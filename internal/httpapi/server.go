package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"solverd/internal/preload"
	"solverd/pkg/types"
)

// Service defines the methods required by the HTTP API layer. The preload
// registry satisfies it.
type Service interface {
	Snapshot() []types.SolverStatus
	Get(name string) (types.SolverStatus, bool)
	Report(name string, observe bool) (types.LibraryInfo, error)
	Ready() bool
	FrameworkInitialized() bool
}

// NewMux builds the router: /solvers, /solvers/{name}, /status, /healthz,
// /readyz, /metrics.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	r.Get("/solvers", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.SolversResponse{Solvers: svc.Snapshot()})
	})

	// Reporting against an uninitialized framework would initialize it and
	// permanently foreclose further preloading, so bundled metadata is only
	// produced when the framework is already resident or the caller opts in
	// with ?observe=1.
	r.Get("/solvers/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		observe := svc.FrameworkInitialized() || r.URL.Query().Get("observe") == "1"
		info, err := svc.Report(name, observe)
		if err != nil {
			logRequestError(r, "report", err)
			writeJSONError(w, statusForError(err), err.Error())
			return
		}
		writeJSON(w, info)
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, types.StatusResponse{
			Ready:                svc.Ready(),
			FrameworkInitialized: svc.FrameworkInitialized(),
			ConfigSource:         configSource,
			Solvers:              svc.Snapshot(),
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("preloading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// statusForError maps registry errors to HTTP status codes in one place.
func statusForError(err error) int {
	switch {
	case preload.IsUnknownSolver(err):
		return http.StatusNotFound
	case preload.IsOrderViolation(err):
		return http.StatusConflict
	case preload.IsConflict(err):
		return http.StatusConflict
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}
