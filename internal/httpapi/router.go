package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	HomeHandler        http.HandlerFunc
	HealthHandler      http.HandlerFunc
	Logger             *zap.Logger
	CORSAllowedOrigins []string
}

// NewRouter wires HTTP routes. Only GET / and GET /health are registered; chi answers
// every other path with 404 and every other method on these paths with 405.
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	if len(deps.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: deps.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			MaxAge:         300,
		}))
	}

	if deps.HomeHandler != nil {
		r.Get("/", deps.HomeHandler)
	}
	if deps.HealthHandler != nil {
		r.Get("/health", deps.HealthHandler)
	}

	return r
}
