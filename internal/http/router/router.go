package router

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/straye-as/finch-collector/internal/config"
	"github.com/straye-as/finch-collector/internal/database"
	"github.com/straye-as/finch-collector/internal/http/handler"
	"github.com/straye-as/finch-collector/internal/http/middleware"
	"github.com/straye-as/finch-collector/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/straye-as/finch-collector/docs" // swagger docs
)

// Handlers groups the HTTP handlers mounted under the API base path
type Handlers struct {
	Home        *handler.HomeHandler
	Finch       *handler.FinchHandler
	Toy         *handler.ToyHandler
	Feeding     *handler.FeedingHandler
	Association *handler.AssociationHandler
	Photo       *handler.PhotoHandler
}

type Router struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *gorm.DB
	metrics     *metrics.Metrics
	rateLimiter *middleware.RateLimiter
	handlers    Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	m *metrics.Metrics,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		metrics:     m,
		rateLimiter: rateLimiter,
		handlers:    handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Metrics(rt.metrics))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimiddleware.Timeout(timeout))
	}

	// Liveness
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/health/db", rt.databaseHealth)
	r.Get("/health/ready", rt.readiness)

	if rt.cfg.Server.EnableMetrics && rt.metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	rt.mountPhotoFiles(r)

	r.Route(handler.BasePath, func(r chi.Router) {
		r.Get("/", rt.handlers.Home.Home)
		r.Get("/about", rt.handlers.Home.About)

		r.Route("/finches", func(r chi.Router) {
			r.Get("/", rt.handlers.Finch.List)
			r.Post("/", rt.handlers.Finch.Create)
			r.Get("/{id}", rt.handlers.Finch.GetByID)
			r.Put("/{id}", rt.handlers.Finch.Update)
			r.Delete("/{id}", rt.handlers.Finch.Delete)

			// Sub-resources
			r.Get("/{id}/feedings", rt.handlers.Feeding.List)
			r.Post("/{id}/feedings", rt.handlers.Feeding.Create)
			r.Get("/{id}/photos", rt.handlers.Photo.List)
			r.Post("/{id}/photos", rt.handlers.Photo.Upload)
			r.Post("/{id}/toys/{toyId}", rt.handlers.Association.Associate)
			r.Delete("/{id}/toys/{toyId}", rt.handlers.Association.Disassociate)
		})

		r.Route("/toys", func(r chi.Router) {
			r.Get("/", rt.handlers.Toy.List)
			r.Post("/", rt.handlers.Toy.Create)
			r.Get("/{id}", rt.handlers.Toy.GetByID)
			r.Put("/{id}", rt.handlers.Toy.Update)
			r.Delete("/{id}", rt.handlers.Toy.Delete)
		})
	})

	return r
}

// mountPhotoFiles serves locally stored photos when the public base URL is a
// path on this server.
func (rt *Router) mountPhotoFiles(r chi.Router) {
	ps := rt.cfg.PhotoStorage
	if ps.Mode != "" && ps.Mode != "local" {
		return
	}
	if !strings.HasPrefix(ps.BaseURL, "/") || ps.LocalBasePath == "" {
		return
	}

	prefix := strings.TrimSuffix(ps.BaseURL, "/")
	if prefix == "" {
		rt.logger.Warn("photo base URL is the site root, not serving local photo files")
		return
	}
	fs := http.StripPrefix(prefix, http.FileServer(photoFileSystem{http.Dir(ps.LocalBasePath)}))
	r.Get(prefix+"/*", fs.ServeHTTP)
}

// photoFileSystem serves stored photo files only; directories are not found
// so stored keys cannot be listed.
type photoFileSystem struct {
	fs http.FileSystem
}

func (p photoFileSystem) Open(name string) (http.File, error) {
	f, err := p.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	stats, err := database.HealthCheckWithStats(rt.db)
	if err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	writeHealth(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"stats": map[string]interface{}{
			"max_open_connections": stats.MaxOpenConnections,
			"open_connections":     stats.OpenConnections,
			"in_use":               stats.InUse,
			"idle":                 stats.Idle,
			"wait_count":           stats.WaitCount,
			"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
		},
	})
}

func (rt *Router) readiness(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]interface{})
	status, code := "healthy", http.StatusOK

	if err := database.HealthCheck(rt.db); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		checks["database"] = map[string]interface{}{"status": "unhealthy", "error": err.Error()}
		status, code = "unhealthy", http.StatusServiceUnavailable
	} else {
		checks["database"] = map[string]interface{}{"status": "healthy"}
	}
	checks["photo_storage"] = map[string]interface{}{"status": "configured", "mode": rt.photoStorageMode()}

	writeHealth(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

func (rt *Router) photoStorageMode() string {
	if rt.cfg.PhotoStorage.Mode == "" {
		return "local"
	}
	return rt.cfg.PhotoStorage.Mode
}

func writeHealth(w http.ResponseWriter, code int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
