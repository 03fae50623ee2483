package router

import (
	"encoding/json"
	"net/http"

	"github.com/bookwell/booking-api/internal/availability"
	"github.com/bookwell/booking-api/internal/config"
	"github.com/bookwell/booking-api/internal/database"
	"github.com/bookwell/booking-api/internal/http/handler"
	"github.com/bookwell/booking-api/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/bookwell/booking-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	availability   *availability.Client
	rateLimiter    *middleware.RateLimiter
	catalogHandler *handler.CatalogHandler
	staffHandler   *handler.StaffHandler
	clientHandler  *handler.ClientHandler
	sessionHandler *handler.SessionHandler
	quoteHandler   *handler.QuoteHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	availabilityClient *availability.Client,
	rateLimiter *middleware.RateLimiter,
	catalogHandler *handler.CatalogHandler,
	staffHandler *handler.StaffHandler,
	clientHandler *handler.ClientHandler,
	sessionHandler *handler.SessionHandler,
	quoteHandler *handler.QuoteHandler,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		availability:   availabilityClient,
		rateLimiter:    rateLimiter,
		catalogHandler: catalogHandler,
		staffHandler:   staffHandler,
		clientHandler:  clientHandler,
		sessionHandler: sessionHandler,
		quoteHandler:   quoteHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit) // Apply IP-based rate limiting globally

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Availability service health check
	r.Get("/health/availability", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if rt.availability == nil {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "disabled",
				"service": "availability",
			})
			return
		}

		status := rt.availability.HealthCheck(r.Context())
		body := map[string]interface{}{
			"status":     status.Status,
			"service":    "availability",
			"latency_ms": status.Latency.Milliseconds(),
		}
		if status.Error != "" {
			body["error"] = status.Error
		}

		if status.Status != "healthy" {
			rt.logger.Error("Availability health check failed", zap.String("error", status.Error))
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(body)
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		// Check database
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		// The availability service is optional and sessions fall back to the
		// full roster without it, so it never fails readiness.
		if rt.availability == nil {
			checks["availability"] = map[string]interface{}{
				"status": "disabled",
			}
		} else {
			status := rt.availability.HealthCheck(r.Context())
			check := map[string]interface{}{
				"status": status.Status,
			}
			if status.Error != "" {
				check["error"] = status.Error
			}
			checks["availability"] = check
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Services
		r.Route("/services", func(r chi.Router) {
			r.Get("/", rt.catalogHandler.List)
			r.Post("/", rt.catalogHandler.Create)
			r.Get("/{id}", rt.catalogHandler.GetByID)
			r.Put("/{id}", rt.catalogHandler.Update)
			r.Delete("/{id}", rt.catalogHandler.Delete)
		})

		// Staff
		r.Route("/staff", func(r chi.Router) {
			r.Get("/", rt.staffHandler.List)
			r.Post("/", rt.staffHandler.Create)
			r.Get("/{id}", rt.staffHandler.GetByID)
			r.Put("/{id}", rt.staffHandler.Update)
			r.Delete("/{id}", rt.staffHandler.Delete)
		})

		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/search", rt.clientHandler.Search)
			r.Get("/{id}", rt.clientHandler.GetByID)
		})

		// Quoting sessions
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", rt.sessionHandler.Create)
			r.Get("/{id}", rt.sessionHandler.Get)
			r.Delete("/{id}", rt.sessionHandler.Cancel)

			// Line items and assignments
			r.Post("/{id}/items", rt.sessionHandler.AddLineItem)
			r.Delete("/{id}/items/{serviceId}", rt.sessionHandler.RemoveLineItem)
			r.Put("/{id}/items/{serviceId}/quantity", rt.sessionHandler.SetQuantity)
			r.Put("/{id}/items/{serviceId}/assignments", rt.sessionHandler.AssignStaff)
			r.Put("/{id}/items/{serviceId}/assignments/start", rt.sessionHandler.SetAssignmentStart)
			r.Put("/{id}/items/{serviceId}/assignments/end", rt.sessionHandler.SetAssignmentEnd)

			// Booking details, discount and client selection
			r.Patch("/{id}/booking", rt.sessionHandler.UpdateBooking)
			r.Put("/{id}/discount", rt.sessionHandler.SetDiscount)
			r.Put("/{id}/client", rt.sessionHandler.SetClient)

			// Derived state
			r.Get("/{id}/totals", rt.sessionHandler.Totals)
			r.Get("/{id}/availability", rt.sessionHandler.Availability)

			// Lifecycle endpoints
			r.Post("/{id}/submit", rt.sessionHandler.Submit)
			r.Post("/{id}/reset", rt.sessionHandler.Reset)
		})

		// Quotes
		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", rt.quoteHandler.List)
			r.Get("/{id}", rt.quoteHandler.GetByID)
			r.Put("/{id}/status", rt.quoteHandler.UpdateStatus)

			// Attachments
			r.Post("/{id}/attachments", rt.quoteHandler.UploadAttachment)
			r.Get("/{id}/attachments/{attachmentId}", rt.quoteHandler.DownloadAttachment)
			r.Delete("/{id}/attachments/{attachmentId}", rt.quoteHandler.DeleteAttachment)
		})
	})

	return r
}
