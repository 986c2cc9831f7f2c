package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/straye-as/bizdesk-api/internal/cache"
	"github.com/straye-as/bizdesk-api/internal/config"
	"github.com/straye-as/bizdesk-api/internal/database"
	"github.com/straye-as/bizdesk-api/internal/http/handler"
	"github.com/straye-as/bizdesk-api/internal/http/middleware"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/straye-as/bizdesk-api/docs" // Import generated swagger docs
)

// Handlers groups the HTTP handlers mounted under /api/v1
type Handlers struct {
	Customer      *handler.CustomerHandler
	Supplier      *handler.SupplierHandler
	Project       *handler.ProjectHandler
	Offer         *handler.OfferHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Invoice       *handler.InvoiceHandler
	Payable       *handler.PayableHandler
	Communication *handler.CommunicationHandler
	Inventory     *handler.InventoryHandler
	Report        *handler.ReportHandler
	Dashboard     *handler.DashboardHandler
}

type Router struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *gorm.DB
	reportCache cache.ReportCache
	metrics     *metrics.Metrics
	rateLimiter *middleware.RateLimiter
	handlers    Handlers
}

// NewRouter wires the handlers. db may be nil when the service runs without a journal.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	reportCache cache.ReportCache,
	m *metrics.Metrics,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		reportCache: reportCache,
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
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	if rt.cfg.Metrics.Enabled {
		r.Use(rt.metrics.Middleware)
	}
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimw.Timeout(timeout))
	}

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness checks every configured dependency
	r.Get("/health/ready", rt.ready)

	if rt.cfg.Metrics.Enabled {
		r.Handle(rt.cfg.Metrics.Path, rt.metrics.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	h := rt.handlers
	ai := rt.rateLimiter.LimitAI

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.Customer.List)
			r.Post("/", h.Customer.Create)
			r.Get("/{id}", h.Customer.GetByID)
			r.Put("/{id}", h.Customer.Update)
			r.Delete("/{id}", h.Customer.Delete)
			r.Get("/{id}/communications", h.Customer.Communications)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", h.Supplier.List)
			r.Post("/", h.Supplier.Create)
			r.Get("/{id}", h.Supplier.GetByID)
			r.Put("/{id}", h.Supplier.Update)
			r.Delete("/{id}", h.Supplier.Delete)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Project.List)
			r.Post("/", h.Project.Create)
			r.Get("/{id}", h.Project.GetByID)
			r.Put("/{id}", h.Project.Update)
			r.Get("/{id}/financials", h.Project.Financials)
			r.Post("/{id}/time-logs", h.Project.LogTime)
		})

		r.Route("/offers", func(r chi.Router) {
			r.Get("/", h.Offer.List)
			r.Post("/", h.Offer.Create)
			r.Get("/{id}", h.Offer.GetByID)
			r.Put("/{id}", h.Offer.Update)
			r.Put("/{id}/status", h.Offer.UpdateStatus)
			r.Get("/{id}/purchase-orders/preview", h.Offer.PreviewPurchaseOrders)
			r.Post("/{id}/purchase-orders", h.Offer.CommitPurchaseOrders)
			r.With(ai).Post("/{id}/pricing-advice", h.Offer.PricingAdvice)
			r.With(ai).Post("/{id}/compose", h.Offer.Compose)
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			r.Get("/", h.PurchaseOrder.List)
			r.Get("/{id}", h.PurchaseOrder.GetByID)
			r.Put("/{id}/status", h.PurchaseOrder.UpdateStatus)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", h.Invoice.List)
			r.Post("/", h.Invoice.Create)
			r.With(ai).Post("/summary", h.Invoice.Summary)
			r.Put("/{id}/status", h.Invoice.UpdateStatus)
			r.With(ai).Post("/{id}/reminder", h.Invoice.Reminder)
		})

		r.Route("/payables", func(r chi.Router) {
			r.Get("/", h.Payable.List)
			r.Post("/", h.Payable.Create)
			r.With(ai).Post("/summary", h.Payable.Summary)
			r.Put("/{id}/status", h.Payable.UpdateStatus)
		})

		r.Route("/communications", func(r chi.Router) {
			r.Get("/", h.Communication.List)
			r.Post("/", h.Communication.Create)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.Inventory.List)
			r.Post("/", h.Inventory.Create)
			r.With(ai).Post("/advice", h.Inventory.Advice)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", h.Report.List)
			r.Post("/", h.Report.Save)
			r.With(ai).Post("/generate", h.Report.Generate)
			r.Delete("/{id}", h.Report.Delete)
			r.Post("/{id}/archive", h.Report.Archive)
		})

		r.Get("/dashboard", h.Dashboard.GetMetrics)
		r.Get("/search", h.Dashboard.Search)
		r.Get("/navigation", h.Dashboard.Navigation)
	})

	return r
}

func (rt *Router) ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]interface{})
	allHealthy := true

	if rt.db != nil {
		if err := database.HealthCheck(r.Context(), rt.db); err != nil {
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
	}

	if err := rt.reportCache.Ping(r.Context()); err != nil {
		rt.logger.Error("Cache health check failed", zap.Error(err))
		checks["cache"] = map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
		allHealthy = false
	} else {
		checks["cache"] = map[string]interface{}{
			"status": "healthy",
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}
