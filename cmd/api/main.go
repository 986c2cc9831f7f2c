package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/straye-as/bizdesk-api/docs"
	"github.com/straye-as/bizdesk-api/internal/cache"
	"github.com/straye-as/bizdesk-api/internal/config"
	"github.com/straye-as/bizdesk-api/internal/database"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"github.com/straye-as/bizdesk-api/internal/genai"
	"github.com/straye-as/bizdesk-api/internal/http/handler"
	"github.com/straye-as/bizdesk-api/internal/http/middleware"
	"github.com/straye-as/bizdesk-api/internal/http/router"
	"github.com/straye-as/bizdesk-api/internal/jobs"
	"github.com/straye-as/bizdesk-api/internal/logger"
	"github.com/straye-as/bizdesk-api/internal/metrics"
	"github.com/straye-as/bizdesk-api/internal/procurement"
	"github.com/straye-as/bizdesk-api/internal/repository"
	"github.com/straye-as/bizdesk-api/internal/service"
	"github.com/straye-as/bizdesk-api/internal/storage"
	"github.com/straye-as/bizdesk-api/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Business Desk API
// @version 1.0
// @description Back office API for customers, suppliers, projects, offers, purchase orders, payments and inventory, with generated summaries and reports
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@straye.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)

	// In staging/production the API key and connection strings may come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// The journal database is optional; without it all state lives in memory
	db, journal, data, err := openJournal(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := database.Close(db); err != nil {
				log.Warn("Error closing database", zap.Error(err))
			}
		}()
	}

	var storeOpts []store.Option
	if journal != nil {
		storeOpts = append(storeOpts, store.WithJournal(journal))
	}
	st := store.New(data, log, storeOpts...)

	reportCache, closeCache := newReportCache(ctx, cfg, log)
	defer closeCache()

	archive, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	m := metrics.New()
	generator, err := genai.NewClient(ctx, &cfg.GenAI, log)
	if err != nil {
		return fmt.Errorf("failed to initialize text generation client: %w", err)
	}
	if cfg.GenAI.APIKey == "" {
		log.Warn("No text generation API key configured, assistant endpoints will fail")
	}

	// Initialize services
	customerService := service.NewCustomerService(st, log)
	supplierService := service.NewSupplierService(st, log)
	projectService := service.NewProjectService(st, m, log)
	offerService := service.NewOfferService(st, generator, procurement.SelectorFor(cfg.Purchasing.QuoteSelection), m, log)
	purchaseOrderService := service.NewPurchaseOrderService(st, m, log)
	invoiceService := service.NewInvoiceService(st, generator, m, log)
	payableService := service.NewPayableService(st, generator, m, log)
	communicationService := service.NewCommunicationService(st, log)
	inventoryService := service.NewInventoryService(st, generator, m, log)
	reportService := service.NewReportService(st, generator, reportCache, cfg.Cache.TTL(), archive, m, log)
	dashboardService := service.NewDashboardService(st, log)

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(cfg, log, db, reportCache, m, rateLimiter, router.Handlers{
		Customer:      handler.NewCustomerHandler(customerService, log),
		Supplier:      handler.NewSupplierHandler(supplierService, log),
		Project:       handler.NewProjectHandler(projectService, log),
		Offer:         handler.NewOfferHandler(offerService, log),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService, log),
		Invoice:       handler.NewInvoiceHandler(invoiceService, log),
		Payable:       handler.NewPayableHandler(payableService, log),
		Communication: handler.NewCommunicationHandler(communicationService, log),
		Inventory:     handler.NewInventoryHandler(inventoryService, log),
		Report:        handler.NewReportHandler(reportService, log),
		Dashboard:     handler.NewDashboardHandler(dashboardService, log),
	})

	// Background job keeping overdue statuses current
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterPaymentStatusJob(
			scheduler,
			st,
			log,
			cfg.Jobs.PaymentStatusCron,
			cfg.Jobs.PaymentStatusOnStart,
		); err != nil {
			log.Error("Failed to register payment status job", zap.Error(err))
			scheduler = nil
		} else {
			scheduler.Start()
			log.Info("Scheduler started with payment status job",
				zap.String("cron_expr", cfg.Jobs.PaymentStatusCron),
			)
		}
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

// openJournal connects the configured database and loads its dataset. An empty
// journal is filled with the seed dataset when seeding is enabled. With the
// memory driver no database is opened and the seed dataset is returned directly.
func openJournal(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, *repository.JournalRepository, domain.Dataset, error) {
	seed := domain.Dataset{}
	if cfg.Seed.Enabled {
		seed = store.SeedDataset()
	}

	db, err := database.NewDatabase(&cfg.Database)
	if errors.Is(err, database.ErrNoDatabase) {
		log.Info("No database configured, keeping state in memory",
			zap.Bool("seeded", cfg.Seed.Enabled))
		return nil, nil, seed, nil
	}
	if err != nil {
		return nil, nil, domain.Dataset{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Postgres schemas are managed by cmd/migrate
	if cfg.Database.Driver == "sqlite" {
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, domain.Dataset{}, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	journal := repository.NewJournalRepository(db)

	empty, err := journal.IsEmpty(ctx)
	if err != nil {
		return nil, nil, domain.Dataset{}, fmt.Errorf("failed to inspect journal: %w", err)
	}
	if empty && cfg.Seed.Enabled {
		if err := journal.SaveDataset(ctx, seed); err != nil {
			return nil, nil, domain.Dataset{}, fmt.Errorf("failed to seed journal: %w", err)
		}
		log.Info("Journal seeded")
	}

	data, err := journal.Load(ctx)
	if err != nil {
		return nil, nil, domain.Dataset{}, fmt.Errorf("failed to load journal: %w", err)
	}

	log.Info("Journal loaded",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("customers", len(data.Customers)),
		zap.Int("offers", len(data.Offers)),
		zap.Int("invoices", len(data.Invoices)),
	)
	return db, journal, *data, nil
}

// newReportCache returns the configured report cache and a function releasing it.
// An unreachable redis is logged and the service runs without caching.
func newReportCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.ReportCache, func()) {
	if cfg.Cache.Mode != "redis" {
		return cache.NoopReportCache{}, func() {}
	}

	redisCache := cache.NewRedisReportCache(&cfg.Cache)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn("Redis not reachable, report caching disabled",
			zap.String("addr", cfg.Cache.RedisAddr),
			zap.Error(err))
		_ = redisCache.Close()
		return cache.NoopReportCache{}, func() {}
	}

	log.Info("Report cache connected", zap.String("addr", cfg.Cache.RedisAddr))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Warn("Error closing report cache", zap.Error(err))
		}
	}
}
