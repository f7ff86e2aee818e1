package main // Entry point package

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"            // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo built-in middleware

	"github.com/joacia/laundry-service/internal/config"
	"github.com/joacia/laundry-service/internal/gateway"
	"github.com/joacia/laundry-service/internal/handler"
	"github.com/joacia/laundry-service/internal/intake"
	"github.com/joacia/laundry-service/internal/metrics"
	"github.com/joacia/laundry-service/internal/middleware"
	"github.com/joacia/laundry-service/internal/pricing"
	"github.com/joacia/laundry-service/internal/queue"
	"github.com/joacia/laundry-service/internal/repository"
	"github.com/joacia/laundry-service/internal/router"
	"github.com/joacia/laundry-service/internal/service"
	"github.com/joacia/laundry-service/internal/store"
)

func main() {
	cfg := config.Load() // Load environment config (reads .env when present)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	metrics.Register()

	// Draft store: local persistence for standalone mode and for the
	// collections that never moved to the hosted backend.
	drafts, err := store.Open(cfg.DraftStorePath, cfg.BusinessPrefix)
	if err != nil {
		log.Fatalf("open draft store: %v", err)
	}
	defer drafts.Close()

	// Business settings: YAML defaults, then any overrides the
	// operator saved from the dashboard.
	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if err := drafts.Settings(&settings); err != nil {
		log.Printf("saved settings unreadable, using defaults: %v", err)
	}
	adminRates := pricing.AdminRates
	if len(settings.AdminRates) > 0 {
		adminRates = pricing.Table(settings.AdminRates)
	}
	publicRates := pricing.PublicRates
	if len(settings.PublicRates) > 0 {
		publicRates = pricing.Table(settings.PublicRates)
	}

	// Remote record gateway; nil-configured when no endpoint is set,
	// in which case the repositories stay on the draft store.
	var gw *gateway.Client
	if cfg.BackendEndpoint != "" {
		gw = gateway.New(cfg.BackendEndpoint, cfg.BackendProject, cfg.BackendKey)
		slog.Info("record gateway configured", "endpoint", cfg.BackendEndpoint, "project", cfg.BackendProject)
	} else {
		slog.Info("record gateway not configured, running standalone", "draft_store", cfg.DraftStorePath)
	}

	// Repositories and services.
	bookingRepo := repository.NewBookingRepo(gw, cfg.DatabaseID, cfg.BookingsCollection, drafts)
	orderRepo := repository.NewOrderRepo(gw, cfg.DatabaseID, cfg.OrdersCollection, drafts)
	customerRepo := repository.NewCustomerRepo(gw, cfg.DatabaseID, cfg.CustomersCollection, drafts)
	inventoryRepo := repository.NewInventoryRepo(drafts)

	ledger := service.NewCustomerLedger(customerRepo)
	bookingSvc := service.NewBookingService(bookingRepo, orderRepo, ledger)
	orderSvc := service.NewOrderService(orderRepo, intake.NewPipeline(gw, cfg.BucketID), ledger, adminRates, publicRates)
	dashboard := service.NewDashboard(bookingRepo, orderRepo, customerRepo)

	// Redis-backed cache and rate limiter; both degrade to no-ops when
	// Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Info("redis unavailable, response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiterMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New() // Create Echo instance
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(bookingSvc, orderSvc, orderRepo), limiterMW)
	router.RegisterAdmin(e, router.AdminHandlers{
		Bookings:  handler.NewBookingHandler(bookingSvc, bookingRepo),
		Orders:    handler.NewOrderHandler(orderSvc, orderRepo),
		Customers: handler.NewCustomerHandler(customerRepo),
		Inventory: handler.NewInventoryHandler(inventoryRepo),
		Dashboard: handler.NewDashboardHandler(dashboard, int(cfg.DashboardRefresh.Milliseconds())),
		Export:    handler.NewExportHandler(orderRepo),
		Settings:  handler.NewSettingsHandler(drafts, settings),
	}, cacheMW)

	// Background workers: the activity-log consumer and the dashboard
	// refresher both run for the life of the process.
	go func() {
		if err := queue.StartRecordConsumer(); err != nil {
			log.Printf("record consumer stopped: %v", err)
		}
	}()
	go dashboard.StartRefresher(context.Background(), cfg.DashboardRefresh)

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
