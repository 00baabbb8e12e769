package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/stockbook/backend/internal/application/billing"
	catalogapp "github.com/stockbook/backend/internal/application/catalog"
	ledgerapp "github.com/stockbook/backend/internal/application/ledger"
	partnerapp "github.com/stockbook/backend/internal/application/partner"
	reportapp "github.com/stockbook/backend/internal/application/report"
	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/infrastructure/auth"
	"github.com/stockbook/backend/internal/infrastructure/cache"
	"github.com/stockbook/backend/internal/infrastructure/config"
	"github.com/stockbook/backend/internal/infrastructure/logger"
	"github.com/stockbook/backend/internal/infrastructure/persistence"
	"github.com/stockbook/backend/internal/interfaces/http/handler"
	"github.com/stockbook/backend/internal/interfaces/http/middleware"
	"github.com/stockbook/backend/internal/interfaces/http/router"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Stockbook backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	storeFactory := cache.NewIdempotencyStoreFactory(cfg.Redis, cache.WithLogger(log))
	idempotencyStore, err := storeFactory.CreateStore()
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	defer func() {
		_ = idempotencyStore.Close()
	}()

	// repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormLoanPaymentRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	ledgerTxRepo := persistence.NewGormLedgerTransactionRepository(db.DB)
	dashboardRepo := persistence.NewGormDashboardRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// application services
	postingService := billingapp.NewPostingService(txScope, invoiceRepo)
	paymentService := billingapp.NewPaymentService(txScope, paymentRepo)
	productService := catalogapp.NewProductService(productRepo, postingService)
	customerService := partnerapp.NewCustomerService(customerRepo, ledgerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, ledgerRepo)
	ledgerService := ledgerapp.NewLedgerService(ledgerRepo, ledgerTxRepo)
	dashboardService := reportapp.NewDashboardService(dashboardRepo)

	// auth
	tokenService := auth.NewTokenService(cfg.JWT)
	credentialVerifier := auth.NewCredentialVerifier(cfg.Auth)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(credentialVerifier, tokenService),
		System:    handler.NewSystemHandler(version),
		Product:   handler.NewProductHandler(productService),
		Customer:  handler.NewCustomerHandler(customerService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Invoice:   handler.NewInvoiceHandler(postingService, paymentService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	engine := router.New(router.Config{
		Logger:           log,
		TokenService:     tokenService,
		IdempotencyStore: idempotencyStore,
		Idempotency: shared.IdempotencyConfig{
			TTL:     cfg.Idempotency.TTL,
			Enabled: true,
		},
		CORS:           corsConfig,
		MaxBodyBytes:   cfg.HTTP.MaxBodySize,
		LoginRateLimit: middleware.NewRateLimiter(10, time.Minute),
		HealthCheck:    db.Ping,
	}, handlers)

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
