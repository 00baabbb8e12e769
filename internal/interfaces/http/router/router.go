package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/infrastructure/auth"
	"github.com/stockbook/backend/internal/infrastructure/logger"
	"github.com/stockbook/backend/internal/interfaces/http/dto"
	"github.com/stockbook/backend/internal/interfaces/http/handler"
	"github.com/stockbook/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Auth      *handler.AuthHandler
	System    *handler.SystemHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Invoice   *handler.InvoiceHandler
	Ledger    *handler.LedgerHandler
	Dashboard *handler.DashboardHandler
}

// Config carries the cross-cutting dependencies of the HTTP surface
type Config struct {
	Logger           *zap.Logger
	TokenService     *auth.TokenService
	IdempotencyStore shared.IdempotencyStore
	Idempotency      shared.IdempotencyConfig
	CORS             middleware.CORSConfig
	MaxBodyBytes     int64
	LoginRateLimit   *middleware.RateLimiter
	HealthCheck      func() error
}

// New builds the gin engine with the full middleware chain and all
// application routes mounted under /api/v1.
func New(cfg Config, handlers Handlers) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	if cfg.MaxBodyBytes > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}

	engine.GET("/health", healthHandler(cfg.HealthCheck))

	registerAPIRoutes(engine, cfg, handlers)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrCodeNotFound, "Route not found"))
	})

	return engine
}

func registerAPIRoutes(engine *gin.Engine, cfg Config, handlers Handlers) {
	api := engine.Group("/api/v1")

	// login stays outside JWT protection and gets its own rate limit
	authGroup := api.Group("/auth")
	if cfg.LoginRateLimit != nil {
		authGroup.Use(middleware.RateLimit(cfg.LoginRateLimit))
	}
	authGroup.POST("/login", handlers.Auth.Login)

	system := api.Group("/system")
	system.GET("/ping", handlers.System.Ping)
	system.GET("/info", handlers.System.GetSystemInfo)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(cfg.TokenService))

	products := protected.Group("/catalog/products")
	products.POST("", handlers.Product.Create)
	products.GET("", handlers.Product.List)
	products.GET("/low-stock", handlers.Product.ListLowStock)
	products.GET("/:id", handlers.Product.Get)
	products.PUT("/:id", handlers.Product.Update)
	products.DELETE("/:id", handlers.Product.Delete)

	customers := protected.Group("/partner/customers")
	customers.POST("", handlers.Customer.Create)
	customers.GET("", handlers.Customer.List)
	customers.GET("/:id", handlers.Customer.Get)
	customers.PUT("/:id", handlers.Customer.Update)
	customers.DELETE("/:id", handlers.Customer.Delete)

	suppliers := protected.Group("/partner/suppliers")
	suppliers.POST("", handlers.Supplier.Create)
	suppliers.GET("", handlers.Supplier.List)
	suppliers.GET("/:id", handlers.Supplier.Get)
	suppliers.PUT("/:id", handlers.Supplier.Update)
	suppliers.DELETE("/:id", handlers.Supplier.Delete)

	// posting endpoints honor the Idempotency-Key header so a retried
	// submission cannot book the same invoice twice
	idempotent := middleware.Idempotency(cfg.IdempotencyStore, cfg.Idempotency, cfg.Logger)

	billing := protected.Group("/billing")
	billing.POST("/sales-invoices", idempotent, handlers.Invoice.PostSales)
	billing.GET("/sales-invoices", handlers.Invoice.ListSales)
	billing.POST("/purchase-invoices", idempotent, handlers.Invoice.PostPurchase)
	billing.GET("/purchase-invoices", handlers.Invoice.ListPurchases)
	billing.GET("/invoices/:id", handlers.Invoice.Get)
	billing.DELETE("/invoices/:id", handlers.Invoice.Delete)
	billing.POST("/invoices/:id/payments", idempotent, handlers.Invoice.AddPayment)
	billing.GET("/invoices/:id/payments", handlers.Invoice.ListPayments)

	ledgers := protected.Group("/ledgers")
	ledgers.GET("", handlers.Ledger.List)
	ledgers.GET("/:id", handlers.Ledger.Get)
	ledgers.GET("/:id/transactions", handlers.Ledger.ListTransactions)
	ledgers.GET("/party/:party_type/:party_id", handlers.Ledger.GetByParty)

	reports := protected.Group("/reports")
	reports.GET("/dashboard", handlers.Dashboard.GetStats)
}

func healthHandler(check func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
