package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bakehouse/counter-api/internal/config"
	"github.com/bakehouse/counter-api/internal/presentation/http/handler"
	"github.com/bakehouse/counter-api/internal/presentation/http/middleware"
	"github.com/bakehouse/counter-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Table   *handler.TableHandler
	Ledger  *handler.LedgerHandler
	Menu    *handler.MenuHandler
	Printer *handler.PrinterHandler
	Admin   *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	TokenManager *utils.AdminTokenManager
	Cfg          *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Per-client rate limiter
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerTableRoutes(v1, h)
		registerSalesRoutes(v1, h, deps)

		v1.GET("/menu", h.Menu.GetCatalog)

		printer := v1.Group("/printer")
		{
			printer.GET("/status", h.Printer.GetStatus)
			printer.POST("/test", h.Printer.TestPrint)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/login", h.Admin.Login)

			protected := admin.Group("")
			protected.Use(middleware.AdminAuthMiddleware(deps.TokenManager))
			protected.POST("/backup", h.Admin.Backup)
		}
	}

	return router
}

func registerTableRoutes(v1 *gin.RouterGroup, h *Handlers) {
	tables := v1.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.POST("", h.Table.Create)
		tables.GET("/summary", h.Table.Summary)
		tables.POST("/clear-finalized", h.Table.ClearFinalized)
		tables.PUT("/grid/:number", h.Table.GetOrCreateGridSlot)

		tables.GET("/:name", h.Table.Get)
		tables.DELETE("/:name", h.Table.Delete)
		tables.POST("/:name/items", h.Table.AddItem)
		tables.DELETE("/:name/items/:index", h.Table.RemoveItem)
		tables.PATCH("/:name/items/:index/quantity", h.Table.UpdateQuantity)
		tables.PATCH("/:name/items/:index/price", h.Table.UpdatePrice)
		tables.POST("/:name/finalize", h.Table.Finalize)
		tables.POST("/:name/receipt", h.Table.PrintReceipt)
	}
}

func registerSalesRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := v1.Group("/sales")
	{
		sales.GET("/:date", h.Ledger.GetReport)

		// Destructive ledger edits require an admin session token.
		remove := sales.Group("")
		remove.Use(middleware.AdminAuthMiddleware(deps.TokenManager))
		remove.DELETE("/:date/orders/:index", h.Ledger.RemoveOrder)
	}

	v1.GET("/audit/removals", h.Ledger.GetAuditLog)
}
