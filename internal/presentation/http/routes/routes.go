package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prasetia/cetakindo-api/internal/config"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/handler"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/middleware"
	"github.com/prasetia/cetakindo-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Payment   *handler.PaymentHandler
	Stock     *handler.StockHandler
	Material  *handler.MaterialHandler
	Customer  *handler.MasterHandler[entity.Customer]
	Employee  *handler.MasterHandler[entity.Employee]
	Supplier  *handler.MasterHandler[entity.Supplier]
	Finishing *handler.MasterHandler[entity.Finishing]
	Expense   *handler.MasterHandler[entity.Expense]
	Bank      *handler.MasterHandler[entity.Bank]
	Asset     *handler.MasterHandler[entity.Asset]
	Debt      *handler.MasterHandler[entity.Debt]
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Backup    *handler.BackupHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

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
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// The shop's customer-facing screen polls this without a token.
		v1.GET("/display", h.Settings.PublicDisplay)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Summary)

	// Orders and payments
	registerOrderRoutes(protected, h)

	// Stock ledger
	registerStockRoutes(protected, h)

	// Materials
	registerMaterialRoutes(protected, h)

	// Master data
	registerMasterRoutes(protected, "/customers", h.Customer)
	registerMasterRoutes(protected, "/employees", h.Employee)
	registerMasterRoutes(protected, "/suppliers", h.Supplier)
	registerMasterRoutes(protected, "/finishings", h.Finishing)

	// Finance
	registerMasterRoutes(protected, "/expenses", h.Expense)
	registerMasterRoutes(protected, "/banks", h.Bank)
	registerMasterRoutes(protected, "/assets", h.Asset)
	registerMasterRoutes(protected, "/debts", h.Debt)

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/financial", h.Report.Financial)
	}

	// Settings
	registerSettingsRoutes(protected, h)

	// Admin-only routes
	registerAdminRoutes(protected, h)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.PUT("/:id/employee", h.Order.AssignEmployee)
		orders.DELETE("/:id", middleware.RequireRole("admin"), h.Order.Delete)

		orders.GET("/:id/payments", h.Payment.ListByOrder)
		orders.POST("/:id/payments", h.Payment.Add)
	}

	// Separate prefix: a static "items" segment cannot share the
	// /orders/:id wildcard level.
	protected.PUT("/order-items/:itemId/status", h.Order.UpdateItemStatus)

	protected.POST("/payments/bulk", h.Payment.Bulk)
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	{
		stock.GET("/movements", h.Stock.List)
		stock.POST("/movements", h.Stock.Move)
		stock.POST("/opname", h.Stock.Opname)
		stock.GET("/audit", h.Stock.Audit)
		stock.GET("/negative", h.Stock.NegativeStock)
	}
}

func registerMaterialRoutes(protected *gin.RouterGroup, h *Handlers) {
	materials := protected.Group("/materials")
	{
		materials.GET("", h.Material.List)
		materials.POST("", h.Material.Create)
		materials.GET("/:id", h.Material.Get)
		materials.PUT("/:id", h.Material.Update)
		materials.DELETE("/:id", middleware.RequireRole("admin"), h.Material.Delete)
	}
}

func registerMasterRoutes[T any](protected *gin.RouterGroup, path string, h *handler.MasterHandler[T]) {
	group := protected.Group(path)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("/nota", h.Settings.GetNotaConfig)
		settings.PUT("/nota", middleware.RequireRole("admin"), h.Settings.UpdateNotaConfig)
		settings.GET("/display", h.Settings.ListDisplay)
		settings.PUT("/display", middleware.RequireRole("admin"), h.Settings.UpsertDisplay)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("")
	admin.Use(middleware.RequireRole("admin"))
	{
		users := admin.Group("/users")
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Create)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		backup := admin.Group("/backup")
		{
			backup.GET("/export", h.Backup.Export)
			backup.POST("/import", h.Backup.Import)
		}
	}
}
