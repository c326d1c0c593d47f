package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prasetia/cetakindo-api/internal/application/service"
	"github.com/prasetia/cetakindo-api/internal/config"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/internal/infrastructure/database"
	"github.com/prasetia/cetakindo-api/internal/infrastructure/repository"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/handler"
	"github.com/prasetia/cetakindo-api/internal/presentation/http/routes"
	"github.com/prasetia/cetakindo-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logrus.Warnf("Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	movementRepo := repository.NewStockMovementRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	displayRepo := repository.NewDisplaySettingRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	customerRepo := repository.NewCrudRepository[entity.Customer](db, "name", "phone")
	employeeRepo := repository.NewCrudRepository[entity.Employee](db, "name")
	supplierRepo := repository.NewCrudRepository[entity.Supplier](db, "name", "phone")
	finishingRepo := repository.NewCrudRepository[entity.Finishing](db, "name")
	expenseRepo := repository.NewCrudRepository[entity.Expense](db, "description")
	bankRepo := repository.NewCrudRepository[entity.Bank](db, "name")
	assetRepo := repository.NewCrudRepository[entity.Asset](db, "name")
	debtRepo := repository.NewCrudRepository[entity.Debt](db, "creditor_name")

	// Initialize services
	stockService := service.NewStockService(movementRepo, materialRepo, supplierRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, materialRepo, customerRepo, finishingRepo, employeeRepo, settingRepo, stockService)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, materialRepo)
	materialService := service.NewMaterialService(materialRepo, stockService)
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingRepo, displayRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, orderRepo, materialRepo, stockService)
	reportService := service.NewReportService(analyticsRepo)
	backupService := service.NewBackupService(db)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Stock:     handler.NewStockHandler(stockService),
		Material:  handler.NewMaterialHandler(materialService),
		Customer:  handler.NewMasterHandler(service.NewMasterService(customerRepo, "Customer"), "Customer"),
		Employee:  handler.NewMasterHandler(service.NewMasterService(employeeRepo, "Employee"), "Employee"),
		Supplier:  handler.NewMasterHandler(service.NewMasterService(supplierRepo, "Supplier"), "Supplier"),
		Finishing: handler.NewMasterHandler(service.NewMasterService(finishingRepo, "Finishing"), "Finishing"),
		Expense:   handler.NewMasterHandler(service.NewMasterService(expenseRepo, "Expense"), "Expense"),
		Bank:      handler.NewMasterHandler(service.NewMasterService(bankRepo, "Bank"), "Bank"),
		Asset:     handler.NewMasterHandler(service.NewMasterService(assetRepo, "Asset"), "Asset"),
		Debt:      handler.NewMasterHandler(service.NewMasterService(debtRepo, "Debt"), "Debt"),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Backup:    handler.NewBackupHandler(backupService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Starting %s server on port %s (env: %s)", cfg.App.Name, port, cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
