package database

import (
	"fmt"

	"github.com/prasetia/cetakindo-api/internal/config"
	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		// Accounts
		&entity.User{},

		// Master data
		&entity.Customer{},
		&entity.Employee{},
		&entity.Material{},
		&entity.Finishing{},
		&entity.Supplier{},

		// Orders and payments
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},

		// Stock ledger
		&entity.StockMovement{},

		// Finance
		&entity.Expense{},
		&entity.Bank{},
		&entity.Asset{},
		&entity.Debt{},

		// Configuration
		&entity.Setting{},
		&entity.DisplaySetting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the nota counter, display defaults and the admin
// account configured via environment variables.
func SeedDefaultData(db *gorm.DB) error {
	logrus.Info("Seeding default data...")

	settings := map[string]string{
		entity.SettingNotaPrefix:     "INV",
		entity.SettingNotaLastNumber: "000",
	}
	for key, value := range settings {
		var existing entity.Setting
		if err := db.Where("key = ?", key).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Setting{Key: key, Value: value}).Error; err != nil {
				logrus.Warnf("failed to seed setting %s: %v", key, err)
			}
		}
	}

	displayDefaults := []entity.DisplaySetting{
		{Key: "running_text", Value: "Selamat datang", Enabled: true},
		{Key: "promo_image_url", Value: "", Enabled: false},
	}
	for i := range displayDefaults {
		var existing entity.DisplaySetting
		if err := db.Where("key = ?", displayDefaults[i].Key).First(&existing).Error; err != nil {
			if err := db.Create(&displayDefaults[i]).Error; err != nil {
				logrus.Warnf("failed to seed display setting %s: %v", displayDefaults[i].Key, err)
			}
		}
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				logrus.Warnf("failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				admin := entity.User{
					Name:     adminName,
					Email:    adminEmail,
					Password: string(hashed),
					Role:     "admin",
				}
				if err := db.Create(&admin).Error; err != nil {
					logrus.Warnf("failed to create admin user: %v", err)
				} else {
					logrus.Infof("Admin user created: %s", adminEmail)
				}
			}
		}
	}

	logrus.Info("Default data seeding completed")
	return nil
}
