package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/prasetia/cetakindo-api/pkg/apperror"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// backupVersion tags exported snapshots so imports can reject payloads
// from incompatible releases.
const backupVersion = 1

// BackupService exports and restores the whole dataset as one JSON
// snapshot. It works on the database handle directly: restore must
// replace every table in a single transaction, which no per-entity
// repository can offer.
type BackupService struct {
	db *gorm.DB
}

// NewBackupService creates a new backup service
func NewBackupService(db *gorm.DB) *BackupService {
	return &BackupService{db: db}
}

// Snapshot is the portable dump of all business data.
type Snapshot struct {
	Version         int                     `json:"version"`
	ExportedAt      time.Time               `json:"exported_at"`
	Customers       []entity.Customer       `json:"customers"`
	Employees       []entity.Employee       `json:"employees"`
	Materials       []entity.Material       `json:"materials"`
	Finishings      []entity.Finishing      `json:"finishings"`
	Suppliers       []entity.Supplier       `json:"suppliers"`
	Orders          []entity.Order          `json:"orders"`
	OrderItems      []entity.OrderItem      `json:"order_items"`
	Payments        []entity.Payment        `json:"payments"`
	StockMovements  []entity.StockMovement  `json:"stock_movements"`
	Expenses        []entity.Expense        `json:"expenses"`
	Banks           []entity.Bank           `json:"banks"`
	Assets          []entity.Asset          `json:"assets"`
	Debts           []entity.Debt           `json:"debts"`
	Settings        []entity.Setting        `json:"settings"`
	DisplaySettings []entity.DisplaySetting `json:"display_settings"`
}

// Export serializes every business table into one JSON document
func (s *BackupService) Export(ctx context.Context) ([]byte, error) {
	snapshot := Snapshot{
		Version:    backupVersion,
		ExportedAt: time.Now(),
	}

	db := s.db.WithContext(ctx)
	steps := []struct {
		name string
		dest interface{}
	}{
		{"customers", &snapshot.Customers},
		{"employees", &snapshot.Employees},
		{"materials", &snapshot.Materials},
		{"finishings", &snapshot.Finishings},
		{"suppliers", &snapshot.Suppliers},
		{"orders", &snapshot.Orders},
		{"order_items", &snapshot.OrderItems},
		{"payments", &snapshot.Payments},
		{"stock_movements", &snapshot.StockMovements},
		{"expenses", &snapshot.Expenses},
		{"banks", &snapshot.Banks},
		{"assets", &snapshot.Assets},
		{"debts", &snapshot.Debts},
		{"settings", &snapshot.Settings},
		{"display_settings", &snapshot.DisplaySettings},
	}
	for _, step := range steps {
		if err := db.Find(step.dest).Error; err != nil {
			logrus.WithError(err).WithField("table", step.name).Error("Backup export failed")
			return nil, err
		}
	}

	return json.MarshalIndent(&snapshot, "", "  ")
}

// Import replaces the entire dataset with the given snapshot. The whole
// restore runs in one transaction: either every table is replaced or
// none is.
func (s *BackupService) Import(ctx context.Context, data []byte) error {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return apperror.NewBadRequestError("Backup file is not valid JSON")
	}
	if snapshot.Version != backupVersion {
		return apperror.NewBadRequestError("Backup file version is not supported")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&entity.Payment{},
			&entity.OrderItem{},
			&entity.Order{},
			&entity.StockMovement{},
			&entity.Expense{},
			&entity.Bank{},
			&entity.Asset{},
			&entity.Debt{},
			&entity.Customer{},
			&entity.Employee{},
			&entity.Material{},
			&entity.Finishing{},
			&entity.Supplier{},
			&entity.Setting{},
			&entity.DisplaySetting{},
		}
		for _, table := range tables {
			if err := tx.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
				return err
			}
		}

		// Parents before children.
		if len(snapshot.Customers) > 0 {
			if err := tx.Create(&snapshot.Customers).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Employees) > 0 {
			if err := tx.Create(&snapshot.Employees).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Materials) > 0 {
			if err := tx.Create(&snapshot.Materials).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Finishings) > 0 {
			if err := tx.Create(&snapshot.Finishings).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Suppliers) > 0 {
			if err := tx.Create(&snapshot.Suppliers).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Orders) > 0 {
			if err := tx.Create(&snapshot.Orders).Error; err != nil {
				return err
			}
		}
		if len(snapshot.OrderItems) > 0 {
			if err := tx.Create(&snapshot.OrderItems).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Payments) > 0 {
			if err := tx.Create(&snapshot.Payments).Error; err != nil {
				return err
			}
		}
		if len(snapshot.StockMovements) > 0 {
			if err := tx.Create(&snapshot.StockMovements).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Expenses) > 0 {
			if err := tx.Create(&snapshot.Expenses).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Banks) > 0 {
			if err := tx.Create(&snapshot.Banks).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Assets) > 0 {
			if err := tx.Create(&snapshot.Assets).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Debts) > 0 {
			if err := tx.Create(&snapshot.Debts).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Settings) > 0 {
			if err := tx.Create(&snapshot.Settings).Error; err != nil {
				return err
			}
		}
		if len(snapshot.DisplaySettings) > 0 {
			if err := tx.Create(&snapshot.DisplaySettings).Error; err != nil {
				return err
			}
		}

		logrus.Info("Backup restore completed")
		return nil
	})
}
