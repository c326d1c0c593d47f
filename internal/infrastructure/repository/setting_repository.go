package repository

import (
	"context"
	"errors"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	domainRepo "github.com/prasetia/cetakindo-api/internal/domain/repository"
	"github.com/prasetia/cetakindo-api/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) domainRepo.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetValue(ctx context.Context, key string) (string, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *settingRepository) SetValue(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entity.Setting{Key: key, Value: value}).Error
}

func (r *settingRepository) NextNota(ctx context.Context) (string, error) {
	var nota string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		// Row lock serializes concurrent nota generation. SQLite has no
		// FOR UPDATE; its single-writer transactions cover the same need.
		if tx.Dialector.Name() == "postgres" {
			query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var last entity.Setting
		if err := query.First(&last, "key = ?", entity.SettingNotaLastNumber).Error; err != nil {
			return err
		}

		var prefix entity.Setting
		if err := tx.First(&prefix, "key = ?", entity.SettingNotaPrefix).Error; err != nil {
			return err
		}

		next := utils.NextNotaNumber(last.Value)
		if err := tx.Model(&entity.Setting{}).
			Where("key = ?", entity.SettingNotaLastNumber).
			Update("value", next).Error; err != nil {
			return err
		}

		nota = utils.FormatNota(prefix.Value, next)
		return nil
	})
	return nota, err
}

type displaySettingRepository struct {
	db *gorm.DB
}

// NewDisplaySettingRepository creates a new display setting repository
func NewDisplaySettingRepository(db *gorm.DB) domainRepo.DisplaySettingRepository {
	return &displaySettingRepository{db: db}
}

func (r *displaySettingRepository) List(ctx context.Context) ([]entity.DisplaySetting, error) {
	var settings []entity.DisplaySetting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *displaySettingRepository) ListEnabled(ctx context.Context) ([]entity.DisplaySetting, error) {
	var settings []entity.DisplaySetting
	err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("key ASC").
		Find(&settings).Error
	return settings, err
}

func (r *displaySettingRepository) Upsert(ctx context.Context, setting *entity.DisplaySetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "enabled"}),
		}).
		Create(setting).Error
}
