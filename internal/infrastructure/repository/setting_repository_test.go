package repository

import (
	"context"
	"testing"

	"github.com/prasetia/cetakindo-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSettingsDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Setting{}, &entity.DisplaySetting{}))
	return db
}

func TestNextNotaSequence(t *testing.T) {
	db := newSettingsDB(t)
	ctx := context.Background()
	repo := NewSettingRepository(db)

	require.NoError(t, repo.SetValue(ctx, entity.SettingNotaPrefix, "INV"))
	require.NoError(t, repo.SetValue(ctx, entity.SettingNotaLastNumber, "000"))

	first, err := repo.NextNota(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", first)

	second, err := repo.NextNota(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-002", second)

	// The persisted counter tracks the last issued number.
	last, err := repo.GetValue(ctx, entity.SettingNotaLastNumber)
	require.NoError(t, err)
	assert.Equal(t, "002", last)
}

func TestNextNotaPaddingFollowsStoredWidth(t *testing.T) {
	db := newSettingsDB(t)
	ctx := context.Background()
	repo := NewSettingRepository(db)

	require.NoError(t, repo.SetValue(ctx, entity.SettingNotaPrefix, "NOTA"))
	require.NoError(t, repo.SetValue(ctx, entity.SettingNotaLastNumber, "7"))

	nota, err := repo.NextNota(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NOTA-8", nota)

	// Re-seeding the counter with a wider string widens the padding.
	require.NoError(t, repo.SetValue(ctx, entity.SettingNotaLastNumber, "0099"))
	nota, err = repo.NextNota(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NOTA-0100", nota)

	// Overflow grows the width rather than wrapping.
	require.NoError(t, repo.SetValue(ctx, entity.SettingNotaLastNumber, "999"))
	nota, err = repo.NextNota(ctx)
	require.NoError(t, err)
	assert.Equal(t, "NOTA-1000", nota)
}

func TestSetValueUpserts(t *testing.T) {
	db := newSettingsDB(t)
	ctx := context.Background()
	repo := NewSettingRepository(db)

	require.NoError(t, repo.SetValue(ctx, "shop_name", "Cetakindo"))
	require.NoError(t, repo.SetValue(ctx, "shop_name", "Cetakindo Digital"))

	value, err := repo.GetValue(ctx, "shop_name")
	require.NoError(t, err)
	assert.Equal(t, "Cetakindo Digital", value)

	// Unknown keys read as empty, not as an error.
	missing, err := repo.GetValue(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestDisplaySettingUpsertAndFilter(t *testing.T) {
	db := newSettingsDB(t)
	ctx := context.Background()
	repo := NewDisplaySettingRepository(db)

	require.NoError(t, repo.Upsert(ctx, &entity.DisplaySetting{Key: "running_text", Value: "Selamat datang", Enabled: true}))
	require.NoError(t, repo.Upsert(ctx, &entity.DisplaySetting{Key: "promo_image_url", Value: "", Enabled: false}))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// The disabled flag survives the insert; no column default may
	// overwrite an explicit false.
	for _, setting := range all {
		if setting.Key == "promo_image_url" {
			assert.False(t, setting.Enabled)
		}
	}

	enabled, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "running_text", enabled[0].Key)

	// Upserting an existing key replaces value and flag.
	require.NoError(t, repo.Upsert(ctx, &entity.DisplaySetting{Key: "promo_image_url", Value: "https://example.com/promo.png", Enabled: true}))
	enabled, err = repo.ListEnabled(ctx)
	require.NoError(t, err)
	assert.Len(t, enabled, 2)

	// And an upsert can disable a row again.
	require.NoError(t, repo.Upsert(ctx, &entity.DisplaySetting{Key: "running_text", Value: "Selamat datang", Enabled: false}))
	enabled, err = repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "promo_image_url", enabled[0].Key)
}
