package config

import (
	"time"

	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

// schemaMigration is one applied-migration record in schema_migrations.
type schemaMigration struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

type migration struct {
	Version int
	Name    string
	Run     func(db *gorm.DB) error
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "create core tables",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.User{},
				&models.Shift{},
				&models.MileageAdjustment{},
				&models.PayoutRequest{},
			)
		},
	},
}

// Migrate applies pending schema migrations in order and records each applied
// version. It runs once at process start; opening a connection never upgrades
// the schema implicitly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return err
	}

	for _, m := range migrations {
		var applied int64
		if err := db.Model(&schemaMigration{}).Where("version = ?", m.Version).Count(&applied).Error; err != nil {
			return err
		}
		if applied > 0 {
			continue
		}
		if err := m.Run(db); err != nil {
			return err
		}
		rec := schemaMigration{Version: m.Version, Name: m.Name, AppliedAt: time.Now()}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}
