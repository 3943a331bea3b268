// Package store persists the cooperative's master data (farmers, products,
// companies, weighings and the operating-window settings) in a relational
// database via gorm. Day schedules live in redis, not here; this package
// only feeds the scheduling path with product factors and the window.
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres and migrates the schema. TranslateError is on so
// duplicate-key violations surface as gorm.ErrDuplicatedKey regardless of
// driver.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates all master-data tables. Exposed separately
// so tests can migrate an sqlite database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&farmerModel{},
		&productModel{},
		&companyModel{},
		&weighingModel{},
		&windowSettingsModel{},
	)
}
