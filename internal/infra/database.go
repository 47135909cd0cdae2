package infra

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iacubdiego/Calo-indumentaria-web/internal/model"
)

// NewDatabase opens a GORM connection for the SQL store drivers and migrates
// the catalog tables. driver is "postgres" or "sqlite"; for sqlite the DSN may
// carry a "sqlite://" prefix.
func NewDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
	default:
		return nil, fmt.Errorf("unsupported SQL driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Unique violations come back as gorm.ErrDuplicatedKey on both dialects.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// SQLite allows a single writer; serialising avoids SQLITE_BUSY inside ReplaceAll.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates the catalog tables. The schema is small
// enough that AutoMigrate covers it entirely.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(&model.Category{}, &model.Product{})
}
