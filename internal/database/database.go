// Package database opens the optional journal database behind the in-memory store.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/straye-as/bizdesk-api/internal/config"
	"github.com/straye-as/bizdesk-api/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoDatabase is returned when the configured driver keeps state in memory only
var ErrNoDatabase = errors.New("no database configured")

// NewDatabase opens the database selected by cfg.Driver.
// Driver "memory" returns ErrNoDatabase.
func NewDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "memory":
		return nil, ErrNoDatabase
	case "postgres":
		dialector = postgres.Open(cfg.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Models lists every table of the journal
func Models() []any {
	return []any{
		&domain.Customer{},
		&domain.Supplier{},
		&domain.Project{},
		&domain.Offer{},
		&domain.PurchaseOrder{},
		&domain.Invoice{},
		&domain.Payable{},
		&domain.TimeLog{},
		&domain.Communication{},
		&domain.InventoryItem{},
		&domain.SavedReport{},
	}
}

// AutoMigrate creates the journal tables. Postgres deployments use cmd/migrate instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// HealthCheck pings the database
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
