package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate
// for all entities, then applies the DDL that AutoMigrate cannot express.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates all tables and the bill number sequence.
// Also used by integration tests against a scratch database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Customer{},
		&model.Bill{},
		&model.BillItem{},
		&model.Credit{},
		&model.Settings{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	// Bill numbers come from a dedicated sequence claimed inside the sale
	// transaction. Reading the last bill and incrementing would race under
	// concurrent writers.
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS bill_number_seq START 1").Error; err != nil {
		return fmt.Errorf("bill_number_seq: %w", err)
	}

	return nil
}
