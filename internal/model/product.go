package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item with a running stock counter.
// Barcode is nullable so the unique index is sparse: products without a
// barcode never conflict with each other.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"index;not null"`
	Category      string          `gorm:"not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock         int             `gorm:"not null;default:0"`
	Unit          string          `gorm:"not null;default:'pcs'"`
	Barcode       *string         `gorm:"uniqueIndex"`
	Image         *string
	// LowStockThreshold: stock at or below this value flags the product on the dashboard
	LowStockThreshold int `gorm:"not null;default:10"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
