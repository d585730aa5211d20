package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a registry entry keyed by phone number.
// TotalPurchases and TotalCredit are running totals maintained by bill
// creation and credit settlement.
type Customer struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"not null"`
	Phone          string          `gorm:"uniqueIndex;not null"`
	Email          *string
	Address        *string
	TotalPurchases decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	// TotalCredit is the sum of this customer's unpaid credit amounts
	TotalCredit decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
