package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod enumeration. "credit" marks a sale paid later (udhar).
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentUPI    = "upi"
	PaymentCredit = "credit"
)

// BillCustomer is the customer snapshot frozen into a bill at sale time.
// The live Customer row may change later; the snapshot must not.
type BillCustomer struct {
	Name       string
	Phone      string
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
}

// Bill is an immutable record of a completed sale. There is no update or
// delete path for bills anywhere in the system.
type Bill struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BillNumber string       `gorm:"uniqueIndex;not null"`
	Customer   BillCustomer `gorm:"embedded;embeddedPrefix:customer_"`
	Items      []BillItem   `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`

	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	FinalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(10);not null;default:'cash'"`
	IsCredit      bool            `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BillItem is a line of a bill. Name and Price are snapshots taken at sale
// time so that later catalog changes do not alter historical bills.
type BillItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BillID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID *uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}
