package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Credit tracks an amount a customer owes for a past sale (udhar).
// Created as a side effect of a credit-flagged bill, or entered manually.
type Credit struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null"`
	BillID     *uuid.UUID      `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DueDate    time.Time
	IsPaid     bool `gorm:"not null;default:false;index"`
	PaidDate   *time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Bill     *Bill     `gorm:"foreignKey:BillID"`
}
