package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCreditRequest struct {
	Customer string          `json:"customer" validate:"required,uuid"`
	Bill     *string         `json:"bill"     validate:"omitempty,uuid"`
	Amount   decimal.Decimal `json:"amount"   validate:"required"`
	DueDate  *time.Time      `json:"dueDate"`
	Notes    *string         `json:"notes"`
}

// UpdateCreditRequest is an open field-level merge: every non-nil field is
// applied. Flipping IsPaid additionally adjusts the customer's running total.
type UpdateCreditRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	DueDate *time.Time       `json:"dueDate"`
	IsPaid  *bool            `json:"isPaid"`
	Notes   *string          `json:"notes"`
}

type CreditResponse struct {
	ID        string            `json:"id"`
	Customer  *CustomerResponse `json:"customer,omitempty"`
	Bill      *BillResponse     `json:"bill,omitempty"`
	Amount    decimal.Decimal   `json:"amount"`
	DueDate   string            `json:"dueDate"`
	IsPaid    bool              `json:"isPaid"`
	PaidDate  *string           `json:"paidDate,omitempty"`
	Notes     *string           `json:"notes,omitempty"`
	CreatedAt string            `json:"createdAt"`
}
