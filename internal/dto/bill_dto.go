package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// BillCustomerRequest is the customer descriptor sent with a sale. A phone
// number triggers the upsert path; an empty descriptor records a walk-in sale.
type BillCustomerRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	CustomerID *string `json:"customerId" validate:"omitempty,uuid"`
}

type BillItemRequest struct {
	Product  string          `json:"product"  validate:"required"`
	Name     string          `json:"name"     validate:"required"`
	Price    decimal.Decimal `json:"price"    validate:"required"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Total    decimal.Decimal `json:"total"    validate:"required"`
}

type CreateBillRequest struct {
	Customer      BillCustomerRequest `json:"customer"`
	Items         []BillItemRequest   `json:"items" validate:"required,min=1,dive"`
	Subtotal      decimal.Decimal     `json:"subtotal" validate:"required"`
	Tax           decimal.Decimal     `json:"tax"`
	Discount      decimal.Decimal     `json:"discount"`
	FinalAmount   decimal.Decimal     `json:"finalAmount" validate:"required"`
	PaymentMethod string              `json:"paymentMethod" validate:"omitempty,oneof=cash card upi credit"`
	IsCredit      bool                `json:"isCredit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BillCustomerResponse struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	CustomerID *string `json:"customerId,omitempty"`
}

type BillItemResponse struct {
	Product  *string         `json:"product,omitempty"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type BillResponse struct {
	ID            string               `json:"id"`
	BillNumber    string               `json:"billNumber"`
	Customer      BillCustomerResponse `json:"customer"`
	Items         []BillItemResponse   `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Tax           decimal.Decimal      `json:"tax"`
	Discount      decimal.Decimal      `json:"discount"`
	FinalAmount   decimal.Decimal      `json:"finalAmount"`
	PaymentMethod string               `json:"paymentMethod"`
	IsCredit      bool                 `json:"isCredit"`
	CreatedAt     string               `json:"createdAt"`
}
