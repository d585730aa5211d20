package dto

import "github.com/shopspring/decimal"

type CreateCustomerRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=120"`
	Phone   string  `json:"phone"   validate:"required,min=6,max=20"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=120"`
	Phone   *string `json:"phone"   validate:"omitempty,min=6,max=20"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address"`
}

type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Email          *string         `json:"email,omitempty"`
	Address        *string         `json:"address,omitempty"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	CreatedAt      string          `json:"createdAt"`
}

// CustomerDetailResponse bundles a customer with their purchase and credit
// history, matching the shape of GET /api/customers/:id.
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	Bills    []BillResponse   `json:"bills"`
	Credits  []CreditResponse `json:"credits"`
}
