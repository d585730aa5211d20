package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────
// Form tags exist alongside json because product create/update may arrive as
// multipart form data when an image is attached.

type CreateProductRequest struct {
	Name              string          `json:"name"              form:"name"              validate:"required,min=1,max=120"`
	Category          string          `json:"category"          form:"category"          validate:"required"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"     form:"purchasePrice"     validate:"required"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"      form:"sellingPrice"      validate:"required"`
	Stock             int             `json:"stock"             form:"stock"             validate:"min=0"`
	Unit              string          `json:"unit"              form:"unit"`
	Barcode           *string         `json:"barcode"           form:"barcode"`
	LowStockThreshold *int            `json:"lowStockThreshold" form:"lowStockThreshold" validate:"omitempty,min=0"`
}

type UpdateProductRequest struct {
	Name              *string          `json:"name"              form:"name"              validate:"omitempty,min=1,max=120"`
	Category          *string          `json:"category"          form:"category"`
	PurchasePrice     *decimal.Decimal `json:"purchasePrice"     form:"purchasePrice"`
	SellingPrice      *decimal.Decimal `json:"sellingPrice"      form:"sellingPrice"`
	Stock             *int             `json:"stock"             form:"stock"             validate:"omitempty"`
	Unit              *string          `json:"unit"              form:"unit"`
	Barcode           *string          `json:"barcode"           form:"barcode"`
	LowStockThreshold *int             `json:"lowStockThreshold" form:"lowStockThreshold" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice"`
	SellingPrice      decimal.Decimal `json:"sellingPrice"`
	Stock             int             `json:"stock"`
	Unit              string          `json:"unit"`
	Barcode           *string         `json:"barcode,omitempty"`
	Image             *string         `json:"image,omitempty"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
}
