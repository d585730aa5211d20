package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

func sampleBill() *model.Bill {
	return &model.Bill{
		ID:         uuid.New(),
		BillNumber: "BILL000042",
		Customer:   model.BillCustomer{Name: "Ramesh", Phone: "9876543210"},
		Items: []model.BillItem{
			{Name: "Rice 1kg", Price: decimal.NewFromFloat(60), Quantity: 2, Total: decimal.NewFromFloat(120)},
			{Name: "Sugar 1kg", Price: decimal.NewFromFloat(45), Quantity: 1, Total: decimal.NewFromFloat(45)},
		},
		Subtotal:      decimal.NewFromFloat(165),
		Tax:           decimal.NewFromFloat(8.25),
		FinalAmount:   decimal.NewFromFloat(173.25),
		PaymentMethod: model.PaymentCash,
		CreatedAt:     time.Now(),
	}
}

func sampleSettings(paperSize string) *model.Settings {
	return &model.Settings{
		ShopName:         "Gupta General Store",
		Currency:         "₹",
		CurrencyPosition: "before",
		ReceiptPaperSize: paperSize,
		BillFooterText:   "Thank you for your business!",
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	for _, size := range []string{"80mm", "58mm", "A4"} {
		t.Run(size, func(t *testing.T) {
			dir := t.TempDir()
			path, err := GenerateReceiptPDF(sampleBill(), sampleSettings(size), dir)
			require.NoError(t, err)

			assert.Equal(t, filepath.Join(dir, "receipt_BILL000042.pdf"), path)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(500))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	s := sampleSettings("80mm")
	// Core fonts lack the rupee glyph
	assert.Equal(t, "Rs. 120.00", formatAmount(decimal.NewFromFloat(120), s))

	s.CurrencyPosition = "after"
	assert.Equal(t, "120.00 Rs.", formatAmount(decimal.NewFromFloat(120), s))

	s.Currency = "$"
	assert.Equal(t, "120.00 $", formatAmount(decimal.NewFromFloat(120), s))
}
