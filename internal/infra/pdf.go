package infra

// pdf.go — Receipt PDF generation using go-pdf/fpdf.
// Renders thermal-receipt-style PDFs for bills, honoring the shop's receipt
// preferences (paper size, currency symbol and position, footer text).
// The output file is saved to storagePath/receipt_{billNumber}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

// GenerateReceiptPDF writes the receipt for a bill and returns the file path.
func GenerateReceiptPDF(bill *model.Bill, settings *model.Settings, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("receipt_%s.pdf", bill.BillNumber)
	filePath := filepath.Join(storagePath, fileName)

	pdf := newReceiptPage(settings.ReceiptPaperSize, len(bill.Items))
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, settings.ShopName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	if settings.Address != nil && *settings.Address != "" {
		pdf.CellFormat(contentW, 4, *settings.Address, "", 1, "C", false, 0, "")
	}
	if settings.GSTNumber != nil && *settings.GSTNumber != "" {
		pdf.CellFormat(contentW, 4, "GST: "+*settings.GSTNumber, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	// ── Bill info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, bill.BillNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, bill.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if bill.Customer.Name != "" {
		pdf.CellFormat(contentW, 4, "Customer: "+bill.Customer.Name, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	// ── Items ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW*0.5, 4, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.15, 4, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.35, 4, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range bill.Items {
		pdf.CellFormat(contentW*0.5, 4, item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.15, 4, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.35, 4, formatAmount(item.Total, settings), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	// ── Totals ───────────────────────────────────────────────────────────────
	totalRow := func(label string, amount decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 8)
		pdf.CellFormat(contentW*0.6, 4, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 4, formatAmount(amount, settings), "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal", bill.Subtotal, false)
	if !bill.Tax.IsZero() {
		totalRow("Tax", bill.Tax, false)
	}
	if !bill.Discount.IsZero() {
		totalRow("Discount", bill.Discount.Neg(), false)
	}
	totalRow("TOTAL", bill.FinalAmount, true)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Paid by: "+bill.PaymentMethod, "", 1, "L", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, settings.BillFooterText, "", 1, "C", false, 0, "")
	if settings.ShowBillTerms && settings.BillTerms != nil {
		pdf.MultiCell(contentW, 3.5, *settings.BillTerms, "", "C", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}

// newReceiptPage picks the page geometry for the configured paper size.
// Thermal widths get a height proportional to the item count.
func newReceiptPage(paperSize string, itemCount int) *fpdf.Fpdf {
	if paperSize == "A4" {
		return fpdf.New("P", "mm", "A4", "")
	}
	width := 80.0
	if paperSize == "58mm" {
		width = 58.0
	}
	height := 90.0 + float64(itemCount)*4.5
	return fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
}

// formatAmount renders an amount with the shop's currency settings.
// The core PDF fonts lack the rupee glyph, so ₹ is printed as "Rs.".
func formatAmount(d decimal.Decimal, settings *model.Settings) string {
	symbol := settings.Currency
	if strings.Contains(symbol, "₹") {
		symbol = "Rs."
	}
	if settings.CurrencyPosition == "after" {
		return d.StringFixed(2) + " " + symbol
	}
	return symbol + " " + d.StringFixed(2)
}
