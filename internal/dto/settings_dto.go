package dto

import (
	"github.com/shopspring/decimal"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

// UpdateSettingsRequest is a partial merge: only non-nil fields are applied.
// Form tags exist because PUT /api/settings may arrive as multipart form data
// when a logo file is attached.
type UpdateSettingsRequest struct {
	ShopName  *string `json:"shopName"  form:"shopName"  validate:"omitempty,min=1,max=120"`
	GSTNumber *string `json:"gstNumber" form:"gstNumber"`
	Address   *string `json:"address"   form:"address"`
	Phone     *string `json:"phone"     form:"phone"`
	Email     *string `json:"email"     form:"email"   validate:"omitempty,email"`
	Website   *string `json:"website"   form:"website"`

	TaxRate          *decimal.Decimal `json:"taxRate"          form:"taxRate"`
	Currency         *string          `json:"currency"         form:"currency"`
	CurrencyPosition *string          `json:"currencyPosition" form:"currencyPosition" validate:"omitempty,oneof=before after"`

	BillPrefix      *string `json:"billPrefix"      form:"billPrefix"`
	BillStartNumber *int    `json:"billStartNumber" form:"billStartNumber" validate:"omitempty,min=1"`
	BillFooterText  *string `json:"billFooterText"  form:"billFooterText"`
	ShowBillTerms   *bool   `json:"showBillTerms"   form:"showBillTerms"`
	BillTerms       *string `json:"billTerms"       form:"billTerms"`

	LowStockAlert     *int  `json:"lowStockAlert"     form:"lowStockAlert" validate:"omitempty,min=0"`
	EnableStockAlerts *bool `json:"enableStockAlerts" form:"enableStockAlerts"`
	AutoReduceStock   *bool `json:"autoReduceStock"   form:"autoReduceStock"`

	EmailNotifications   *bool `json:"emailNotifications"   form:"emailNotifications"`
	SMSNotifications     *bool `json:"smsNotifications"     form:"smsNotifications"`
	LowStockNotification *bool `json:"lowStockNotification" form:"lowStockNotification"`
	DailyReportEmail     *bool `json:"dailyReportEmail"     form:"dailyReportEmail"`

	BusinessHours *model.BusinessHours `json:"businessHours" form:"-"`

	AcceptCash *bool   `json:"acceptCash" form:"acceptCash"`
	AcceptCard *bool   `json:"acceptCard" form:"acceptCard"`
	AcceptUPI  *bool   `json:"acceptUPI"  form:"acceptUPI"`
	UPIID      *string `json:"upiId"      form:"upiId"`

	PrintAfterSale   *bool   `json:"printAfterSale"   form:"printAfterSale"`
	ReceiptPaperSize *string `json:"receiptPaperSize" form:"receiptPaperSize" validate:"omitempty,oneof=80mm 58mm A4"`
	ShowBarcode      *bool   `json:"showBarcode"      form:"showBarcode"`

	AutoBackup      *bool   `json:"autoBackup"      form:"autoBackup"`
	BackupFrequency *string `json:"backupFrequency" form:"backupFrequency" validate:"omitempty,oneof=daily weekly monthly"`

	ItemsPerPage *int    `json:"itemsPerPage" form:"itemsPerPage" validate:"omitempty,min=1,max=100"`
	DateFormat   *string `json:"dateFormat"   form:"dateFormat"   validate:"omitempty,oneof=DD/MM/YYYY MM/DD/YYYY YYYY-MM-DD"`
	TimeFormat   *string `json:"timeFormat"   form:"timeFormat"   validate:"omitempty,oneof=12h 24h"`
}

type SettingsResponse struct {
	ID        string  `json:"id"`
	ShopName  string  `json:"shopName"`
	GSTNumber *string `json:"gstNumber,omitempty"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Website   *string `json:"website,omitempty"`
	Logo      *string `json:"logo,omitempty"`

	TaxRate          decimal.Decimal `json:"taxRate"`
	Currency         string          `json:"currency"`
	CurrencyPosition string          `json:"currencyPosition"`

	BillPrefix      string  `json:"billPrefix"`
	BillStartNumber int     `json:"billStartNumber"`
	BillFooterText  string  `json:"billFooterText"`
	ShowBillTerms   bool    `json:"showBillTerms"`
	BillTerms       *string `json:"billTerms,omitempty"`

	LowStockAlert     int  `json:"lowStockAlert"`
	EnableStockAlerts bool `json:"enableStockAlerts"`
	AutoReduceStock   bool `json:"autoReduceStock"`

	EmailNotifications   bool `json:"emailNotifications"`
	SMSNotifications     bool `json:"smsNotifications"`
	LowStockNotification bool `json:"lowStockNotification"`
	DailyReportEmail     bool `json:"dailyReportEmail"`

	BusinessHours model.BusinessHours `json:"businessHours"`

	AcceptCash bool    `json:"acceptCash"`
	AcceptCard bool    `json:"acceptCard"`
	AcceptUPI  bool    `json:"acceptUPI"`
	UPIID      *string `json:"upiId,omitempty"`

	PrintAfterSale   bool   `json:"printAfterSale"`
	ReceiptPaperSize string `json:"receiptPaperSize"`
	ShowBarcode      bool   `json:"showBarcode"`

	AutoBackup      bool   `json:"autoBackup"`
	BackupFrequency string `json:"backupFrequency"`

	ItemsPerPage int    `json:"itemsPerPage"`
	DateFormat   string `json:"dateFormat"`
	TimeFormat   string `json:"timeFormat"`
}
