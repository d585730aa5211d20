package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayHours is the opening window for a single weekday.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// BusinessHours holds the weekly schedule. Stored as a JSON column — the
// shape is display-only and never queried.
type BusinessHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// Settings is the single mutable configuration document. At most one row
// exists; it is created lazily with defaults on first read.
type Settings struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	// Shop identity
	ShopName  string `gorm:"not null;default:'Kirana Shop'"`
	GSTNumber *string
	Address   *string
	Phone     *string
	Email     *string
	Website   *string
	Logo      *string

	// Tax & currency
	TaxRate          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Currency         string          `gorm:"not null;default:'₹'"`
	CurrencyPosition string          `gorm:"type:varchar(10);not null;default:'before'"` // before | after

	// Bill preferences
	BillPrefix      string `gorm:"not null;default:'INV'"`
	BillStartNumber int    `gorm:"not null;default:1"`
	BillFooterText  string `gorm:"not null;default:'Thank you for your business!'"`
	ShowBillTerms   bool   `gorm:"not null;default:false"`
	BillTerms       *string

	// Inventory alerts
	LowStockAlert     int  `gorm:"not null;default:10"`
	EnableStockAlerts bool `gorm:"not null;default:true"`
	AutoReduceStock   bool `gorm:"not null;default:true"`

	// Notifications
	EmailNotifications   bool `gorm:"not null;default:false"`
	SMSNotifications     bool `gorm:"not null;default:false"`
	LowStockNotification bool `gorm:"not null;default:true"`
	DailyReportEmail     bool `gorm:"not null;default:false"`

	BusinessHours BusinessHours `gorm:"serializer:json"`

	// Payment acceptance
	AcceptCash bool `gorm:"not null;default:true"`
	AcceptCard bool `gorm:"not null;default:true"`
	AcceptUPI  bool `gorm:"not null;default:true"`
	UPIID      *string

	// Receipt formatting
	PrintAfterSale   bool   `gorm:"not null;default:false"`
	ReceiptPaperSize string `gorm:"type:varchar(10);not null;default:'80mm'"` // 80mm | 58mm | A4
	ShowBarcode      bool   `gorm:"not null;default:true"`

	// Backup preferences
	AutoBackup      bool   `gorm:"not null;default:false"`
	BackupFrequency string `gorm:"type:varchar(10);not null;default:'weekly'"` // daily | weekly | monthly

	// Display preferences
	ItemsPerPage int    `gorm:"not null;default:10"`
	DateFormat   string `gorm:"not null;default:'DD/MM/YYYY'"`
	TimeFormat   string `gorm:"type:varchar(5);not null;default:'12h'"` // 12h | 24h

	CreatedAt time.Time
	UpdatedAt time.Time
}
