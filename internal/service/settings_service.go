package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest, logoPath *string) (*dto.SettingsResponse, error)

	// Raw returns the model for internal consumers (receipts, bill creation).
	Raw(ctx context.Context) (*model.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// defaultSettings builds the row created lazily on first read. Values match
// the column defaults so the document looks the same regardless of which
// path created it.
func defaultSettings() *model.Settings {
	return &model.Settings{
		ShopName:             "Kirana Shop",
		Currency:             "₹",
		CurrencyPosition:     "before",
		BillPrefix:           "INV",
		BillStartNumber:      1,
		BillFooterText:       "Thank you for your business!",
		LowStockAlert:        10,
		EnableStockAlerts:    true,
		AutoReduceStock:      true,
		LowStockNotification: true,
		AcceptCash:           true,
		AcceptCard:           true,
		AcceptUPI:            true,
		ReceiptPaperSize:     "80mm",
		ShowBarcode:          true,
		BackupFrequency:      "weekly",
		ItemsPerPage:         10,
		DateFormat:           "DD/MM/YYYY",
		TimeFormat:           "12h",
	}
}

// Raw returns the singleton settings row, creating it with defaults when the
// table is empty. Every read after the first returns the same row.
func (s *settingsService) Raw(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	settings = defaultSettings()
	if err := s.repo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest, logoPath *string) (*dto.SettingsResponse, error) {
	settings, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}

	applySettingsUpdate(settings, req)
	if logoPath != nil {
		settings.Logo = logoPath
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

func applySettingsUpdate(s *model.Settings, req dto.UpdateSettingsRequest) {
	if req.ShopName != nil {
		s.ShopName = *req.ShopName
	}
	if req.GSTNumber != nil {
		s.GSTNumber = req.GSTNumber
	}
	if req.Address != nil {
		s.Address = req.Address
	}
	if req.Phone != nil {
		s.Phone = req.Phone
	}
	if req.Email != nil {
		s.Email = req.Email
	}
	if req.Website != nil {
		s.Website = req.Website
	}
	if req.TaxRate != nil {
		s.TaxRate = *req.TaxRate
	}
	if req.Currency != nil {
		s.Currency = *req.Currency
	}
	if req.CurrencyPosition != nil {
		s.CurrencyPosition = *req.CurrencyPosition
	}
	if req.BillPrefix != nil {
		s.BillPrefix = *req.BillPrefix
	}
	if req.BillStartNumber != nil {
		s.BillStartNumber = *req.BillStartNumber
	}
	if req.BillFooterText != nil {
		s.BillFooterText = *req.BillFooterText
	}
	if req.ShowBillTerms != nil {
		s.ShowBillTerms = *req.ShowBillTerms
	}
	if req.BillTerms != nil {
		s.BillTerms = req.BillTerms
	}
	if req.LowStockAlert != nil {
		s.LowStockAlert = *req.LowStockAlert
	}
	if req.EnableStockAlerts != nil {
		s.EnableStockAlerts = *req.EnableStockAlerts
	}
	if req.AutoReduceStock != nil {
		s.AutoReduceStock = *req.AutoReduceStock
	}
	if req.EmailNotifications != nil {
		s.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		s.SMSNotifications = *req.SMSNotifications
	}
	if req.LowStockNotification != nil {
		s.LowStockNotification = *req.LowStockNotification
	}
	if req.DailyReportEmail != nil {
		s.DailyReportEmail = *req.DailyReportEmail
	}
	if req.BusinessHours != nil {
		s.BusinessHours = *req.BusinessHours
	}
	if req.AcceptCash != nil {
		s.AcceptCash = *req.AcceptCash
	}
	if req.AcceptCard != nil {
		s.AcceptCard = *req.AcceptCard
	}
	if req.AcceptUPI != nil {
		s.AcceptUPI = *req.AcceptUPI
	}
	if req.UPIID != nil {
		s.UPIID = req.UPIID
	}
	if req.PrintAfterSale != nil {
		s.PrintAfterSale = *req.PrintAfterSale
	}
	if req.ReceiptPaperSize != nil {
		s.ReceiptPaperSize = *req.ReceiptPaperSize
	}
	if req.ShowBarcode != nil {
		s.ShowBarcode = *req.ShowBarcode
	}
	if req.AutoBackup != nil {
		s.AutoBackup = *req.AutoBackup
	}
	if req.BackupFrequency != nil {
		s.BackupFrequency = *req.BackupFrequency
	}
	if req.ItemsPerPage != nil {
		s.ItemsPerPage = *req.ItemsPerPage
	}
	if req.DateFormat != nil {
		s.DateFormat = *req.DateFormat
	}
	if req.TimeFormat != nil {
		s.TimeFormat = *req.TimeFormat
	}
}

func settingsToResponse(s *model.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:                   s.ID.String(),
		ShopName:             s.ShopName,
		GSTNumber:            s.GSTNumber,
		Address:              s.Address,
		Phone:                s.Phone,
		Email:                s.Email,
		Website:              s.Website,
		Logo:                 s.Logo,
		TaxRate:              s.TaxRate,
		Currency:             s.Currency,
		CurrencyPosition:     s.CurrencyPosition,
		BillPrefix:           s.BillPrefix,
		BillStartNumber:      s.BillStartNumber,
		BillFooterText:       s.BillFooterText,
		ShowBillTerms:        s.ShowBillTerms,
		BillTerms:            s.BillTerms,
		LowStockAlert:        s.LowStockAlert,
		EnableStockAlerts:    s.EnableStockAlerts,
		AutoReduceStock:      s.AutoReduceStock,
		EmailNotifications:   s.EmailNotifications,
		SMSNotifications:     s.SMSNotifications,
		LowStockNotification: s.LowStockNotification,
		DailyReportEmail:     s.DailyReportEmail,
		BusinessHours:        s.BusinessHours,
		AcceptCash:           s.AcceptCash,
		AcceptCard:           s.AcceptCard,
		AcceptUPI:            s.AcceptUPI,
		UPIID:                s.UPIID,
		PrintAfterSale:       s.PrintAfterSale,
		ReceiptPaperSize:     s.ReceiptPaperSize,
		ShowBarcode:          s.ShowBarcode,
		AutoBackup:           s.AutoBackup,
		BackupFrequency:      s.BackupFrequency,
		ItemsPerPage:         s.ItemsPerPage,
		DateFormat:           s.DateFormat,
		TimeFormat:           s.TimeFormat,
	}
}
