package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/infra"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
	"github.com/harsh12garg/Kirana-billing-software/internal/worker"
)

const (
	billNumberPrefix = "BILL"
	creditDueDays    = 30
)

type BillService interface {
	Create(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error)
	List(ctx context.Context) ([]dto.BillResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BillResponse, error)

	// Receipt renders the bill's PDF receipt and returns the file path.
	Receipt(ctx context.Context, id uuid.UUID) (string, error)
}

type billService struct {
	repo         repository.BillRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	creditRepo   repository.CreditRepository
	settingsRepo repository.SettingsRepository
	dispatcher   *worker.Dispatcher
	receiptDir   string
}

func NewBillService(
	repo repository.BillRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	creditRepo repository.CreditRepository,
	settingsRepo repository.SettingsRepository,
	dispatcher *worker.Dispatcher,
	receiptDir string,
) BillService {
	return &billService{
		repo:         repo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		creditRepo:   creditRepo,
		settingsRepo: settingsRepo,
		dispatcher:   dispatcher,
		receiptDir:   receiptDir,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Create ────────────────────────────────────────────────────────────────────
// The whole sale is one transaction:
//   1. Claim the next bill number from the sequence
//   2. Decrement stock per line item (unknown products are skipped silently)
//   3. Upsert the customer by phone and bump running totals
//   4. Insert the bill with the frozen customer/item snapshots
//   5. Insert a credit record when the sale is credit-flagged
// A failure in any step rolls back the entire sale — a crash can never leave
// stock decremented without a bill, or a bill without its credit record.

func (s *billService) Create(ctx context.Context, req dto.CreateBillRequest) (*dto.BillResponse, error) {
	settings := s.loadSettings(ctx)

	if req.PaymentMethod == "" {
		req.PaymentMethod = model.PaymentCash
	}
	if err := checkPaymentAccepted(req.PaymentMethod, settings); err != nil {
		return nil, err
	}

	// Resolve product references up front. Unparseable ids keep a nil
	// ProductID: the line is billed from its snapshot but never touches stock.
	type resolvedItem struct {
		productID *uuid.UUID
		req       dto.BillItemRequest
	}
	resolved := make([]resolvedItem, 0, len(req.Items))
	for _, item := range req.Items {
		var pid *uuid.UUID
		if id, err := uuid.Parse(item.Product); err == nil {
			pid = &id
		}
		resolved = append(resolved, resolvedItem{productID: pid, req: item})
	}

	autoReduce := settings == nil || settings.AutoReduceStock

	var bill model.Bill
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		seq, err := s.repo.NextBillNumber(ctx, tx)
		if err != nil {
			return err
		}
		billNumber := fmt.Sprintf("%s%06d", billNumberPrefix, seq)

		if autoReduce {
			for _, r := range resolved {
				if r.productID == nil {
					continue
				}
				// A missing product updates zero rows — silent skip
				if err := s.productRepo.DecrementStockTx(tx, *r.productID, r.req.Quantity); err != nil {
					return err
				}
			}
		}

		customerID, err := s.resolveCustomer(tx, req)
		if err != nil {
			return err
		}

		bill = model.Bill{
			BillNumber: billNumber,
			Customer: model.BillCustomer{
				Name:       req.Customer.Name,
				Phone:      req.Customer.Phone,
				CustomerID: customerID,
			},
			Subtotal:      req.Subtotal,
			Tax:           req.Tax,
			Discount:      req.Discount,
			FinalAmount:   req.FinalAmount,
			PaymentMethod: req.PaymentMethod,
			IsCredit:      req.IsCredit,
		}
		for _, r := range resolved {
			bill.Items = append(bill.Items, model.BillItem{
				ProductID: r.productID,
				Name:      r.req.Name,
				Price:     r.req.Price,
				Quantity:  r.req.Quantity,
				Total:     r.req.Total,
			})
		}
		if err := s.repo.CreateTx(tx, &bill); err != nil {
			return err
		}

		if req.IsCredit && customerID != nil {
			notes := "Credit sale - Bill " + billNumber
			credit := model.Credit{
				CustomerID: *customerID,
				BillID:     &bill.ID,
				Amount:     req.FinalAmount,
				DueDate:    time.Now().AddDate(0, 0, creditDueDays),
				IsPaid:     false,
				Notes:      &notes,
			}
			if err := s.creditRepo.CreateTx(tx, &credit); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best-effort low stock alerts — never fails the sale
	s.notifyLowStock(ctx, settings, resolvedProductIDs(req.Items))

	return billToResponse(&bill), nil
}

// resolveCustomer upserts by phone and bumps the running totals. Returns the
// customer id to embed in the bill, or nil for anonymous walk-in sales.
func (s *billService) resolveCustomer(tx *gorm.DB, req dto.CreateBillRequest) (*uuid.UUID, error) {
	if req.Customer.Phone == "" {
		if req.Customer.CustomerID != nil {
			if cid, err := uuid.Parse(*req.Customer.CustomerID); err == nil {
				return &cid, nil
			}
		}
		return nil, nil
	}

	cust, err := s.customerRepo.FindByPhoneTx(tx, req.Customer.Phone)
	if err != nil {
		cust = &model.Customer{Name: req.Customer.Name, Phone: req.Customer.Phone}
		if err := s.customerRepo.CreateTx(tx, cust); err != nil {
			return nil, err
		}
	}
	cust.TotalPurchases = cust.TotalPurchases.Add(req.FinalAmount)
	if req.IsCredit {
		cust.TotalCredit = cust.TotalCredit.Add(req.FinalAmount)
	}
	if err := s.customerRepo.UpdateTx(tx, cust); err != nil {
		return nil, err
	}
	return &cust.ID, nil
}

func (s *billService) List(ctx context.Context) ([]dto.BillResponse, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		out = append(out, *billToResponse(&bills[i]))
	}
	return out, nil
}

func (s *billService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BillResponse, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return billToResponse(bill), nil
}

// Receipt renders the PDF receipt using the current shop settings.
func (s *billService) Receipt(ctx context.Context, id uuid.UUID) (string, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	settings := s.loadSettings(ctx)
	if settings == nil {
		settings = defaultSettings()
	}
	return infra.GenerateReceiptPDF(bill, settings, s.receiptDir)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *billService) loadSettings(ctx context.Context) *model.Settings {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil
	}
	return settings
}

func checkPaymentAccepted(method string, settings *model.Settings) error {
	if settings == nil {
		return nil
	}
	accepted := map[string]bool{
		model.PaymentCash:   settings.AcceptCash,
		model.PaymentCard:   settings.AcceptCard,
		model.PaymentUPI:    settings.AcceptUPI,
		model.PaymentCredit: true,
	}
	if !accepted[method] {
		return errors.New("payment method not accepted: " + method)
	}
	return nil
}

func resolvedProductIDs(items []dto.BillItemRequest) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if id, err := uuid.Parse(item.Product); err == nil && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// notifyLowStock enqueues an alert email for every sold product whose stock
// fell to or below its threshold, honoring the notification toggles.
func (s *billService) notifyLowStock(ctx context.Context, settings *model.Settings, productIDs []uuid.UUID) {
	if s.dispatcher == nil || settings == nil {
		return
	}
	if !settings.EnableStockAlerts || !settings.LowStockNotification || !settings.EmailNotifications {
		return
	}
	if settings.Email == nil || *settings.Email == "" {
		return
	}

	for _, pid := range productIDs {
		p, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			continue
		}
		if p.Stock > p.LowStockThreshold {
			continue
		}
		payload := worker.EmailJobPayload{
			ToEmail: *settings.Email,
			Subject: fmt.Sprintf("Low stock alert: %s", p.Name),
			Body: fmt.Sprintf("Product %q is low on stock: %d %s left (threshold %d).",
				p.Name, p.Stock, p.Unit, p.LowStockThreshold),
		}
		if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Warn().Err(err).Str("product", p.Name).Msg("failed to enqueue low stock alert")
		}
	}
}

func billToResponse(b *model.Bill) *dto.BillResponse {
	items := make([]dto.BillItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		var pid *string
		if item.ProductID != nil {
			s := item.ProductID.String()
			pid = &s
		}
		items = append(items, dto.BillItemResponse{
			Product:  pid,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}
	var customerID *string
	if b.Customer.CustomerID != nil {
		s := b.Customer.CustomerID.String()
		customerID = &s
	}
	return &dto.BillResponse{
		ID:         b.ID.String(),
		BillNumber: b.BillNumber,
		Customer: dto.BillCustomerResponse{
			Name:       b.Customer.Name,
			Phone:      b.Customer.Phone,
			CustomerID: customerID,
		},
		Items:         items,
		Subtotal:      b.Subtotal,
		Tax:           b.Tax,
		Discount:      b.Discount,
		FinalAmount:   b.FinalAmount,
		PaymentMethod: b.PaymentMethod,
		IsCredit:      b.IsCredit,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
