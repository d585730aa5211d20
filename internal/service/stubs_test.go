package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

// ── stubProductRepo ───────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) FindLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Stock <= p.LowStockThreshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	// Missing products update zero rows, same as the real repo
	if p, ok := r.products[id]; ok {
		p.Stock -= qty
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── stubCustomerRepo ──────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) FindByPhone(_ context.Context, phone string) (*model.Customer, error) {
	return r.findByPhone(phone)
}

func (r *stubCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.customers)), nil
}

func (r *stubCustomerRepo) CreateTx(_ *gorm.DB, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) UpdateTx(_ *gorm.DB, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByPhoneTx(_ *gorm.DB, phone string) (*model.Customer, error) {
	return r.findByPhone(phone)
}

func (r *stubCustomerRepo) AdjustTotalCreditTx(_ *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := r.customers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.TotalCredit = c.TotalCredit.Add(delta)
	return nil
}

func (r *stubCustomerRepo) findByPhone(phone string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// ── stubBillRepo ──────────────────────────────────────────────────────────────

type stubBillRepo struct {
	bills map[uuid.UUID]*model.Bill
	seq   int64
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{bills: make(map[uuid.UUID]*model.Bill)}
}

func (r *stubBillRepo) CreateTx(_ *gorm.DB, b *model.Bill) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	r.bills[b.ID] = b
	return nil
}

func (r *stubBillRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBillRepo) List(_ context.Context) ([]model.Bill, error) {
	out := make([]model.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBillRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]model.Bill, error) {
	var out []model.Bill
	for _, b := range r.bills {
		if b.Customer.CustomerID != nil && *b.Customer.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBillRepo) NextBillNumber(_ context.Context, _ *gorm.DB) (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *stubBillRepo) SumFinalAmountSince(_ context.Context, from time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range r.bills {
		if !b.CreatedAt.Before(from) {
			total = total.Add(b.FinalAmount)
		}
	}
	return total, nil
}

func (r *stubBillRepo) SumFinalAmountBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, b := range r.bills {
		if !b.CreatedAt.Before(from) && b.CreatedAt.Before(to) {
			total = total.Add(b.FinalAmount)
		}
	}
	return total, nil
}

func (r *stubBillRepo) BestSelling(_ context.Context, limit int) ([]repository.BestSellingRow, error) {
	byProduct := make(map[uuid.UUID]*repository.BestSellingRow)
	for _, b := range r.bills {
		for _, item := range b.Items {
			if item.ProductID == nil {
				continue
			}
			row, ok := byProduct[*item.ProductID]
			if !ok {
				row = &repository.BestSellingRow{ProductID: *item.ProductID, Name: item.Name}
				byProduct[*item.ProductID] = row
			}
			row.TotalQuantity += item.Quantity
			row.TotalRevenue = row.TotalRevenue.Add(item.Total)
		}
	}
	out := make([]repository.BestSellingRow, 0, len(byProduct))
	for _, row := range byProduct {
		out = append(out, *row)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubBillRepo) DB() *gorm.DB { return nil }

var _ repository.BillRepository = (*stubBillRepo)(nil)

// ── stubCreditRepo ────────────────────────────────────────────────────────────

type stubCreditRepo struct {
	credits map[uuid.UUID]*model.Credit
}

func newStubCreditRepo() *stubCreditRepo {
	return &stubCreditRepo{credits: make(map[uuid.UUID]*model.Credit)}
}

func (r *stubCreditRepo) Create(_ context.Context, c *model.Credit) error {
	return r.CreateTx(nil, c)
}

func (r *stubCreditRepo) CreateTx(_ *gorm.DB, c *model.Credit) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.credits[c.ID] = c
	return nil
}

func (r *stubCreditRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Credit, error) {
	c, ok := r.credits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCreditRepo) List(_ context.Context) ([]model.Credit, error) {
	out := make([]model.Credit, 0, len(r.credits))
	for _, c := range r.credits {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCreditRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]model.Credit, error) {
	var out []model.Credit
	for _, c := range r.credits {
		if c.CustomerID == customerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCreditRepo) UpdateTx(_ *gorm.DB, c *model.Credit) error {
	r.credits[c.ID] = c
	return nil
}

func (r *stubCreditRepo) PendingTotals(_ context.Context) (decimal.Decimal, int64, error) {
	total := decimal.Zero
	var count int64
	for _, c := range r.credits {
		if !c.IsPaid {
			total = total.Add(c.Amount)
			count++
		}
	}
	return total, count, nil
}

func (r *stubCreditRepo) DB() *gorm.DB { return nil }

var _ repository.CreditRepository = (*stubCreditRepo)(nil)

// ── stubSettingsRepo ──────────────────────────────────────────────────────────

type stubSettingsRepo struct {
	settings *model.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	if r.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) Create(_ context.Context, s *model.Settings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.settings = s
	return nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s *model.Settings) error {
	r.settings = s
	return nil
}

var _ repository.SettingsRepository = (*stubSettingsRepo)(nil)

// ── stubUserRepo ──────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name string, stock, threshold int, price float64) *model.Product {
	p := &model.Product{
		ID:                uuid.New(),
		Name:              name,
		Category:          "Grocery",
		PurchasePrice:     decimal.NewFromFloat(price * 0.8),
		SellingPrice:      decimal.NewFromFloat(price),
		Stock:             stock,
		Unit:              "pcs",
		LowStockThreshold: threshold,
	}
	repo.products[p.ID] = p
	return p
}
