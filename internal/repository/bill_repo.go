package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

// BestSellingRow is one aggregated product from the bill_items scan.
type BestSellingRow struct {
	ProductID     uuid.UUID
	Name          string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

type BillRepository interface {
	CreateTx(tx *gorm.DB, b *model.Bill) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error)
	List(ctx context.Context) ([]model.Bill, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Bill, error)

	// NextBillNumber claims the next value from the bill number sequence.
	// Atomic — concurrent sales can never collide on a number.
	NextBillNumber(ctx context.Context, tx *gorm.DB) (int64, error)

	// Dashboard aggregates
	SumFinalAmountSince(ctx context.Context, from time.Time) (decimal.Decimal, error)
	SumFinalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	BestSelling(ctx context.Context, limit int) ([]BestSellingRow, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type billRepo struct{ db *gorm.DB }

func NewBillRepository(db *gorm.DB) BillRepository { return &billRepo{db: db} }

func (r *billRepo) DB() *gorm.DB { return r.db }

func (r *billRepo) CreateTx(tx *gorm.DB, b *model.Bill) error {
	return tx.Create(b).Error
}

func (r *billRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Bill, error) {
	var b model.Bill
	err := r.db.WithContext(ctx).Preload("Items").First(&b, "id = ?", id).Error
	return &b, err
}

func (r *billRepo) List(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&bills).Error
	return bills, err
}

func (r *billRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Bill, error) {
	var bills []model.Bill
	err := r.db.WithContext(ctx).Preload("Items").
		Where("customer_customer_id = ?", customerID).
		Order("created_at DESC").Find(&bills).Error
	return bills, err
}

func (r *billRepo) NextBillNumber(ctx context.Context, tx *gorm.DB) (int64, error) {
	// PostgreSQL sequence created in infra.NewDatabase
	var num int64
	err := tx.WithContext(ctx).Raw("SELECT nextval('bill_number_seq')").Scan(&num).Error
	return num, err
}

func (r *billRepo) SumFinalAmountSince(ctx context.Context, from time.Time) (decimal.Decimal, error) {
	var out struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Select("COALESCE(SUM(final_amount), 0) AS total").
		Where("created_at >= ?", from).
		Scan(&out).Error
	return out.Total, err
}

func (r *billRepo) SumFinalAmountBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var out struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Bill{}).
		Select("COALESCE(SUM(final_amount), 0) AS total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&out).Error
	return out.Total, err
}

func (r *billRepo) BestSelling(ctx context.Context, limit int) ([]BestSellingRow, error) {
	var rows []BestSellingRow
	err := r.db.WithContext(ctx).Model(&model.BillItem{}).
		Select("product_id, MAX(name) AS name, SUM(quantity) AS total_quantity, COALESCE(SUM(total), 0) AS total_revenue").
		Where("product_id IS NOT NULL").
		Group("product_id").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
