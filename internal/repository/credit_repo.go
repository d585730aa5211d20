package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

type CreditRepository interface {
	Create(ctx context.Context, c *model.Credit) error
	CreateTx(tx *gorm.DB, c *model.Credit) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error)
	List(ctx context.Context) ([]model.Credit, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Credit, error)
	UpdateTx(tx *gorm.DB, c *model.Credit) error

	// PendingTotals returns the sum and count of unpaid credits.
	PendingTotals(ctx context.Context) (decimal.Decimal, int64, error)

	DB() *gorm.DB
}

type creditRepo struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) CreditRepository { return &creditRepo{db: db} }

func (r *creditRepo) DB() *gorm.DB { return r.db }

func (r *creditRepo) Create(ctx context.Context, c *model.Credit) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *creditRepo) CreateTx(tx *gorm.DB, c *model.Credit) error {
	return tx.Create(c).Error
}

func (r *creditRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	var c model.Credit
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Bill").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *creditRepo) List(ctx context.Context) ([]model.Credit, error) {
	var credits []model.Credit
	err := r.db.WithContext(ctx).Preload("Customer").Preload("Bill").
		Order("created_at DESC").Find(&credits).Error
	return credits, err
}

func (r *creditRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]model.Credit, error) {
	var credits []model.Credit
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&credits).Error
	return credits, err
}

func (r *creditRepo) UpdateTx(tx *gorm.DB, c *model.Credit) error {
	return tx.Save(c).Error
}

func (r *creditRepo) PendingTotals(ctx context.Context) (decimal.Decimal, int64, error) {
	var out struct {
		Total decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Credit{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("is_paid = false").
		Scan(&out).Error
	return out.Total, out.Count, err
}
