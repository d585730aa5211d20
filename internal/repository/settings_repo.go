package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

type SettingsRepository interface {
	// Get returns the single settings row; gorm.ErrRecordNotFound when absent.
	Get(ctx context.Context) (*model.Settings, error)
	Create(ctx context.Context, s *model.Settings) error
	Save(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s).Error
	return &s, err
}

func (r *settingsRepo) Create(ctx context.Context, s *model.Settings) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *settingsRepo) Save(ctx context.Context, s *model.Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
