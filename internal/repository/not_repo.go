package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"gorm.io/gorm"
)

type NotRepository interface {
	Create(ctx context.Context, n *model.SeferNotu) error
	ListBySefer(ctx context.Context, seferID uint) ([]model.SeferNotu, error)
}

type notRepo struct{ db *gorm.DB }

func NewNotRepository(db *gorm.DB) NotRepository { return &notRepo{db: db} }

func (r *notRepo) Create(ctx context.Context, n *model.SeferNotu) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notRepo) ListBySefer(ctx context.Context, seferID uint) ([]model.SeferNotu, error) {
	var notlar []model.SeferNotu
	err := r.db.WithContext(ctx).
		Where("sefer_id = ?", seferID).
		Order("created_at ASC").
		Find(&notlar).Error
	return notlar, err
}
