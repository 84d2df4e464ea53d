package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"gorm.io/gorm"
)

// SeferRepository is the data access contract for trips. Services depend on
// this interface, not on the concrete GORM implementation, so unit tests can
// swap in stubs. No Delete method exists: ledger rows reference trips.
type SeferRepository interface {
	Create(ctx context.Context, s *model.Sefer) error
	FindByID(ctx context.Context, id uint) (*model.Sefer, error)
	List(ctx context.Context, filter dto.SeferFilter) ([]model.Sefer, int64, error)
}

type seferRepo struct{ db *gorm.DB }

func NewSeferRepository(db *gorm.DB) SeferRepository { return &seferRepo{db: db} }

func (r *seferRepo) Create(ctx context.Context, s *model.Sefer) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *seferRepo) FindByID(ctx context.Context, id uint) (*model.Sefer, error) {
	var s model.Sefer
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *seferRepo) List(ctx context.Context, filter dto.SeferFilter) ([]model.Sefer, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Sefer{})

	if filter.Baslangic != "" {
		q = q.Where("tarih >= ?", filter.Baslangic)
	}
	if filter.Bitis != "" {
		q = q.Where("tarih <= ?", filter.Bitis)
	}
	if filter.Hat != "" {
		q = q.Where("hat = ?", filter.Hat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var seferler []model.Sefer
	err := q.Order("tarih DESC, kalkis_saati DESC").Offset(offset).Limit(filter.Limit).Find(&seferler).Error
	return seferler, total, err
}
