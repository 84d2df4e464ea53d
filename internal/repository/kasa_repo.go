package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// KasaRepository is append-only by contract: no Update or Delete exists,
// here or anywhere up the stack. Corrections are new inverse entries.
type KasaRepository interface {
	Create(ctx context.Context, m *model.KasaHareketi) error
	CreateTx(tx *gorm.DB, m *model.KasaHareketi) error
	List(ctx context.Context, filter dto.KasaFilter) ([]model.KasaHareketi, int64, error)
	// SumBySefer returns (gelir, gider) totals for one trip by summation.
	SumBySefer(ctx context.Context, seferID uint) (decimal.Decimal, decimal.Decimal, error)
}

type kasaRepo struct{ db *gorm.DB }

func NewKasaRepository(db *gorm.DB) KasaRepository { return &kasaRepo{db: db} }

func (r *kasaRepo) Create(ctx context.Context, m *model.KasaHareketi) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *kasaRepo) CreateTx(tx *gorm.DB, m *model.KasaHareketi) error {
	return tx.Create(m).Error
}

func (r *kasaRepo) List(ctx context.Context, filter dto.KasaFilter) ([]model.KasaHareketi, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.KasaHareketi{})

	if filter.SeferID != nil {
		q = q.Where("sefer_id = ?", *filter.SeferID)
	}
	if filter.Tur != "" {
		q = q.Where("tur = ?", filter.Tur)
	}
	if filter.Kategori != "" {
		q = q.Where("kategori = ?", filter.Kategori)
	}
	if filter.Baslangic != "" {
		q = q.Where("DATE(created_at) >= ?", filter.Baslangic)
	}
	if filter.Bitis != "" {
		q = q.Where("DATE(created_at) <= ?", filter.Bitis)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var hareketler []model.KasaHareketi
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&hareketler).Error
	return hareketler, total, err
}

func (r *kasaRepo) SumBySefer(ctx context.Context, seferID uint) (decimal.Decimal, decimal.Decimal, error) {
	type row struct {
		Tur    string
		Toplam decimal.Decimal
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.KasaHareketi{}).
		Select("tur, COALESCE(SUM(tutar), 0) AS toplam").
		Where("sefer_id = ?", seferID).
		Group("tur").
		Scan(&rows).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	gelir, gider := decimal.Zero, decimal.Zero
	for _, x := range rows {
		switch x.Tur {
		case model.KasaGelir:
			gelir = x.Toplam
		case model.KasaGider:
			gider = x.Toplam
		}
	}
	return gelir, gider, nil
}
