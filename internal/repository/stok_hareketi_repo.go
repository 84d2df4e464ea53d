package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StokHareketiRepository is append-only, like the cash ledger. The stock
// floor check and the append run inside one transaction, so Sum and Create
// both exist in Tx flavors for callers holding a live tx.
type StokHareketiRepository interface {
	Create(ctx context.Context, m *model.StokHareketi) error
	CreateTx(tx *gorm.DB, m *model.StokHareketi) error
	SumByUrun(ctx context.Context, urunID uint) (decimal.Decimal, error)
	SumByUrunTx(tx *gorm.DB, urunID uint) (decimal.Decimal, error)
	List(ctx context.Context, filter dto.StokFilter) ([]model.StokHareketi, int64, error)
	SatislarBySefer(ctx context.Context, seferID uint) ([]model.StokHareketi, error)
	FindByIslemAnahtari(ctx context.Context, anahtar string) (*model.StokHareketi, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type stokHareketiRepo struct{ db *gorm.DB }

func NewStokHareketiRepository(db *gorm.DB) StokHareketiRepository {
	return &stokHareketiRepo{db: db}
}

func (r *stokHareketiRepo) DB() *gorm.DB { return r.db }

func (r *stokHareketiRepo) Create(ctx context.Context, m *model.StokHareketi) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *stokHareketiRepo) CreateTx(tx *gorm.DB, m *model.StokHareketi) error {
	return tx.Create(m).Error
}

func (r *stokHareketiRepo) SumByUrun(ctx context.Context, urunID uint) (decimal.Decimal, error) {
	return sumMiktar(r.db.WithContext(ctx), urunID)
}

func (r *stokHareketiRepo) SumByUrunTx(tx *gorm.DB, urunID uint) (decimal.Decimal, error) {
	return sumMiktar(tx, urunID)
}

func sumMiktar(db *gorm.DB, urunID uint) (decimal.Decimal, error) {
	var toplam decimal.Decimal
	err := db.Model(&model.StokHareketi{}).
		Select("COALESCE(SUM(miktar), 0)").
		Where("urun_id = ?", urunID).
		Scan(&toplam).Error
	return toplam, err
}

func (r *stokHareketiRepo) List(ctx context.Context, filter dto.StokFilter) ([]model.StokHareketi, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.StokHareketi{}).Preload("Urun")

	if filter.UrunID != nil {
		q = q.Where("urun_id = ?", *filter.UrunID)
	}
	if filter.SeferID != nil {
		q = q.Where("sefer_id = ?", *filter.SeferID)
	}
	if filter.Tur != "" {
		q = q.Where("tur = ?", filter.Tur)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var hareketler []model.StokHareketi
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&hareketler).Error
	return hareketler, total, err
}

func (r *stokHareketiRepo) SatislarBySefer(ctx context.Context, seferID uint) ([]model.StokHareketi, error) {
	var hareketler []model.StokHareketi
	err := r.db.WithContext(ctx).
		Where("sefer_id = ? AND tur = ?", seferID, model.StokSatis).
		Find(&hareketler).Error
	return hareketler, err
}

func (r *stokHareketiRepo) FindByIslemAnahtari(ctx context.Context, anahtar string) (*model.StokHareketi, error) {
	var m model.StokHareketi
	err := r.db.WithContext(ctx).Where("islem_anahtari = ?", anahtar).First(&m).Error
	return &m, err
}
