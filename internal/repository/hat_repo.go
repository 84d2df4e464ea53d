package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HatRepository interface {
	Create(ctx context.Context, h *model.Hat) error
	FindByID(ctx context.Context, id uint) (*model.Hat, error)
	FindByAd(ctx context.Context, ad string) (*model.Hat, error)
	List(ctx context.Context, hepsi bool) ([]model.Hat, error)
	Update(ctx context.Context, h *model.Hat) error
	SoftDelete(ctx context.Context, id uint) error

	UpsertTarife(ctx context.Context, t *model.Tarife) error
	ListTarife(ctx context.Context, hatID uint) ([]model.Tarife, error)
	FindTarife(ctx context.Context, hatID uint, binis, inis string) (*model.Tarife, error)
}

type hatRepo struct{ db *gorm.DB }

func NewHatRepository(db *gorm.DB) HatRepository { return &hatRepo{db: db} }

func (r *hatRepo) Create(ctx context.Context, h *model.Hat) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *hatRepo) FindByID(ctx context.Context, id uint) (*model.Hat, error) {
	var h model.Hat
	err := r.db.WithContext(ctx).First(&h, id).Error
	return &h, err
}

func (r *hatRepo) FindByAd(ctx context.Context, ad string) (*model.Hat, error) {
	var h model.Hat
	err := r.db.WithContext(ctx).Where("ad = ?", ad).First(&h).Error
	return &h, err
}

func (r *hatRepo) List(ctx context.Context, hepsi bool) ([]model.Hat, error) {
	q := r.db.WithContext(ctx).Model(&model.Hat{})
	if !hepsi {
		q = q.Where("aktif = true")
	}
	var hatlar []model.Hat
	err := q.Order("ad ASC").Find(&hatlar).Error
	return hatlar, err
}

func (r *hatRepo) Update(ctx context.Context, h *model.Hat) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *hatRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Hat{}).Where("id = ?", id).Update("aktif", false).Error
}

func (r *hatRepo) UpsertTarife(ctx context.Context, t *model.Tarife) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hat_id"}, {Name: "binis"}, {Name: "inis"}},
		DoUpdates: clause.AssignmentColumns([]string{"ucret", "updated_at"}),
	}).Create(t).Error
}

func (r *hatRepo) ListTarife(ctx context.Context, hatID uint) ([]model.Tarife, error) {
	var tarifeler []model.Tarife
	err := r.db.WithContext(ctx).
		Where("hat_id = ?", hatID).
		Order("id ASC").
		Find(&tarifeler).Error
	return tarifeler, err
}

func (r *hatRepo) FindTarife(ctx context.Context, hatID uint, binis, inis string) (*model.Tarife, error) {
	var t model.Tarife
	err := r.db.WithContext(ctx).
		Where("hat_id = ? AND binis = ? AND inis = ?", hatID, binis, inis).
		First(&t).Error
	return &t, err
}
