package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"gorm.io/gorm"
)

type UrunRepository interface {
	Create(ctx context.Context, u *model.Urun) error
	FindByID(ctx context.Context, id uint) (*model.Urun, error)
	FindByAd(ctx context.Context, ad string) (*model.Urun, error)
	List(ctx context.Context, hepsi bool) ([]model.Urun, error)
	Update(ctx context.Context, u *model.Urun) error
	SoftDelete(ctx context.Context, id uint) error
	Reactivate(ctx context.Context, id uint) error
}

type urunRepo struct{ db *gorm.DB }

func NewUrunRepository(db *gorm.DB) UrunRepository { return &urunRepo{db: db} }

func (r *urunRepo) Create(ctx context.Context, u *model.Urun) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *urunRepo) FindByID(ctx context.Context, id uint) (*model.Urun, error) {
	var u model.Urun
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *urunRepo) FindByAd(ctx context.Context, ad string) (*model.Urun, error) {
	var u model.Urun
	err := r.db.WithContext(ctx).Where("ad = ?", ad).First(&u).Error
	return &u, err
}

func (r *urunRepo) List(ctx context.Context, hepsi bool) ([]model.Urun, error) {
	q := r.db.WithContext(ctx).Model(&model.Urun{})
	if !hepsi {
		q = q.Where("aktif = true")
	}
	var urunler []model.Urun
	err := q.Order("ad ASC").Find(&urunler).Error
	return urunler, err
}

func (r *urunRepo) Update(ctx context.Context, u *model.Urun) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *urunRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Urun{}).Where("id = ?", id).Update("aktif", false).Error
}

func (r *urunRepo) Reactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Urun{}).Where("id = ?", id).Update("aktif", true).Error
}
