package repository

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"gorm.io/gorm"
)

type PersonelRepository interface {
	Create(ctx context.Context, p *model.Personel) error
	FindByID(ctx context.Context, id uint) (*model.Personel, error)
	FindByKullaniciAdi(ctx context.Context, kullaniciAdi string) (*model.Personel, error)
	List(ctx context.Context, hepsi bool) ([]model.Personel, error)
	Update(ctx context.Context, p *model.Personel) error
	SoftDelete(ctx context.Context, id uint) error
	Reactivate(ctx context.Context, id uint) error
}

type personelRepo struct{ db *gorm.DB }

func NewPersonelRepository(db *gorm.DB) PersonelRepository { return &personelRepo{db: db} }

func (r *personelRepo) Create(ctx context.Context, p *model.Personel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *personelRepo) FindByID(ctx context.Context, id uint) (*model.Personel, error) {
	var p model.Personel
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *personelRepo) FindByKullaniciAdi(ctx context.Context, kullaniciAdi string) (*model.Personel, error) {
	var p model.Personel
	err := r.db.WithContext(ctx).Where("kullanici_adi = ?", kullaniciAdi).First(&p).Error
	return &p, err
}

func (r *personelRepo) List(ctx context.Context, hepsi bool) ([]model.Personel, error) {
	q := r.db.WithContext(ctx).Model(&model.Personel{})
	if !hepsi {
		q = q.Where("aktif = true")
	}
	var personeller []model.Personel
	err := q.Order("kullanici_adi ASC").Find(&personeller).Error
	return personeller, err
}

func (r *personelRepo) Update(ctx context.Context, p *model.Personel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *personelRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Personel{}).Where("id = ?", id).Update("aktif", false).Error
}

func (r *personelRepo) Reactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Personel{}).Where("id = ?", id).Update("aktif", true).Error
}
