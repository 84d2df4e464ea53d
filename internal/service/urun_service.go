package service

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
)

// UrunService manages the on-board product catalog. Products are
// deactivated, never deleted, and price edits never rewrite ledger history.
type UrunService interface {
	Olustur(ctx context.Context, req dto.OlusturUrunRequest) (*dto.UrunResponse, error)
	Getir(ctx context.Context, id uint) (*dto.UrunResponse, error)
	Listele(ctx context.Context, hepsi bool) ([]dto.UrunResponse, error)
	Guncelle(ctx context.Context, id uint, req dto.GuncelleUrunRequest) (*dto.UrunResponse, error)
	Deaktive(ctx context.Context, id uint) error
	Reaktive(ctx context.Context, id uint) error
}

type urunService struct {
	repo repository.UrunRepository
}

func NewUrunService(repo repository.UrunRepository) UrunService {
	return &urunService{repo: repo}
}

func (s *urunService) Olustur(ctx context.Context, req dto.OlusturUrunRequest) (*dto.UrunResponse, error) {
	if req.AlisFiyati.IsNegative() {
		return nil, &ValidationError{Alan: "alis_fiyati", Neden: "negatif olamaz"}
	}
	if req.SatisFiyati.IsNegative() {
		return nil, &ValidationError{Alan: "satis_fiyati", Neden: "negatif olamaz"}
	}
	if req.KritikStok.IsNegative() {
		return nil, &ValidationError{Alan: "kritik_stok", Neden: "negatif olamaz"}
	}
	if existing, err := s.repo.FindByAd(ctx, req.Ad); err == nil && existing != nil {
		return nil, &ValidationError{Alan: "ad", Neden: "bu adla bir urun zaten var"}
	}

	birim := req.Birim
	if birim == "" {
		birim = "adet"
	}
	u := &model.Urun{
		Ad:          req.Ad,
		Birim:       birim,
		AlisFiyati:  req.AlisFiyati,
		SatisFiyati: req.SatisFiyati,
		KritikStok:  req.KritikStok,
		Aktif:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return urunToResponse(u), nil
}

func (s *urunService) Getir(ctx context.Context, id uint) (*dto.UrunResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "urun", ID: id}
	}
	return urunToResponse(u), nil
}

func (s *urunService) Listele(ctx context.Context, hepsi bool) ([]dto.UrunResponse, error) {
	urunler, err := s.repo.List(ctx, hepsi)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UrunResponse, 0, len(urunler))
	for i := range urunler {
		resp = append(resp, *urunToResponse(&urunler[i]))
	}
	return resp, nil
}

func (s *urunService) Guncelle(ctx context.Context, id uint, req dto.GuncelleUrunRequest) (*dto.UrunResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "urun", ID: id}
	}
	if req.Ad != nil && *req.Ad != u.Ad {
		if existing, err := s.repo.FindByAd(ctx, *req.Ad); err == nil && existing != nil {
			return nil, &ValidationError{Alan: "ad", Neden: "bu adla bir urun zaten var"}
		}
		u.Ad = *req.Ad
	}
	if req.Birim != nil {
		u.Birim = *req.Birim
	}
	if req.AlisFiyati != nil {
		if req.AlisFiyati.IsNegative() {
			return nil, &ValidationError{Alan: "alis_fiyati", Neden: "negatif olamaz"}
		}
		u.AlisFiyati = *req.AlisFiyati
	}
	if req.SatisFiyati != nil {
		if req.SatisFiyati.IsNegative() {
			return nil, &ValidationError{Alan: "satis_fiyati", Neden: "negatif olamaz"}
		}
		u.SatisFiyati = *req.SatisFiyati
	}
	if req.KritikStok != nil {
		if req.KritikStok.IsNegative() {
			return nil, &ValidationError{Alan: "kritik_stok", Neden: "negatif olamaz"}
		}
		u.KritikStok = *req.KritikStok
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return urunToResponse(u), nil
}

func (s *urunService) Deaktive(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Kaynak: "urun", ID: id}
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *urunService) Reaktive(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Kaynak: "urun", ID: id}
	}
	return s.repo.Reactivate(ctx, id)
}

func urunToResponse(u *model.Urun) *dto.UrunResponse {
	return &dto.UrunResponse{
		ID:          u.ID,
		Ad:          u.Ad,
		Birim:       u.Birim,
		AlisFiyati:  u.AlisFiyati,
		SatisFiyati: u.SatisFiyati,
		KritikStok:  u.KritikStok,
		Aktif:       u.Aktif,
	}
}
