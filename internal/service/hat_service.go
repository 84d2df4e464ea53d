package service

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"

	"github.com/shopspring/decimal"
)

// HatService manages the route catalog and fare table. A quote for a stop
// pair uses the direct fare when one exists and otherwise sums the fares of
// adjacent hops between the two stops.
type HatService interface {
	Olustur(ctx context.Context, req dto.OlusturHatRequest) (*dto.HatResponse, error)
	Getir(ctx context.Context, id uint) (*dto.HatResponse, error)
	Listele(ctx context.Context, hepsi bool) ([]dto.HatResponse, error)
	Guncelle(ctx context.Context, id uint, req dto.GuncelleHatRequest) (*dto.HatResponse, error)
	Deaktive(ctx context.Context, id uint) error

	TarifeUpsert(ctx context.Context, hatID uint, req dto.TarifeUpsertRequest) ([]dto.TarifeSatiri, error)
	TarifeListele(ctx context.Context, hatID uint) ([]dto.TarifeSatiri, error)
	UcretHesapla(ctx context.Context, hatAd, binis, inis string) (*dto.UcretHesaplaResponse, error)
}

type hatService struct {
	repo repository.HatRepository
}

func NewHatService(repo repository.HatRepository) HatService {
	return &hatService{repo: repo}
}

func (s *hatService) Olustur(ctx context.Context, req dto.OlusturHatRequest) (*dto.HatResponse, error) {
	if err := duraklariDogrula(req.Duraklar); err != nil {
		return nil, err
	}
	if existing, err := s.repo.FindByAd(ctx, req.Ad); err == nil && existing != nil {
		return nil, &ValidationError{Alan: "ad", Neden: "bu adla bir hat zaten var"}
	}

	h := &model.Hat{Ad: req.Ad, Duraklar: req.Duraklar, Aktif: true}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return hatToResponse(h), nil
}

func (s *hatService) Getir(ctx context.Context, id uint) (*dto.HatResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "hat", ID: id}
	}
	return hatToResponse(h), nil
}

func (s *hatService) Listele(ctx context.Context, hepsi bool) ([]dto.HatResponse, error) {
	hatlar, err := s.repo.List(ctx, hepsi)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.HatResponse, 0, len(hatlar))
	for i := range hatlar {
		resp = append(resp, *hatToResponse(&hatlar[i]))
	}
	return resp, nil
}

func (s *hatService) Guncelle(ctx context.Context, id uint, req dto.GuncelleHatRequest) (*dto.HatResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "hat", ID: id}
	}
	if req.Ad != nil && *req.Ad != h.Ad {
		if existing, err := s.repo.FindByAd(ctx, *req.Ad); err == nil && existing != nil {
			return nil, &ValidationError{Alan: "ad", Neden: "bu adla bir hat zaten var"}
		}
		h.Ad = *req.Ad
	}
	if req.Duraklar != nil {
		if err := duraklariDogrula(req.Duraklar); err != nil {
			return nil, err
		}
		h.Duraklar = req.Duraklar
	}
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return hatToResponse(h), nil
}

func (s *hatService) Deaktive(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return &NotFoundError{Kaynak: "hat", ID: id}
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *hatService) TarifeUpsert(ctx context.Context, hatID uint, req dto.TarifeUpsertRequest) ([]dto.TarifeSatiri, error) {
	h, err := s.repo.FindByID(ctx, hatID)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "hat", ID: hatID}
	}

	for _, satir := range req.Satirlar {
		i, j := durakIndeksi(h.Duraklar, satir.Binis), durakIndeksi(h.Duraklar, satir.Inis)
		if i < 0 {
			return nil, &ValidationError{Alan: "binis", Neden: satir.Binis + " bu hattin duraklarinda yok"}
		}
		if j < 0 {
			return nil, &ValidationError{Alan: "inis", Neden: satir.Inis + " bu hattin duraklarinda yok"}
		}
		if i >= j {
			return nil, &ValidationError{Alan: "inis", Neden: "inis duragi binisten sonra olmali"}
		}
		if satir.Ucret.IsNegative() {
			return nil, &ValidationError{Alan: "ucret", Neden: "negatif olamaz"}
		}
	}

	for _, satir := range req.Satirlar {
		t := &model.Tarife{HatID: hatID, Binis: satir.Binis, Inis: satir.Inis, Ucret: satir.Ucret}
		if err := s.repo.UpsertTarife(ctx, t); err != nil {
			return nil, err
		}
	}
	return s.TarifeListele(ctx, hatID)
}

func (s *hatService) TarifeListele(ctx context.Context, hatID uint) ([]dto.TarifeSatiri, error) {
	if _, err := s.repo.FindByID(ctx, hatID); err != nil {
		return nil, &NotFoundError{Kaynak: "hat", ID: hatID}
	}
	tarifeler, err := s.repo.ListTarife(ctx, hatID)
	if err != nil {
		return nil, err
	}
	satirlar := make([]dto.TarifeSatiri, 0, len(tarifeler))
	for _, t := range tarifeler {
		satirlar = append(satirlar, dto.TarifeSatiri{Binis: t.Binis, Inis: t.Inis, Ucret: t.Ucret})
	}
	return satirlar, nil
}

// UcretHesapla quotes a fare: exact pair when priced, otherwise the sum of
// adjacent hops. A hop without a fare makes the whole quote fail — better
// no price than a partial one.
func (s *hatService) UcretHesapla(ctx context.Context, hatAd, binis, inis string) (*dto.UcretHesaplaResponse, error) {
	h, err := s.repo.FindByAd(ctx, hatAd)
	if err != nil {
		return nil, &ValidationError{Alan: "hat", Neden: "hat bulunamadi: " + hatAd}
	}

	i, j := durakIndeksi(h.Duraklar, binis), durakIndeksi(h.Duraklar, inis)
	if i < 0 {
		return nil, &ValidationError{Alan: "binis", Neden: binis + " bu hattin duraklarinda yok"}
	}
	if j < 0 {
		return nil, &ValidationError{Alan: "inis", Neden: inis + " bu hattin duraklarinda yok"}
	}
	if i == j {
		return &dto.UcretHesaplaResponse{Hat: hatAd, Binis: binis, Inis: inis, Ucret: decimal.Zero, Yontem: "same-stop"}, nil
	}
	if i > j {
		return nil, &ValidationError{Alan: "inis", Neden: "inis duragi binisten sonra olmali"}
	}

	if t, err := s.repo.FindTarife(ctx, h.ID, binis, inis); err == nil {
		return &dto.UcretHesaplaResponse{Hat: hatAd, Binis: binis, Inis: inis, Ucret: t.Ucret, Yontem: "direct"}, nil
	}

	toplam := decimal.Zero
	for k := i; k < j; k++ {
		t, err := s.repo.FindTarife(ctx, h.ID, h.Duraklar[k], h.Duraklar[k+1])
		if err != nil {
			return nil, &ValidationError{
				Alan:  "tarife",
				Neden: h.Duraklar[k] + " → " + h.Duraklar[k+1] + " icin ucret tanimli degil",
			}
		}
		toplam = toplam.Add(t.Ucret)
	}
	return &dto.UcretHesaplaResponse{Hat: hatAd, Binis: binis, Inis: inis, Ucret: toplam, Yontem: "summed"}, nil
}

func hatToResponse(h *model.Hat) *dto.HatResponse {
	return &dto.HatResponse{ID: h.ID, Ad: h.Ad, Duraklar: h.Duraklar, Aktif: h.Aktif}
}

func durakIndeksi(duraklar []string, durak string) int {
	for i, d := range duraklar {
		if d == durak {
			return i
		}
	}
	return -1
}

func duraklariDogrula(duraklar []string) error {
	gorulen := make(map[string]struct{}, len(duraklar))
	for _, d := range duraklar {
		if d == "" {
			return &ValidationError{Alan: "duraklar", Neden: "bos durak adi"}
		}
		if _, ok := gorulen[d]; ok {
			return &ValidationError{Alan: "duraklar", Neden: "tekrarlanan durak: " + d}
		}
		gorulen[d] = struct{}{}
	}
	return nil
}
