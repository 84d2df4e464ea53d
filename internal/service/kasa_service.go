package service

import (
	"context"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
)

// KasaService is the cash ledger. Append and read only — corrections are
// new inverse entries, and trip totals are recomputed by summation on every
// read. That discipline is what makes concurrent writes safe without any
// read-modify-write cycle: an append needs only insert-level atomicity.
type KasaService interface {
	Kaydet(ctx context.Context, req dto.KaydetKasaRequest) (*dto.KasaHareketiResponse, error)
	SeferOzeti(ctx context.Context, seferID uint) (*dto.KasaOzetResponse, error)
	Listele(ctx context.Context, filter dto.KasaFilter) (*dto.KasaListResponse, error)
}

type kasaService struct {
	repo      repository.KasaRepository
	seferRepo repository.SeferRepository
}

func NewKasaService(repo repository.KasaRepository, seferRepo repository.SeferRepository) KasaService {
	return &kasaService{repo: repo, seferRepo: seferRepo}
}

func (s *kasaService) Kaydet(ctx context.Context, req dto.KaydetKasaRequest) (*dto.KasaHareketiResponse, error) {
	if req.Tur != model.KasaGelir && req.Tur != model.KasaGider {
		return nil, &ValidationError{Alan: "tur", Neden: "gelir veya gider olmali"}
	}
	// Zero quantity is a valid free entry (complimentary tea, waived fee);
	// only negative quantities are malformed.
	if req.Miktar.IsNegative() {
		return nil, &ValidationError{Alan: "miktar", Neden: "negatif olamaz"}
	}
	if req.BirimFiyat.IsNegative() {
		return nil, &ValidationError{Alan: "birim_fiyat", Neden: "negatif olamaz"}
	}
	if req.OdemeTuru != "" && !model.GecerliOdemeTuru(req.OdemeTuru) {
		return nil, &ValidationError{Alan: "odeme_turu", Neden: "gecersiz odeme turu: " + req.OdemeTuru}
	}
	if req.SeferID != nil {
		if _, err := s.seferRepo.FindByID(ctx, *req.SeferID); err != nil {
			return nil, &NotFoundError{Kaynak: "sefer", ID: *req.SeferID}
		}
	}

	// Tutar is fixed at write time; client-supplied totals are ignored.
	m := &model.KasaHareketi{
		SeferID:    req.SeferID,
		Tur:        req.Tur,
		Kategori:   req.Kategori,
		Aciklama:   req.Aciklama,
		Miktar:     req.Miktar,
		BirimFiyat: req.BirimFiyat,
		Tutar:      req.Miktar.Mul(req.BirimFiyat),
		OdemeTuru:  req.OdemeTuru,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return kasaToResponse(m), nil
}

func (s *kasaService) SeferOzeti(ctx context.Context, seferID uint) (*dto.KasaOzetResponse, error) {
	if _, err := s.seferRepo.FindByID(ctx, seferID); err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: seferID}
	}
	gelir, gider, err := s.repo.SumBySefer(ctx, seferID)
	if err != nil {
		return nil, err
	}
	return &dto.KasaOzetResponse{
		SeferID: seferID,
		Gelir:   gelir,
		Gider:   gider,
		Net:     gelir.Sub(gider),
	}, nil
}

func (s *kasaService) Listele(ctx context.Context, filter dto.KasaFilter) (*dto.KasaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	hareketler, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.KasaHareketiResponse, 0, len(hareketler))
	for i := range hareketler {
		items = append(items, *kasaToResponse(&hareketler[i]))
	}
	return &dto.KasaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func kasaToResponse(m *model.KasaHareketi) *dto.KasaHareketiResponse {
	return &dto.KasaHareketiResponse{
		ID:         m.ID,
		SeferID:    m.SeferID,
		Tur:        m.Tur,
		Kategori:   m.Kategori,
		Aciklama:   m.Aciklama,
		Miktar:     m.Miktar,
		BirimFiyat: m.BirimFiyat,
		Tutar:      m.Tutar,
		OdemeTuru:  m.OdemeTuru,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
}
