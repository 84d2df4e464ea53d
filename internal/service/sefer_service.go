package service

import (
	"context"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
)

// SeferService is the trip registry. Trips are created and read, never
// deleted: seat rows and both ledgers reference them by ID, and not exposing
// deletion at all is simpler than tracking referees.
type SeferService interface {
	Olustur(ctx context.Context, req dto.OlusturSeferRequest) (*dto.SeferResponse, error)
	Getir(ctx context.Context, id uint) (*dto.SeferResponse, error)
	Listele(ctx context.Context, filter dto.SeferFilter) (*dto.SeferListResponse, error)
}

type seferService struct {
	repo repository.SeferRepository
}

func NewSeferService(repo repository.SeferRepository) SeferService {
	return &seferService{repo: repo}
}

func (s *seferService) Olustur(ctx context.Context, req dto.OlusturSeferRequest) (*dto.SeferResponse, error) {
	sefer := &model.Sefer{
		Tarih:       req.Tarih,
		Hat:         req.Hat,
		KalkisSaati: req.KalkisSaati,
		VarisSaati:  req.VarisSaati,
		Plaka:       req.Plaka,
		Kaptan:      req.Kaptan,
		Kaptan2:     req.Kaptan2,
		Hostes:      req.Hostes,
		Aciklama:    req.Aciklama,
	}
	if err := s.repo.Create(ctx, sefer); err != nil {
		return nil, err
	}
	return seferToResponse(sefer), nil
}

func (s *seferService) Getir(ctx context.Context, id uint) (*dto.SeferResponse, error) {
	sefer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: id}
	}
	return seferToResponse(sefer), nil
}

func (s *seferService) Listele(ctx context.Context, filter dto.SeferFilter) (*dto.SeferListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	seferler, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SeferResponse, 0, len(seferler))
	for i := range seferler {
		items = append(items, *seferToResponse(&seferler[i]))
	}
	return &dto.SeferListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func seferToResponse(s *model.Sefer) *dto.SeferResponse {
	return &dto.SeferResponse{
		ID:          s.ID,
		Tarih:       s.Tarih,
		Hat:         s.Hat,
		KalkisSaati: s.KalkisSaati,
		VarisSaati:  s.VarisSaati,
		Plaka:       s.Plaka,
		Kaptan:      s.Kaptan,
		Kaptan2:     s.Kaptan2,
		Hostes:      s.Hostes,
		Aciklama:    s.Aciklama,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}
