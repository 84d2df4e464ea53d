package service

import (
	"context"
	"strings"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
)

// NotService is the trip notes log. No invariants beyond the trip existing
// and the text being non-empty.
type NotService interface {
	Ekle(ctx context.Context, seferID uint, req dto.EkleNotRequest) (*dto.NotResponse, error)
	SeferNotlari(ctx context.Context, seferID uint) ([]dto.NotResponse, error)
}

type notService struct {
	repo      repository.NotRepository
	seferRepo repository.SeferRepository
}

func NewNotService(repo repository.NotRepository, seferRepo repository.SeferRepository) NotService {
	return &notService{repo: repo, seferRepo: seferRepo}
}

func (s *notService) Ekle(ctx context.Context, seferID uint, req dto.EkleNotRequest) (*dto.NotResponse, error) {
	if strings.TrimSpace(req.Metin) == "" {
		return nil, &ValidationError{Alan: "metin", Neden: "bos olamaz"}
	}
	if _, err := s.seferRepo.FindByID(ctx, seferID); err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: seferID}
	}

	n := &model.SeferNotu{
		SeferID:  seferID,
		Kategori: req.Kategori,
		Metin:    req.Metin,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return notToResponse(n), nil
}

func (s *notService) SeferNotlari(ctx context.Context, seferID uint) ([]dto.NotResponse, error) {
	if _, err := s.seferRepo.FindByID(ctx, seferID); err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: seferID}
	}
	notlar, err := s.repo.ListBySefer(ctx, seferID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NotResponse, 0, len(notlar))
	for i := range notlar {
		resp = append(resp, *notToResponse(&notlar[i]))
	}
	return resp, nil
}

func notToResponse(n *model.SeferNotu) *dto.NotResponse {
	return &dto.NotResponse{
		ID:        n.ID,
		SeferID:   n.SeferID,
		Kategori:  n.Kategori,
		Metin:     n.Metin,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
