package service

import (
	"context"
	"fmt"
	"time"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const stokCacheTTL = 10 * time.Minute

// StokService is the inventory ledger. Current stock is always SUM(miktar)
// over a product's moves; the redis value is a cache invalidated on every
// write, never a source of truth. A satis move that would drive the sum
// below zero is rejected inside the same transaction that would append it.
type StokService interface {
	Hareket(ctx context.Context, req dto.StokHareketRequest) (*dto.StokHareketiResponse, error)
	MevcutStok(ctx context.Context, urunID uint) (decimal.Decimal, error)
	KritikStoklar(ctx context.Context) ([]dto.KritikUrunResponse, error)
	Hareketler(ctx context.Context, filter dto.StokFilter) (*dto.StokListResponse, error)
}

type stokService struct {
	repo        repository.StokHareketiRepository
	urunRepo    repository.UrunRepository
	seferRepo   repository.SeferRepository
	rdb         *redis.Client
	dispatcher  *worker.Dispatcher
	alertEposta string
}

// NewStokService wires the inventory ledger. rdb and dispatcher may be nil
// (unit test mode): caching and alerts are optimizations, not semantics.
func NewStokService(
	repo repository.StokHareketiRepository,
	urunRepo repository.UrunRepository,
	seferRepo repository.SeferRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
	alertEposta string,
) StokService {
	return &stokService{
		repo:        repo,
		urunRepo:    urunRepo,
		seferRepo:   seferRepo,
		rdb:         rdb,
		dispatcher:  dispatcher,
		alertEposta: alertEposta,
	}
}

func (s *stokService) Hareket(ctx context.Context, req dto.StokHareketRequest) (*dto.StokHareketiResponse, error) {
	if !model.GecerliStokTuru(req.Tur) {
		return nil, &ValidationError{Alan: "tur", Neden: "giris, satis veya duzeltme olmali"}
	}

	urun, err := s.urunRepo.FindByID(ctx, req.UrunID)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "urun", ID: req.UrunID}
	}
	// Retired products accept corrections only.
	if !urun.Aktif && req.Tur != model.StokDuzeltme {
		return nil, &ValidationError{Alan: "urun_id", Neden: "urun aktif degil"}
	}
	if req.SeferID != nil {
		if _, err := s.seferRepo.FindByID(ctx, *req.SeferID); err != nil {
			return nil, &NotFoundError{Kaynak: "sefer", ID: *req.SeferID}
		}
	}

	var imzali decimal.Decimal // signed quantity as stored
	switch req.Tur {
	case model.StokGiris:
		if req.Miktar.LessThanOrEqual(decimal.Zero) {
			return nil, &ValidationError{Alan: "miktar", Neden: "giris icin pozitif olmali"}
		}
		imzali = req.Miktar
	case model.StokSatis:
		if req.Miktar.LessThanOrEqual(decimal.Zero) {
			return nil, &ValidationError{Alan: "miktar", Neden: "satis icin pozitif olmali"}
		}
		imzali = req.Miktar.Neg()
	case model.StokDuzeltme:
		if req.Miktar.IsZero() {
			return nil, &ValidationError{Alan: "miktar", Neden: "duzeltme sifir olamaz"}
		}
		imzali = req.Miktar
	}

	// The override flag only means something on a correction; a satis can
	// never opt out of the floor.
	eksiyeIzin := req.Tur == model.StokDuzeltme && req.OnayliEksi

	unlock := urunKilitleri.Lock(urunAnahtari(req.UrunID))
	defer unlock()

	var (
		m       *model.StokHareketi
		oncesi  decimal.Decimal
		sonrasi decimal.Decimal
	)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		oncesi, err = s.sumTx(ctx, tx, req.UrunID)
		if err != nil {
			return err
		}
		sonrasi = oncesi.Add(imzali)
		if sonrasi.IsNegative() && !eksiyeIzin {
			return &InsufficientStockError{
				UrunID:  urun.ID,
				UrunAd:  urun.Ad,
				Eldeki:  oncesi,
				Istenen: imzali.Neg(),
			}
		}

		m = &model.StokHareketi{
			UrunID:       req.UrunID,
			SeferID:      req.SeferID,
			Tur:          req.Tur,
			Miktar:       imzali,
			BirimMaliyet: req.BirimMaliyet,
			BirimFiyat:   req.BirimFiyat,
			Aciklama:     req.Aciklama,
			OnayliEksi:   req.OnayliEksi,
		}
		return s.createTx(ctx, tx, m)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.cacheInvalidate(ctx, req.UrunID)
	s.kritikEsikKontrol(ctx, urun, oncesi, sonrasi)

	return stokToResponse(m, urun.Ad), nil
}

// MevcutStok serves from the per-product redis cache when possible and
// falls back to the summation query.
func (s *stokService) MevcutStok(ctx context.Context, urunID uint) (decimal.Decimal, error) {
	if _, err := s.urunRepo.FindByID(ctx, urunID); err != nil {
		return decimal.Zero, &NotFoundError{Kaynak: "urun", ID: urunID}
	}

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, stokCacheKey(urunID)).Result(); err == nil {
			if d, err := decimal.NewFromString(val); err == nil {
				return d, nil
			}
		}
	}

	toplam, err := s.repo.SumByUrun(ctx, urunID)
	if err != nil {
		return decimal.Zero, err
	}
	if s.rdb != nil {
		_ = s.rdb.Set(ctx, stokCacheKey(urunID), toplam.String(), stokCacheTTL).Err()
	}
	return toplam, nil
}

// KritikStoklar lists active products at or under their threshold.
// At-threshold counts as low: the comparison is <=, not <.
func (s *stokService) KritikStoklar(ctx context.Context) ([]dto.KritikUrunResponse, error) {
	urunler, err := s.urunRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	var kritik []dto.KritikUrunResponse
	for i := range urunler {
		u := &urunler[i]
		mevcut, err := s.repo.SumByUrun(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if mevcut.LessThanOrEqual(u.KritikStok) {
			kritik = append(kritik, dto.KritikUrunResponse{
				UrunResponse: *urunToResponse(u),
				MevcutStok:   mevcut,
			})
		}
	}
	return kritik, nil
}

func (s *stokService) Hareketler(ctx context.Context, filter dto.StokFilter) (*dto.StokListResponse, error) {
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
	items := make([]dto.StokHareketiResponse, 0, len(hareketler))
	for i := range hareketler {
		ad := ""
		if hareketler[i].Urun != nil {
			ad = hareketler[i].Urun.Ad
		}
		items = append(items, *stokToResponse(&hareketler[i], ad))
	}
	return &dto.StokListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// sumTx and createTx route through the ctx variants when no tx is live
// (unit test mode, runTx passes nil).
func (s *stokService) sumTx(ctx context.Context, tx *gorm.DB, urunID uint) (decimal.Decimal, error) {
	if tx == nil {
		return s.repo.SumByUrun(ctx, urunID)
	}
	return s.repo.SumByUrunTx(tx, urunID)
}

func (s *stokService) createTx(ctx context.Context, tx *gorm.DB, m *model.StokHareketi) error {
	if tx == nil {
		return s.repo.Create(ctx, m)
	}
	return s.repo.CreateTx(tx, m)
}

func (s *stokService) cacheInvalidate(ctx context.Context, urunID uint) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, stokCacheKey(urunID)).Err(); err != nil {
		log.Warn().Err(err).Uint("urun_id", urunID).Msg("stok cache invalidation failed")
	}
}

// kritikEsikKontrol enqueues a low-stock alert when this move crossed the
// threshold downward. Best-effort: a lost alert never fails the move.
func (s *stokService) kritikEsikKontrol(ctx context.Context, urun *model.Urun, oncesi, sonrasi decimal.Decimal) {
	if s.dispatcher == nil || s.alertEposta == "" {
		return
	}
	if oncesi.LessThanOrEqual(urun.KritikStok) || sonrasi.GreaterThan(urun.KritikStok) {
		return
	}
	payload := worker.EpostaJobPayload{
		Kime:  s.alertEposta,
		Konu:  fmt.Sprintf("Kritik stok: %s", urun.Ad),
		Govde: fmt.Sprintf("%s stogu %s %s seviyesine dustu (esik %s).", urun.Ad, sonrasi.String(), urun.Birim, urun.KritikStok.String()),
	}
	if err := s.dispatcher.EnqueueEposta(ctx, payload); err != nil {
		log.Warn().Err(err).Str("urun", urun.Ad).Msg("low-stock alert enqueue failed")
	}
}

func stokToResponse(m *model.StokHareketi, urunAd string) *dto.StokHareketiResponse {
	return &dto.StokHareketiResponse{
		ID:           m.ID,
		UrunID:       m.UrunID,
		UrunAd:       urunAd,
		SeferID:      m.SeferID,
		Tur:          m.Tur,
		Miktar:       m.Miktar,
		BirimMaliyet: m.BirimMaliyet,
		BirimFiyat:   m.BirimFiyat,
		Aciklama:     m.Aciklama,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}

func stokCacheKey(urunID uint) string { return fmt.Sprintf("stok:urun:%d", urunID) }
func urunAnahtari(urunID uint) string { return fmt.Sprintf("urun:%d", urunID) }
