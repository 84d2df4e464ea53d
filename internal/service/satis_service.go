package service

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SatisService is the composed on-board sale: one satis stock move plus the
// matching gelir cash entry, written in a single transaction. A stock-floor
// rejection aborts both — there is no path to a half-completed sale where
// cash is recorded but stock is not decremented, or vice versa.
type SatisService interface {
	Sat(ctx context.Context, req dto.SatisRequest) (*dto.SatisResponse, error)
}

type satisService struct {
	stokRepo  repository.StokHareketiRepository
	kasaRepo  repository.KasaRepository
	urunRepo  repository.UrunRepository
	seferRepo repository.SeferRepository
}

func NewSatisService(
	stokRepo repository.StokHareketiRepository,
	kasaRepo repository.KasaRepository,
	urunRepo repository.UrunRepository,
	seferRepo repository.SeferRepository,
) SatisService {
	return &satisService{
		stokRepo:  stokRepo,
		kasaRepo:  kasaRepo,
		urunRepo:  urunRepo,
		seferRepo: seferRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available, or
// calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *satisService) Sat(ctx context.Context, req dto.SatisRequest) (*dto.SatisResponse, error) {
	urun, err := s.urunRepo.FindByID(ctx, req.UrunID)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "urun", ID: req.UrunID}
	}
	if !urun.Aktif {
		return nil, &ValidationError{Alan: "urun_id", Neden: "urun aktif degil"}
	}
	if req.Miktar.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Alan: "miktar", Neden: "pozitif olmali"}
	}
	if req.SeferID != nil {
		if _, err := s.seferRepo.FindByID(ctx, *req.SeferID); err != nil {
			return nil, &NotFoundError{Kaynak: "sefer", ID: *req.SeferID}
		}
	}

	unlock := urunKilitleri.Lock(urunAnahtari(req.UrunID))
	defer unlock()

	// Replayed sale (client retry after a dropped response): return the
	// original result, record nothing. The lookup sits inside the product
	// lock so two simultaneous retries with the same key serialize — the
	// second one finds the row the first wrote instead of tripping the
	// unique index.
	if req.IslemAnahtari != nil {
		if onceki, err := s.stokRepo.FindByIslemAnahtari(ctx, *req.IslemAnahtari); err == nil {
			return s.tekrarYaniti(ctx, onceki, urun)
		}
	}

	tutar := req.Miktar.Mul(urun.SatisFiyati)
	var (
		stokM *model.StokHareketi
		kasaM *model.KasaHareketi
		kalan decimal.Decimal
	)
	txErr := runTx(ctx, s.stokRepo.DB(), func(tx *gorm.DB) error {
		oncesi, err := s.sumTx(ctx, tx, req.UrunID)
		if err != nil {
			return err
		}
		kalan = oncesi.Sub(req.Miktar)
		if kalan.IsNegative() {
			return &InsufficientStockError{
				UrunID:  urun.ID,
				UrunAd:  urun.Ad,
				Eldeki:  oncesi,
				Istenen: req.Miktar,
			}
		}

		stokM = &model.StokHareketi{
			UrunID:        req.UrunID,
			SeferID:       req.SeferID,
			Tur:           model.StokSatis,
			Miktar:        req.Miktar.Neg(),
			BirimMaliyet:  urun.AlisFiyati,
			BirimFiyat:    urun.SatisFiyati,
			Aciklama:      "bufe satisi: " + urun.Ad,
			IslemAnahtari: req.IslemAnahtari,
		}
		if err := s.stokCreateTx(ctx, tx, stokM); err != nil {
			return err
		}

		kasaM = &model.KasaHareketi{
			SeferID:    req.SeferID,
			Tur:        model.KasaGelir,
			Kategori:   "bufe",
			Aciklama:   "bufe satisi: " + urun.Ad,
			Miktar:     req.Miktar,
			BirimFiyat: urun.SatisFiyati,
			Tutar:      tutar,
			OdemeTuru:  model.OdemeNakit,
		}
		return s.kasaCreateTx(ctx, tx, kasaM)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.SatisResponse{
		StokHareketiID: stokM.ID,
		KasaHareketiID: kasaM.ID,
		UrunID:         urun.ID,
		UrunAd:         urun.Ad,
		Miktar:         req.Miktar,
		BirimFiyat:     urun.SatisFiyati,
		Tutar:          tutar,
		KalanStok:      kalan,
	}, nil
}

// tekrarYaniti rebuilds the response for an already-recorded sale. The
// ledger rows are not linked to each other, so the paired cash entry cannot
// be recovered from the stock move alone: KasaHareketiID stays zero and is
// omitted from the JSON.
func (s *satisService) tekrarYaniti(ctx context.Context, m *model.StokHareketi, urun *model.Urun) (*dto.SatisResponse, error) {
	miktar := m.Miktar.Neg()
	mevcut, err := s.stokRepo.SumByUrun(ctx, m.UrunID)
	if err != nil {
		return nil, err
	}
	return &dto.SatisResponse{
		StokHareketiID: m.ID,
		UrunID:         m.UrunID,
		UrunAd:         urun.Ad,
		Miktar:         miktar,
		BirimFiyat:     m.BirimFiyat,
		Tutar:          miktar.Mul(m.BirimFiyat),
		KalanStok:      mevcut,
		Tekrar:         true,
	}, nil
}

func (s *satisService) sumTx(ctx context.Context, tx *gorm.DB, urunID uint) (decimal.Decimal, error) {
	if tx == nil {
		return s.stokRepo.SumByUrun(ctx, urunID)
	}
	return s.stokRepo.SumByUrunTx(tx, urunID)
}

func (s *satisService) stokCreateTx(ctx context.Context, tx *gorm.DB, m *model.StokHareketi) error {
	if tx == nil {
		return s.stokRepo.Create(ctx, m)
	}
	return s.stokRepo.CreateTx(tx, m)
}

func (s *satisService) kasaCreateTx(ctx context.Context, tx *gorm.DB, m *model.KasaHareketi) error {
	if tx == nil {
		return s.kasaRepo.Create(ctx, m)
	}
	return s.kasaRepo.CreateTx(tx, m)
}
