package service

import (
	"context"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/worker"

	"github.com/shopspring/decimal"
)

// raporSeferLimiti caps how many trips a seat-statistics window may span.
// A small operator runs a handful of departures per day; 500 covers more
// than a season.
const raporSeferLimiti = 500

// RaporService aggregates the ledgers and seat rows into the summaries the
// office reads. All numbers come from summation at request time; a report
// is just a wider read of the same append-only data.
type RaporService interface {
	SeferRaporu(ctx context.Context, seferID uint) (*dto.SeferRaporuResponse, error)
	KoltukIstatistik(ctx context.Context, filter dto.KoltukIstatistikFilter) (*dto.KoltukIstatistikResponse, error)
	PDFTalep(ctx context.Context, seferID uint, req dto.RaporPDFRequest) error
}

type raporService struct {
	seferRepo  repository.SeferRepository
	koltukRepo repository.KoltukRepository
	kasaRepo   repository.KasaRepository
	stokRepo   repository.StokHareketiRepository
	dispatcher *worker.Dispatcher
}

func NewRaporService(
	seferRepo repository.SeferRepository,
	koltukRepo repository.KoltukRepository,
	kasaRepo repository.KasaRepository,
	stokRepo repository.StokHareketiRepository,
	dispatcher *worker.Dispatcher,
) RaporService {
	return &raporService{
		seferRepo:  seferRepo,
		koltukRepo: koltukRepo,
		kasaRepo:   kasaRepo,
		stokRepo:   stokRepo,
		dispatcher: dispatcher,
	}
}

func (s *raporService) SeferRaporu(ctx context.Context, seferID uint) (*dto.SeferRaporuResponse, error) {
	sefer, err := s.seferRepo.FindByID(ctx, seferID)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: seferID}
	}

	koltuklar, err := s.koltukRepo.ListBySefer(ctx, seferID)
	if err != nil {
		return nil, err
	}
	koltukGeliri := decimal.Zero
	dagilim := make(map[string]decimal.Decimal)
	for _, k := range koltuklar {
		koltukGeliri = koltukGeliri.Add(k.Ucret)
		dagilim[k.OdemeTuru] = dagilim[k.OdemeTuru].Add(k.Ucret)
	}

	gelir, gider, err := s.kasaRepo.SumBySefer(ctx, seferID)
	if err != nil {
		return nil, err
	}

	satislar, err := s.stokRepo.SatislarBySefer(ctx, seferID)
	if err != nil {
		return nil, err
	}
	bufeAdet, bufeGeliri := decimal.Zero, decimal.Zero
	for _, m := range satislar {
		adet := m.Miktar.Neg() // satis rows are stored negative
		bufeAdet = bufeAdet.Add(adet)
		bufeGeliri = bufeGeliri.Add(adet.Mul(m.BirimFiyat))
	}

	return &dto.SeferRaporuResponse{
		Sefer:        *seferToResponse(sefer),
		DoluKoltuk:   len(koltuklar),
		KoltukGeliri: koltukGeliri,
		OdemeDagilim: dagilim,
		Kasa: dto.KasaOzetResponse{
			SeferID: seferID,
			Gelir:   gelir,
			Gider:   gider,
			Net:     gelir.Sub(gider),
		},
		BufeAdet:   bufeAdet,
		BufeGeliri: bufeGeliri,
	}, nil
}

// KoltukIstatistik answers "which seats earn and which never sell" over a
// date window, optionally narrowed to one route.
func (s *raporService) KoltukIstatistik(ctx context.Context, filter dto.KoltukIstatistikFilter) (*dto.KoltukIstatistikResponse, error) {
	seferler, _, err := s.seferRepo.List(ctx, dto.SeferFilter{
		Baslangic: filter.Baslangic,
		Bitis:     filter.Bitis,
		Hat:       filter.Hat,
		Page:      1,
		Limit:     raporSeferLimiti,
	})
	if err != nil {
		return nil, err
	}

	seferIDs := make([]uint, 0, len(seferler))
	for _, sf := range seferler {
		seferIDs = append(seferIDs, sf.ID)
	}
	koltuklar, err := s.koltukRepo.ListBySeferIDs(ctx, seferIDs)
	if err != nil {
		return nil, err
	}

	adetler := make(map[int]int)
	gelirler := make(map[int]decimal.Decimal)
	toplam := decimal.Zero
	for _, k := range koltuklar {
		adetler[k.KoltukNo]++
		gelirler[k.KoltukNo] = gelirler[k.KoltukNo].Add(k.Ucret)
		toplam = toplam.Add(k.Ucret)
	}

	var satirlar []dto.KoltukIstatistik
	var hicSatilmayan []int
	for _, no := range model.KoltukPlani {
		if adetler[no] == 0 {
			hicSatilmayan = append(hicSatilmayan, no)
			continue
		}
		satirlar = append(satirlar, dto.KoltukIstatistik{
			KoltukNo: no,
			Adet:     adetler[no],
			Gelir:    gelirler[no],
		})
	}

	return &dto.KoltukIstatistikResponse{
		Baslangic:     filter.Baslangic,
		Bitis:         filter.Bitis,
		Hat:           filter.Hat,
		SeferSayisi:   len(seferler),
		Koltuklar:     satirlar,
		HicSatilmayan: hicSatilmayan,
		ToplamGelir:   toplam,
	}, nil
}

// PDFTalep enqueues async rendering of the trip report.
func (s *raporService) PDFTalep(ctx context.Context, seferID uint, req dto.RaporPDFRequest) error {
	if _, err := s.seferRepo.FindByID(ctx, seferID); err != nil {
		return &NotFoundError{Kaynak: "sefer", ID: seferID}
	}
	return s.dispatcher.EnqueueRapor(ctx, worker.RaporJobPayload{
		SeferID: seferID,
		Eposta:  req.Eposta,
	})
}
