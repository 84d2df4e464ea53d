package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/repository"

	"github.com/shopspring/decimal"
)

// KoltukService is the seat assignment store. A seat is a two-state machine:
// vacant (no row) ⇄ occupied (one row). Ata on an occupied seat IS the edit
// operation — the upsert fully replaces the previous assignment, so there is
// no separate "book" vs "re-book" path and no residue from the old occupant.
type KoltukService interface {
	Ata(ctx context.Context, seferID uint, koltukNo int, req dto.AtaKoltukRequest) (*dto.KoltukDurumu, error)
	Bosalt(ctx context.Context, seferID uint, koltukNo int) error
	DoluKoltuklar(ctx context.Context, seferID uint) (dto.KoltukHaritasi, error)
}

type koltukService struct {
	repo      repository.KoltukRepository
	seferRepo repository.SeferRepository
	hatRepo   repository.HatRepository
	kilitler  *keyedMutex
}

func NewKoltukService(
	repo repository.KoltukRepository,
	seferRepo repository.SeferRepository,
	hatRepo repository.HatRepository,
) KoltukService {
	return &koltukService{
		repo:      repo,
		seferRepo: seferRepo,
		hatRepo:   hatRepo,
		kilitler:  newKeyedMutex(),
	}
}

// Ata validates and upserts the assignment for (sefer, koltuk). Writes to
// the same seat are serialized via a per-key lock; last write wins.
func (s *koltukService) Ata(ctx context.Context, seferID uint, koltukNo int, req dto.AtaKoltukRequest) (*dto.KoltukDurumu, error) {
	sefer, err := s.seferRepo.FindByID(ctx, seferID)
	if err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: seferID}
	}
	if !model.KoltukPlanindaVar(koltukNo) {
		return nil, &ValidationError{Alan: "seatNumber", Neden: fmt.Sprintf("koltuk %d planda yok", koltukNo)}
	}
	if req.Durak == "" {
		return nil, &ValidationError{Alan: "stop", Neden: "durak bos olamaz"}
	}
	if !model.GecerliOdemeTuru(req.OdemeTuru) {
		return nil, &ValidationError{Alan: "paymentMethod", Neden: "gecersiz odeme turu: " + req.OdemeTuru}
	}

	ucret := req.Ucret
	if model.UcretGerekli(req.OdemeTuru) {
		if ucret.LessThanOrEqual(decimal.Zero) {
			return nil, &ValidationError{Alan: "fare", Neden: "bu odeme turu icin ucret zorunlu"}
		}
	} else {
		// Ticketed/free seats carry no on-board fare regardless of input.
		ucret = decimal.Zero
	}

	// Stop whitelist applies only when the trip's route resolves in the
	// catalog; free-text routes accept any non-empty stop.
	if hat, err := s.hatRepo.FindByAd(ctx, sefer.Hat); err == nil && hat != nil {
		if !durakListesinde(hat.Duraklar, req.Durak) {
			return nil, &ValidationError{Alan: "stop", Neden: fmt.Sprintf("%q bu hattin duraklarinda yok", req.Durak)}
		}
	}

	unlock := s.kilitler.Lock(koltukAnahtari(seferID, koltukNo))
	defer unlock()

	k := &model.Koltuk{
		SeferID:   seferID,
		KoltukNo:  koltukNo,
		Durak:     req.Durak,
		OdemeTuru: req.OdemeTuru,
		Ucret:     ucret,
	}
	if err := s.repo.Upsert(ctx, k); err != nil {
		return nil, err
	}
	return &dto.KoltukDurumu{Durak: k.Durak, OdemeTuru: k.OdemeTuru, Ucret: k.Ucret}, nil
}

// Bosalt clears the seat. Clearing a vacant seat is a benign race with a
// colleague who got there first — a silent no-op, not an error.
func (s *koltukService) Bosalt(ctx context.Context, seferID uint, koltukNo int) error {
	if _, err := s.seferRepo.FindByID(ctx, seferID); err != nil {
		return &NotFoundError{Kaynak: "sefer", ID: seferID}
	}

	unlock := s.kilitler.Lock(koltukAnahtari(seferID, koltukNo))
	defer unlock()

	return s.repo.Delete(ctx, seferID, koltukNo)
}

// DoluKoltuklar returns the occupancy snapshot the panel rehydrates from.
// Reads take no lock: a single SELECT is already consistent.
func (s *koltukService) DoluKoltuklar(ctx context.Context, seferID uint) (dto.KoltukHaritasi, error) {
	if _, err := s.seferRepo.FindByID(ctx, seferID); err != nil {
		return nil, &NotFoundError{Kaynak: "sefer", ID: seferID}
	}

	koltuklar, err := s.repo.ListBySefer(ctx, seferID)
	if err != nil {
		return nil, err
	}

	harita := make(dto.KoltukHaritasi, len(koltuklar))
	for _, k := range koltuklar {
		harita[strconv.Itoa(k.KoltukNo)] = dto.KoltukDurumu{
			Durak:     k.Durak,
			OdemeTuru: k.OdemeTuru,
			Ucret:     k.Ucret,
		}
	}
	return harita, nil
}

func koltukAnahtari(seferID uint, koltukNo int) string {
	return fmt.Sprintf("%d:%d", seferID, koltukNo)
}

func durakListesinde(duraklar []string, durak string) bool {
	for _, d := range duraklar {
		if d == durak {
			return true
		}
	}
	return false
}
