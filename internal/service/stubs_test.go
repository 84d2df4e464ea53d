package service_test

// In-memory repository stubs shared by the service tests. They mirror the
// gorm implementations closely enough for semantics: upserts replace rows,
// sums iterate, "record not found" is an error.

import (
	"context"
	"errors"
	"fmt"

	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/dto"
	"github.com/muammercerdin-star/Host-Hostes-Paneli/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = errors.New("record not found")

// ── SeferRepository ──────────────────────────────────────────────────────────

type stubSeferRepo struct {
	seferler map[uint]*model.Sefer
	nextID   uint
}

func newStubSeferRepo() *stubSeferRepo {
	return &stubSeferRepo{seferler: make(map[uint]*model.Sefer)}
}

func (r *stubSeferRepo) Create(_ context.Context, s *model.Sefer) error {
	r.nextID++
	s.ID = r.nextID
	r.seferler[s.ID] = s
	return nil
}

func (r *stubSeferRepo) FindByID(_ context.Context, id uint) (*model.Sefer, error) {
	s, ok := r.seferler[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubSeferRepo) List(_ context.Context, filter dto.SeferFilter) ([]model.Sefer, int64, error) {
	var result []model.Sefer
	for _, s := range r.seferler {
		if filter.Hat != "" && s.Hat != filter.Hat {
			continue
		}
		if filter.Baslangic != "" && s.Tarih < filter.Baslangic {
			continue
		}
		if filter.Bitis != "" && s.Tarih > filter.Bitis {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

// ── KoltukRepository ─────────────────────────────────────────────────────────

type stubKoltukRepo struct {
	rows   map[string]*model.Koltuk
	nextID uint
}

func newStubKoltukRepo() *stubKoltukRepo {
	return &stubKoltukRepo{rows: make(map[string]*model.Koltuk)}
}

func koltukKey(seferID uint, koltukNo int) string {
	return fmt.Sprintf("%d:%d", seferID, koltukNo)
}

func (r *stubKoltukRepo) Upsert(_ context.Context, k *model.Koltuk) error {
	key := koltukKey(k.SeferID, k.KoltukNo)
	if existing, ok := r.rows[key]; ok {
		existing.Durak = k.Durak
		existing.OdemeTuru = k.OdemeTuru
		existing.Ucret = k.Ucret
		k.ID = existing.ID
		return nil
	}
	r.nextID++
	k.ID = r.nextID
	kopya := *k
	r.rows[key] = &kopya
	return nil
}

func (r *stubKoltukRepo) Delete(_ context.Context, seferID uint, koltukNo int) error {
	delete(r.rows, koltukKey(seferID, koltukNo)) // no-op when vacant, like gorm
	return nil
}

func (r *stubKoltukRepo) ListBySefer(_ context.Context, seferID uint) ([]model.Koltuk, error) {
	var result []model.Koltuk
	for _, k := range r.rows {
		if k.SeferID == seferID {
			result = append(result, *k)
		}
	}
	return result, nil
}

func (r *stubKoltukRepo) ListBySeferIDs(_ context.Context, seferIDs []uint) ([]model.Koltuk, error) {
	istenen := make(map[uint]struct{}, len(seferIDs))
	for _, id := range seferIDs {
		istenen[id] = struct{}{}
	}
	var result []model.Koltuk
	for _, k := range r.rows {
		if _, ok := istenen[k.SeferID]; ok {
			result = append(result, *k)
		}
	}
	return result, nil
}

// ── KasaRepository ───────────────────────────────────────────────────────────

type stubKasaRepo struct {
	rows   []*model.KasaHareketi
	nextID uint
}

func newStubKasaRepo() *stubKasaRepo { return &stubKasaRepo{} }

func (r *stubKasaRepo) Create(_ context.Context, m *model.KasaHareketi) error {
	r.nextID++
	m.ID = r.nextID
	r.rows = append(r.rows, m)
	return nil
}

func (r *stubKasaRepo) CreateTx(_ *gorm.DB, m *model.KasaHareketi) error {
	return r.Create(context.Background(), m)
}

func (r *stubKasaRepo) List(_ context.Context, filter dto.KasaFilter) ([]model.KasaHareketi, int64, error) {
	var result []model.KasaHareketi
	for _, m := range r.rows {
		if filter.SeferID != nil && (m.SeferID == nil || *m.SeferID != *filter.SeferID) {
			continue
		}
		if filter.Tur != "" && m.Tur != filter.Tur {
			continue
		}
		if filter.Kategori != "" && m.Kategori != filter.Kategori {
			continue
		}
		result = append(result, *m)
	}
	return result, int64(len(result)), nil
}

func (r *stubKasaRepo) SumBySefer(_ context.Context, seferID uint) (decimal.Decimal, decimal.Decimal, error) {
	gelir, gider := decimal.Zero, decimal.Zero
	for _, m := range r.rows {
		if m.SeferID == nil || *m.SeferID != seferID {
			continue
		}
		switch m.Tur {
		case model.KasaGelir:
			gelir = gelir.Add(m.Tutar)
		case model.KasaGider:
			gider = gider.Add(m.Tutar)
		}
	}
	return gelir, gider, nil
}

// ── UrunRepository ───────────────────────────────────────────────────────────

type stubUrunRepo struct {
	urunler map[uint]*model.Urun
	nextID  uint
}

func newStubUrunRepo() *stubUrunRepo {
	return &stubUrunRepo{urunler: make(map[uint]*model.Urun)}
}

func (r *stubUrunRepo) Create(_ context.Context, u *model.Urun) error {
	r.nextID++
	u.ID = r.nextID
	r.urunler[u.ID] = u
	return nil
}

func (r *stubUrunRepo) FindByID(_ context.Context, id uint) (*model.Urun, error) {
	u, ok := r.urunler[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUrunRepo) FindByAd(_ context.Context, ad string) (*model.Urun, error) {
	for _, u := range r.urunler {
		if u.Ad == ad {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUrunRepo) List(_ context.Context, hepsi bool) ([]model.Urun, error) {
	var result []model.Urun
	for _, u := range r.urunler {
		if !hepsi && !u.Aktif {
			continue
		}
		result = append(result, *u)
	}
	return result, nil
}

func (r *stubUrunRepo) Update(_ context.Context, u *model.Urun) error {
	r.urunler[u.ID] = u
	return nil
}

func (r *stubUrunRepo) SoftDelete(_ context.Context, id uint) error {
	u, ok := r.urunler[id]
	if !ok {
		return errNotFound
	}
	u.Aktif = false
	return nil
}

func (r *stubUrunRepo) Reactivate(_ context.Context, id uint) error {
	u, ok := r.urunler[id]
	if !ok {
		return errNotFound
	}
	u.Aktif = true
	return nil
}

// ── StokHareketiRepository ───────────────────────────────────────────────────

type stubStokRepo struct {
	rows   []*model.StokHareketi
	nextID uint
}

func newStubStokRepo() *stubStokRepo { return &stubStokRepo{} }

func (r *stubStokRepo) Create(_ context.Context, m *model.StokHareketi) error {
	r.nextID++
	m.ID = r.nextID
	r.rows = append(r.rows, m)
	return nil
}

func (r *stubStokRepo) CreateTx(_ *gorm.DB, m *model.StokHareketi) error {
	return r.Create(context.Background(), m)
}

func (r *stubStokRepo) SumByUrun(_ context.Context, urunID uint) (decimal.Decimal, error) {
	toplam := decimal.Zero
	for _, m := range r.rows {
		if m.UrunID == urunID {
			toplam = toplam.Add(m.Miktar)
		}
	}
	return toplam, nil
}

func (r *stubStokRepo) SumByUrunTx(_ *gorm.DB, urunID uint) (decimal.Decimal, error) {
	return r.SumByUrun(context.Background(), urunID)
}

func (r *stubStokRepo) List(_ context.Context, filter dto.StokFilter) ([]model.StokHareketi, int64, error) {
	var result []model.StokHareketi
	for _, m := range r.rows {
		if filter.UrunID != nil && m.UrunID != *filter.UrunID {
			continue
		}
		if filter.SeferID != nil && (m.SeferID == nil || *m.SeferID != *filter.SeferID) {
			continue
		}
		if filter.Tur != "" && m.Tur != filter.Tur {
			continue
		}
		result = append(result, *m)
	}
	return result, int64(len(result)), nil
}

func (r *stubStokRepo) SatislarBySefer(_ context.Context, seferID uint) ([]model.StokHareketi, error) {
	var result []model.StokHareketi
	for _, m := range r.rows {
		if m.Tur == model.StokSatis && m.SeferID != nil && *m.SeferID == seferID {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (r *stubStokRepo) FindByIslemAnahtari(_ context.Context, anahtar string) (*model.StokHareketi, error) {
	for _, m := range r.rows {
		if m.IslemAnahtari != nil && *m.IslemAnahtari == anahtar {
			return m, nil
		}
	}
	return nil, errNotFound
}

func (r *stubStokRepo) DB() *gorm.DB { return nil } // unit test mode — no real tx

// ── HatRepository ────────────────────────────────────────────────────────────

type stubHatRepo struct {
	hatlar    map[uint]*model.Hat
	tarifeler []*model.Tarife
	nextID    uint
}

func newStubHatRepo() *stubHatRepo {
	return &stubHatRepo{hatlar: make(map[uint]*model.Hat)}
}

func (r *stubHatRepo) Create(_ context.Context, h *model.Hat) error {
	r.nextID++
	h.ID = r.nextID
	r.hatlar[h.ID] = h
	return nil
}

func (r *stubHatRepo) FindByID(_ context.Context, id uint) (*model.Hat, error) {
	h, ok := r.hatlar[id]
	if !ok {
		return nil, errNotFound
	}
	return h, nil
}

func (r *stubHatRepo) FindByAd(_ context.Context, ad string) (*model.Hat, error) {
	for _, h := range r.hatlar {
		if h.Ad == ad {
			return h, nil
		}
	}
	return nil, errNotFound
}

func (r *stubHatRepo) List(_ context.Context, hepsi bool) ([]model.Hat, error) {
	var result []model.Hat
	for _, h := range r.hatlar {
		if !hepsi && !h.Aktif {
			continue
		}
		result = append(result, *h)
	}
	return result, nil
}

func (r *stubHatRepo) Update(_ context.Context, h *model.Hat) error {
	r.hatlar[h.ID] = h
	return nil
}

func (r *stubHatRepo) SoftDelete(_ context.Context, id uint) error {
	h, ok := r.hatlar[id]
	if !ok {
		return errNotFound
	}
	h.Aktif = false
	return nil
}

func (r *stubHatRepo) UpsertTarife(_ context.Context, t *model.Tarife) error {
	for _, mevcut := range r.tarifeler {
		if mevcut.HatID == t.HatID && mevcut.Binis == t.Binis && mevcut.Inis == t.Inis {
			mevcut.Ucret = t.Ucret
			return nil
		}
	}
	kopya := *t
	r.tarifeler = append(r.tarifeler, &kopya)
	return nil
}

func (r *stubHatRepo) ListTarife(_ context.Context, hatID uint) ([]model.Tarife, error) {
	var result []model.Tarife
	for _, t := range r.tarifeler {
		if t.HatID == hatID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *stubHatRepo) FindTarife(_ context.Context, hatID uint, binis, inis string) (*model.Tarife, error) {
	for _, t := range r.tarifeler {
		if t.HatID == hatID && t.Binis == binis && t.Inis == inis {
			return t, nil
		}
	}
	return nil, errNotFound
}

// ── NotRepository ────────────────────────────────────────────────────────────

type stubNotRepo struct {
	rows   []*model.SeferNotu
	nextID uint
}

func newStubNotRepo() *stubNotRepo { return &stubNotRepo{} }

func (r *stubNotRepo) Create(_ context.Context, n *model.SeferNotu) error {
	r.nextID++
	n.ID = r.nextID
	r.rows = append(r.rows, n)
	return nil
}

func (r *stubNotRepo) ListBySefer(_ context.Context, seferID uint) ([]model.SeferNotu, error) {
	var result []model.SeferNotu
	for _, n := range r.rows {
		if n.SeferID == seferID {
			result = append(result, *n)
		}
	}
	return result, nil
}

// ── PersonelRepository ───────────────────────────────────────────────────────

type stubPersonelRepo struct {
	personeller map[uint]*model.Personel
	nextID      uint
}

func newStubPersonelRepo() *stubPersonelRepo {
	return &stubPersonelRepo{personeller: make(map[uint]*model.Personel)}
}

func (r *stubPersonelRepo) Create(_ context.Context, p *model.Personel) error {
	r.nextID++
	p.ID = r.nextID
	r.personeller[p.ID] = p
	return nil
}

func (r *stubPersonelRepo) FindByID(_ context.Context, id uint) (*model.Personel, error) {
	p, ok := r.personeller[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubPersonelRepo) FindByKullaniciAdi(_ context.Context, kullaniciAdi string) (*model.Personel, error) {
	for _, p := range r.personeller {
		if p.KullaniciAdi == kullaniciAdi {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubPersonelRepo) List(_ context.Context, hepsi bool) ([]model.Personel, error) {
	var result []model.Personel
	for _, p := range r.personeller {
		if !hepsi && !p.Aktif {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubPersonelRepo) Update(_ context.Context, p *model.Personel) error {
	r.personeller[p.ID] = p
	return nil
}

func (r *stubPersonelRepo) SoftDelete(_ context.Context, id uint) error {
	p, ok := r.personeller[id]
	if !ok {
		return errNotFound
	}
	p.Aktif = false
	return nil
}

func (r *stubPersonelRepo) Reactivate(_ context.Context, id uint) error {
	p, ok := r.personeller[id]
	if !ok {
		return errNotFound
	}
	p.Aktif = true
	return nil
}
