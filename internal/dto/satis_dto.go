package dto

import "github.com/shopspring/decimal"

// ─── On-board sale ───────────────────────────────────────────────────────────
// One sale = one satis stock move + one gelir cash entry, written atomically.

type SatisRequest struct {
	UrunID  uint            `json:"urun_id" validate:"required"`
	SeferID *uint           `json:"sefer_id"`
	Miktar  decimal.Decimal `json:"miktar"  validate:"required"`
	// IslemAnahtari is a client-supplied UUID; replaying the same key returns
	// the original result without double-recording.
	IslemAnahtari *string `json:"islem_anahtari" validate:"omitempty,uuid"`
}

type SatisResponse struct {
	StokHareketiID uint `json:"stok_hareketi_id"`
	// KasaHareketiID is only present on a freshly recorded sale. A replay
	// (Tekrar=true) cannot resolve the paired cash entry from the stock move
	// and omits the field.
	KasaHareketiID uint            `json:"kasa_hareketi_id,omitempty"`
	UrunID         uint            `json:"urun_id"`
	UrunAd         string          `json:"urun_ad"`
	Miktar         decimal.Decimal `json:"miktar"`
	BirimFiyat     decimal.Decimal `json:"birim_fiyat"`
	Tutar          decimal.Decimal `json:"tutar"`
	KalanStok      decimal.Decimal `json:"kalan_stok"`
	Tekrar         bool            `json:"tekrar"` // true when served from an idempotency replay
}
