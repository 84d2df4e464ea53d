package dto

import "github.com/shopspring/decimal"

// ─── Cash ledger ─────────────────────────────────────────────────────────────

type KaydetKasaRequest struct {
	SeferID    *uint           `json:"sefer_id"`
	Tur        string          `json:"tur"         validate:"required,oneof=gelir gider"`
	Kategori   string          `json:"kategori"    validate:"required,max=60"`
	Aciklama   string          `json:"aciklama"`
	Miktar     decimal.Decimal `json:"miktar"      validate:"min=0"`
	BirimFiyat decimal.Decimal `json:"birim_fiyat"`
	OdemeTuru  string          `json:"odeme_turu"`
}

type KasaFilter struct {
	SeferID   *uint  `form:"sefer_id"`
	Tur       string `form:"tur"`
	Kategori  string `form:"kategori"`
	Baslangic string `form:"baslangic"`
	Bitis     string `form:"bitis"`
	Page      int    `form:"page,default=1"    validate:"min=1"`
	Limit     int    `form:"limit,default=50"  validate:"min=1,max=200"`
}

type KasaHareketiResponse struct {
	ID         uint            `json:"id"`
	SeferID    *uint           `json:"sefer_id"`
	Tur        string          `json:"tur"`
	Kategori   string          `json:"kategori"`
	Aciklama   string          `json:"aciklama"`
	Miktar     decimal.Decimal `json:"miktar"`
	BirimFiyat decimal.Decimal `json:"birim_fiyat"`
	Tutar      decimal.Decimal `json:"tutar"`
	OdemeTuru  string          `json:"odeme_turu"`
	CreatedAt  string          `json:"created_at"`
}

type KasaListResponse struct {
	Data  []KasaHareketiResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

// KasaOzetResponse carries the summation totals for one trip.
// Net = Gelir − Gider; all three are recomputed on every read.
type KasaOzetResponse struct {
	SeferID uint            `json:"sefer_id"`
	Gelir   decimal.Decimal `json:"gelir"`
	Gider   decimal.Decimal `json:"gider"`
	Net     decimal.Decimal `json:"net"`
}
