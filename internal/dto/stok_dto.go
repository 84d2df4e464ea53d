package dto

import "github.com/shopspring/decimal"

// ─── Inventory ledger ────────────────────────────────────────────────────────

type StokHareketRequest struct {
	UrunID  uint   `json:"urun_id"  validate:"required"`
	SeferID *uint  `json:"sefer_id"`
	Tur     string `json:"tur"      validate:"required,oneof=giris satis duzeltme"`
	// Miktar is positive for giris/satis; for duzeltme the caller supplies
	// the sign explicitly.
	Miktar       decimal.Decimal `json:"miktar"        validate:"required"`
	BirimMaliyet decimal.Decimal `json:"birim_maliyet"`
	BirimFiyat   decimal.Decimal `json:"birim_fiyat"`
	Aciklama     string          `json:"aciklama"`
	OnayliEksi   bool            `json:"onayli_eksi"`
}

type StokFilter struct {
	UrunID  *uint  `form:"urun_id"`
	SeferID *uint  `form:"sefer_id"`
	Tur     string `form:"tur"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type StokHareketiResponse struct {
	ID           uint            `json:"id"`
	UrunID       uint            `json:"urun_id"`
	UrunAd       string          `json:"urun_ad"`
	SeferID      *uint           `json:"sefer_id"`
	Tur          string          `json:"tur"`
	Miktar       decimal.Decimal `json:"miktar"`
	BirimMaliyet decimal.Decimal `json:"birim_maliyet"`
	BirimFiyat   decimal.Decimal `json:"birim_fiyat"`
	Aciklama     string          `json:"aciklama"`
	CreatedAt    string          `json:"created_at"`
}

type StokListResponse struct {
	Data  []StokHareketiResponse `json:"data"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
}

type MevcutStokResponse struct {
	UrunID     uint            `json:"urun_id"`
	MevcutStok decimal.Decimal `json:"mevcut_stok"`
}
