package dto

import "github.com/shopspring/decimal"

// ─── Product catalog ─────────────────────────────────────────────────────────

type OlusturUrunRequest struct {
	Ad          string          `json:"ad"           validate:"required,min=2,max=120"`
	Birim       string          `json:"birim"`
	AlisFiyati  decimal.Decimal `json:"alis_fiyati"  validate:"min=0"`
	SatisFiyati decimal.Decimal `json:"satis_fiyati" validate:"min=0"`
	KritikStok  decimal.Decimal `json:"kritik_stok"  validate:"min=0"`
}

type GuncelleUrunRequest struct {
	Ad          *string          `json:"ad"           validate:"omitempty,min=2,max=120"`
	Birim       *string          `json:"birim"`
	AlisFiyati  *decimal.Decimal `json:"alis_fiyati"`
	SatisFiyati *decimal.Decimal `json:"satis_fiyati"`
	KritikStok  *decimal.Decimal `json:"kritik_stok"`
}

type UrunResponse struct {
	ID          uint            `json:"id"`
	Ad          string          `json:"ad"`
	Birim       string          `json:"birim"`
	AlisFiyati  decimal.Decimal `json:"alis_fiyati"`
	SatisFiyati decimal.Decimal `json:"satis_fiyati"`
	KritikStok  decimal.Decimal `json:"kritik_stok"`
	Aktif       bool            `json:"aktif"`
}

// KritikUrunResponse is one low-stock row: a product at or under its
// threshold, with the computed on-hand quantity.
type KritikUrunResponse struct {
	UrunResponse
	MevcutStok decimal.Decimal `json:"mevcut_stok"`
}
