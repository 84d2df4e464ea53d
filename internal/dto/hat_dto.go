package dto

import "github.com/shopspring/decimal"

// ─── Routes & fares ──────────────────────────────────────────────────────────

type OlusturHatRequest struct {
	Ad       string   `json:"ad"       validate:"required,min=2,max=120"`
	Duraklar []string `json:"duraklar" validate:"required,min=2,dive,required"`
}

type GuncelleHatRequest struct {
	Ad       *string  `json:"ad"       validate:"omitempty,min=2,max=120"`
	Duraklar []string `json:"duraklar" validate:"omitempty,min=2,dive,required"`
}

type HatResponse struct {
	ID       uint     `json:"id"`
	Ad       string   `json:"ad"`
	Duraklar []string `json:"duraklar"`
	Aktif    bool     `json:"aktif"`
}

type TarifeSatiri struct {
	Binis string          `json:"binis" validate:"required"`
	Inis  string          `json:"inis"  validate:"required"`
	Ucret decimal.Decimal `json:"ucret" validate:"min=0"`
}

// TarifeUpsertRequest replaces or adds fares for the given stop pairs.
type TarifeUpsertRequest struct {
	Satirlar []TarifeSatiri `json:"satirlar" validate:"required,min=1,dive"`
}

type UcretHesaplaResponse struct {
	Hat   string          `json:"hat"`
	Binis string          `json:"binis"`
	Inis  string          `json:"inis"`
	Ucret decimal.Decimal `json:"ucret"`
	// Yontem: "direct" when a fare for the exact pair exists, "summed" when
	// adjacent hops were added up, "same-stop" for a zero-distance quote.
	Yontem string `json:"yontem"`
}
