package dto

import "github.com/shopspring/decimal"

// ─── Reports ─────────────────────────────────────────────────────────────────

// SeferRaporuResponse is the end-of-trip summary the office reads.
// Every number in it is recomputed by summation at request time.
type SeferRaporuResponse struct {
	Sefer        SeferResponse              `json:"sefer"`
	DoluKoltuk   int                        `json:"dolu_koltuk"`
	KoltukGeliri decimal.Decimal            `json:"koltuk_geliri"`
	OdemeDagilim map[string]decimal.Decimal `json:"odeme_dagilim"` // payment method → seat revenue
	Kasa         KasaOzetResponse           `json:"kasa"`
	BufeAdet     decimal.Decimal            `json:"bufe_adet"`   // units sold on board
	BufeGeliri   decimal.Decimal            `json:"bufe_geliri"` // on-board sale revenue
}

type KoltukIstatistikFilter struct {
	Baslangic string `form:"baslangic" validate:"required,datetime=2006-01-02"`
	Bitis     string `form:"bitis"     validate:"required,datetime=2006-01-02"`
	Hat       string `form:"hat"`
}

type KoltukIstatistik struct {
	KoltukNo int             `json:"koltuk_no"`
	Adet     int             `json:"adet"` // times sold in the window
	Gelir    decimal.Decimal `json:"gelir"`
}

type KoltukIstatistikResponse struct {
	Baslangic     string             `json:"baslangic"`
	Bitis         string             `json:"bitis"`
	Hat           string             `json:"hat,omitempty"`
	SeferSayisi   int                `json:"sefer_sayisi"`
	Koltuklar     []KoltukIstatistik `json:"koltuklar"`
	HicSatilmayan []int              `json:"hic_satilmayan"` // seats of the plan never sold in the window
	ToplamGelir   decimal.Decimal    `json:"toplam_gelir"`
}

// RaporPDFRequest enqueues async rendering of a trip report.
type RaporPDFRequest struct {
	Eposta *string `json:"eposta" validate:"omitempty,email"` // mail the PDF to the office when set
}
