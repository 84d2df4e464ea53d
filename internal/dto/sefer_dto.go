package dto

// ─── Trips ───────────────────────────────────────────────────────────────────

type OlusturSeferRequest struct {
	Tarih       string `json:"tarih"        validate:"required,datetime=2006-01-02"`
	Hat         string `json:"hat"          validate:"required"`
	KalkisSaati string `json:"kalkis_saati" validate:"required,datetime=15:04"`
	VarisSaati  string `json:"varis_saati"  validate:"omitempty,datetime=15:04"`
	Plaka       string `json:"plaka"`
	Kaptan      string `json:"kaptan"`
	Kaptan2     string `json:"kaptan2"`
	Hostes      string `json:"hostes"`
	Aciklama    string `json:"aciklama"`
}

type SeferFilter struct {
	Baslangic string `form:"baslangic"` // YYYY-MM-DD inclusive
	Bitis     string `form:"bitis"`     // YYYY-MM-DD inclusive
	Hat       string `form:"hat"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type SeferResponse struct {
	ID          uint   `json:"id"`
	Tarih       string `json:"tarih"`
	Hat         string `json:"hat"`
	KalkisSaati string `json:"kalkis_saati"`
	VarisSaati  string `json:"varis_saati"`
	Plaka       string `json:"plaka"`
	Kaptan      string `json:"kaptan"`
	Kaptan2     string `json:"kaptan2"`
	Hostes      string `json:"hostes"`
	Aciklama    string `json:"aciklama"`
	CreatedAt   string `json:"created_at"`
}

type SeferListResponse struct {
	Data  []SeferResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Notes ───────────────────────────────────────────────────────────────────

type EkleNotRequest struct {
	Kategori string `json:"kategori" validate:"omitempty,max=40"`
	Metin    string `json:"metin"    validate:"required"`
}

type NotResponse struct {
	ID        uint   `json:"id"`
	SeferID   uint   `json:"sefer_id"`
	Kategori  string `json:"kategori"`
	Metin     string `json:"metin"`
	CreatedAt string `json:"created_at"`
}
