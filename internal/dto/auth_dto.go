package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	KullaniciAdi string `json:"kullanici_adi" validate:"required"`
	Sifre        string `json:"sifre"         validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	ExpiresIn    int              `json:"expires_in"`
	Personel     PersonelResponse `json:"personel"`
}

// ─── Crew accounts ───────────────────────────────────────────────────────────

type OlusturPersonelRequest struct {
	KullaniciAdi string  `json:"kullanici_adi" validate:"required,min=3,max=60"`
	AdSoyad      string  `json:"ad_soyad"      validate:"required,min=2,max=120"`
	Eposta       *string `json:"eposta"        validate:"omitempty,email"`
	Sifre        string  `json:"sifre"         validate:"required,min=4"`
	Rol          string  `json:"rol"           validate:"required,oneof=hostes kaptan yonetici"`
}

type GuncellePersonelRequest struct {
	AdSoyad string  `json:"ad_soyad" validate:"omitempty,min=2,max=120"`
	Eposta  *string `json:"eposta"   validate:"omitempty,email"`
	Sifre   string  `json:"sifre"    validate:"omitempty,min=4"`
	Rol     string  `json:"rol"      validate:"omitempty,oneof=hostes kaptan yonetici"`
}

type PersonelResponse struct {
	ID           uint    `json:"id"`
	KullaniciAdi string  `json:"kullanici_adi"`
	AdSoyad      string  `json:"ad_soyad"`
	Eposta       *string `json:"eposta"`
	Rol          string  `json:"rol"`
	Aktif        bool    `json:"aktif"`
}
