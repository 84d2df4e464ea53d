package model

import "time"

// Crew roles.
const (
	RolHostes   = "hostes"
	RolKaptan   = "kaptan"
	RolYonetici = "yonetici"
)

// Personel is a crew account with role-based access.
// Rol: "hostes" | "kaptan" | "yonetici"
type Personel struct {
	ID           uint   `gorm:"primaryKey"`
	KullaniciAdi string `gorm:"uniqueIndex;not null"`
	AdSoyad      string `gorm:"not null"`
	Eposta       *string
	SifreHash    string `gorm:"not null"`
	Rol          string `gorm:"type:varchar(16);not null"`
	Aktif        bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Personel) TableName() string { return "personeller" }
