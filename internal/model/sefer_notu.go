package model

import "time"

// SeferNotu is a free-text annotation on a trip.
type SeferNotu struct {
	ID        uint   `gorm:"primaryKey"`
	SeferID   uint   `gorm:"index;not null"`
	Kategori  string `gorm:"type:varchar(40)"`
	Metin     string `gorm:"not null"`
	CreatedAt time.Time
}

func (SeferNotu) TableName() string { return "sefer_notlari" }
