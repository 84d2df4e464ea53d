package model

import "time"

// Sefer is one scheduled departure of a coach on a route.
// Rows are never hard-deleted: kasa entries, stock moves, notes and seat
// assignments all reference a sefer by ID and must keep resolving.
type Sefer struct {
	ID          uint   `gorm:"primaryKey"`
	Tarih       string `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD
	Hat         string `gorm:"index;not null"`                  // route name, free text
	KalkisSaati string `gorm:"type:varchar(5);not null"`        // HH:MM
	VarisSaati  string `gorm:"type:varchar(5)"`
	Plaka       string `gorm:"type:varchar(16)"`
	Kaptan      string
	Kaptan2     string
	Hostes      string
	Aciklama    string
	CreatedAt   time.Time
}

func (Sefer) TableName() string { return "seferler" }
