package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Urun is a product sold on board (tea, water, snacks).
// Products are deactivated, never deleted: historical stock moves must keep
// referencing a valid product. Price edits do not rewrite history — every
// stock move carries the unit cost/price in effect at write time.
type Urun struct {
	ID          uint            `gorm:"primaryKey"`
	Ad          string          `gorm:"uniqueIndex;not null"`
	Birim       string          `gorm:"not null;default:'adet'"`
	AlisFiyati  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SatisFiyati decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// KritikStok is the reorder threshold. A product AT the threshold counts
	// as low (<=, not <).
	KritikStok decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Aktif      bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Urun) TableName() string { return "urunler" }
