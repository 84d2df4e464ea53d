package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cash entry kinds.
const (
	KasaGelir = "gelir"
	KasaGider = "gider"
)

// KasaHareketi is one immutable entry in the cash ledger.
// Tur: "gelir" | "gider". Entries are NEVER modified or deleted —
// corrections create inverse entries, keeping the cash trail auditable.
// Trip totals are recomputed by SUM on read, never stored as a balance.
type KasaHareketi struct {
	ID      uint   `gorm:"primaryKey"`
	SeferID *uint  `gorm:"index"` // nil for depot-level entries (fuel at base, etc.)
	Tur     string `gorm:"type:varchar(10);not null"`
	// Kategori is free-form by design: "bilet", "yakit", "bufe", "ayakta", …
	Kategori   string `gorm:"index;not null"`
	Aciklama   string
	Miktar     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BirimFiyat decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Tutar = Miktar × BirimFiyat, computed server-side at write time and
	// never recomputed afterwards.
	Tutar     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	OdemeTuru string          `gorm:"type:varchar(16)"`
	CreatedAt time.Time
}

func (KasaHareketi) TableName() string { return "kasa_hareketleri" }
