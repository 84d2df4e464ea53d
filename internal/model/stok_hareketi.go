package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock move types.
const (
	StokGiris    = "giris"    // restock — quantity stored positive
	StokSatis    = "satis"    // on-board sale — quantity stored negative
	StokDuzeltme = "duzeltme" // administrative adjustment — caller supplies the sign
)

// GecerliStokTuru reports whether s is a known stock move type.
func GecerliStokTuru(s string) bool {
	return s == StokGiris || s == StokSatis || s == StokDuzeltme
}

// StokHareketi is one immutable entry in the inventory ledger.
// Current stock of a product = SUM(miktar) over all its moves; no running
// counter is stored anywhere. Entries are never modified or deleted.
type StokHareketi struct {
	ID      uint   `gorm:"primaryKey"`
	UrunID  uint   `gorm:"index;not null"`
	SeferID *uint  `gorm:"index"` // nil for depot restocks
	Tur     string `gorm:"type:varchar(10);not null"`
	// Miktar is signed: giris > 0, satis < 0, duzeltme either way.
	Miktar       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BirimMaliyet decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	BirimFiyat   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Aciklama     string
	// OnayliEksi marks an approved correction that may drive computed stock
	// below zero. Plain moves obey the stock floor.
	OnayliEksi bool `gorm:"not null;default:false"`
	// IslemAnahtari deduplicates replayed on-board sales (client-supplied
	// UUID); nil for everything else.
	IslemAnahtari *string `gorm:"type:varchar(36);uniqueIndex"`
	CreatedAt     time.Time

	Urun *Urun `gorm:"foreignKey:UrunID"`
}

func (StokHareketi) TableName() string { return "stok_hareketleri" }
