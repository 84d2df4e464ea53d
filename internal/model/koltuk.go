package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted for a seat. Closed set — anything else is a
// validation error, never silently normalized.
const (
	OdemeBiletli  = "ticketed"
	OdemeNakit    = "cash"
	OdemeHavale   = "wire-transfer"
	OdemeOnline   = "online"
	OdemeUcretsiz = "free"
)

// GecerliOdemeTuru reports whether s is one of the accepted payment methods.
func GecerliOdemeTuru(s string) bool {
	switch s {
	case OdemeBiletli, OdemeNakit, OdemeHavale, OdemeOnline, OdemeUcretsiz:
		return true
	}
	return false
}

// UcretGerekli reports whether the payment method requires a positive fare.
// Ticketed passengers paid elsewhere; free passengers pay nothing.
func UcretGerekli(odemeTuru string) bool {
	return odemeTuru != OdemeBiletli && odemeTuru != OdemeUcretsiz
}

// KoltukPlani is the 2+1 coach layout the panel renders. Seat numbers are
// not contiguous: the gaps are aisle-side singles that do not exist on
// this body type.
var KoltukPlani = []int{
	1, 3, 4, 5, 7, 8, 9, 11, 12, 13, 15, 16, 17, 19, 20, 21, 23, 24,
	25, 27, 28, 29, 31, 33, 34, 35, 37, 38, 39, 41, 42, 43, 45, 46,
	49, 50, 51, 52, 53, 54,
}

var koltukPlaniSet = func() map[int]struct{} {
	m := make(map[int]struct{}, len(KoltukPlani))
	for _, no := range KoltukPlani {
		m[no] = struct{}{}
	}
	return m
}()

// KoltukPlanindaVar reports whether no is a real seat on the vehicle plan.
func KoltukPlanindaVar(no int) bool {
	_, ok := koltukPlaniSet[no]
	return ok
}

// Koltuk is the one mutable record in the system: the current occupant of a
// seat on a trip. Assigning an occupied seat overwrites the row in place
// (last writer wins); clearing deletes it. Absence of a row means vacant.
type Koltuk struct {
	ID        uint            `gorm:"primaryKey"`
	SeferID   uint            `gorm:"uniqueIndex:idx_sefer_koltuk;not null"`
	KoltukNo  int             `gorm:"uniqueIndex:idx_sefer_koltuk;not null"`
	Durak     string          `gorm:"not null"` // disembarkation stop
	OdemeTuru string          `gorm:"type:varchar(16);not null"`
	Ucret     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Koltuk) TableName() string { return "koltuklar" }
