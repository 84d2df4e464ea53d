package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hat is a route with its ordered stop list. Trips reference routes by name
// (free text), so a trip whose route is not in the catalog is still valid —
// it just loses stop validation and fare quoting.
type Hat struct {
	ID        uint     `gorm:"primaryKey"`
	Ad        string   `gorm:"uniqueIndex;not null"`
	Duraklar  []string `gorm:"serializer:json;not null"`
	Aktif     bool     `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tarifeler []Tarife `gorm:"foreignKey:HatID"`
}

func (Hat) TableName() string { return "hatlar" }

// Tarife is the fare for one boarding/alighting stop pair on a route.
// Quotes for pairs without a direct fare are summed over adjacent hops.
type Tarife struct {
	ID        uint            `gorm:"primaryKey"`
	HatID     uint            `gorm:"uniqueIndex:idx_hat_binis_inis;not null"`
	Binis     string          `gorm:"uniqueIndex:idx_hat_binis_inis;not null"`
	Inis      string          `gorm:"uniqueIndex:idx_hat_binis_inis;not null"`
	Ucret     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tarife) TableName() string { return "tarifeler" }
