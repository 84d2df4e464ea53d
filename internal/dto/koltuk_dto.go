package dto

import "github.com/shopspring/decimal"

// ─── Seat assignment ─────────────────────────────────────────────────────────
// The snapshot field names (stop / paymentMethod / fare) are part of the wire
// contract with the browser panel — do not rename.

type AtaKoltukRequest struct {
	Durak     string          `json:"stop"          validate:"required"`
	OdemeTuru string          `json:"paymentMethod" validate:"required"`
	Ucret     decimal.Decimal `json:"fare"`
}

// KoltukDurumu is one occupied seat in the snapshot.
type KoltukDurumu struct {
	Durak     string          `json:"stop"`
	OdemeTuru string          `json:"paymentMethod"`
	Ucret     decimal.Decimal `json:"fare"`
}

// KoltukHaritasi maps seat number (as a string, per the client contract) to
// its assignment. Vacant seats are simply absent.
type KoltukHaritasi map[string]KoltukDurumu
