package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Typed domain errors. Handlers map them to HTTP codes with errors.As:
// ValidationError → 422, NotFoundError → 404, InsufficientStockError → 409.
// Every rejection names enough detail for the panel to re-render the right
// prompt; nothing is swallowed.

// ValidationError reports invalid input, naming the offending field.
type ValidationError struct {
	Alan  string // field name as the client sent it
	Neden string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Alan, e.Neden)
}

// NotFoundError reports a reference to a nonexistent trip, product, route
// or crew account. Raised before any write.
type NotFoundError struct {
	Kaynak string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d bulunamadi", e.Kaynak, e.ID)
}

// InsufficientStockError reports a sale that would drive computed stock
// below zero. Distinct from ValidationError so the client can offer the
// approved-correction path instead of a generic message.
type InsufficientStockError struct {
	UrunID  uint
	UrunAd  string
	Eldeki  decimal.Decimal
	Istenen decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("yetersiz stok: %s (eldeki %s, istenen %s)",
		e.UrunAd, e.Eldeki.String(), e.Istenen.String())
}
