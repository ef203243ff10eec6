package entity

import (
	"github.com/google/uuid"
)

// DefaultCurrency is the only currency the reference fares are priced in.
const DefaultCurrency = "KZT"

// Payment records one successful capture. At most one payment exists
// per booking (unique index on booking_id) and a payment is never
// updated or deleted after creation.
type Payment struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	UserID    uuid.UUID `db:"user_id"`
	Amount    float64   `db:"amount"`
	Currency  string    `db:"currency"`
	CardLast4 string    `db:"card_last4"`
	ExpMonth  int       `db:"exp_month"`
	ExpYear   int       `db:"exp_year"`
	Paid      bool      `db:"paid"`
}
