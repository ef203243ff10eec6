package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flight is immutable reference data owned by the catalog; the booking
// flow reads it but never mutates it.
type Flight struct {
	ID            uuid.UUID `db:"id"`
	From          string    `db:"origin"`
	FromAirport   string    `db:"origin_airport"`
	To            string    `db:"destination"`
	ToAirport     string    `db:"destination_airport"`
	OperatedBy    string    `db:"operated_by"`
	FlightNumber  string    `db:"flight_number"`
	AirplaneType  string    `db:"airplane_type"`
	DepartureTime string    `db:"departure_time"`
	ArrivalTime   string    `db:"arrival_time"`
	Duration      string    `db:"duration"`
	Transfers     int       `db:"transfers"`
	EconomyPrice  float64   `db:"economy_price"`
	BusinessPrice float64   `db:"business_price"`
	CreatedAt     time.Time `db:"created_at"`
}

// FarePerPassenger returns the per-passenger fare for a cabin class.
func (f *Flight) FarePerPassenger(class CabinClass) float64 {
	if class == CabinClassBusiness {
		return f.BusinessPrice
	}
	return f.EconomyPrice
}
