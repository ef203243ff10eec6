package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type CabinClass string

const (
	CabinClassEconomy  CabinClass = "economy"
	CabinClassBusiness CabinClass = "business"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Passenger rows are stored inline on the booking as a JSON document.
type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    Gender `json:"gender"`
}

// Booking references its flight and payment by id; the flight catalog
// and payment store own those records. Price fields are fixed at
// creation and never recomputed. Email is a snapshot of the user's
// address at booking time.
type Booking struct {
	Base
	UserID            uuid.UUID     `db:"user_id"`
	FlightID          uuid.UUID     `db:"flight_id"`
	Passengers        []Passenger   `db:"passengers"`
	CabinClass        CabinClass    `db:"cabin_class"`
	PricePerPassenger float64       `db:"price_per_passenger"`
	TotalPrice        float64       `db:"total_price"`
	Status            BookingStatus `db:"status"`
	PaymentID         *uuid.UUID    `db:"payment_id"`
	PNR               string        `db:"pnr"`
	Email             string        `db:"email"`
}
