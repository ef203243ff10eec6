package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type PassengerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
}

type BookingResponse struct {
	ID                string               `json:"id"`
	UserID            string               `json:"user_id"`
	FlightID          string               `json:"flight_id"`
	Passengers        []PassengerResponse  `json:"passengers"`
	CabinClass        entity.CabinClass    `json:"cabin_class"`
	PricePerPassenger float64              `json:"price_per_passenger"`
	TotalPrice        float64              `json:"total_price"`
	Status            entity.BookingStatus `json:"status"`
	PaymentID         *string              `json:"payment_id,omitempty"`
	PNR               string               `json:"pnr"`
	Email             string               `json:"email"`
	CreatedAt         time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Flight  *FlightResponse  `json:"flight,omitempty"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

type PayBookingResponse struct {
	BookingID string `json:"booking_id"`
	PaymentID string `json:"payment_id"`
	PNR       string `json:"pnr"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	passengers := make([]PassengerResponse, 0, len(booking.Passengers))
	for _, p := range booking.Passengers {
		passengers = append(passengers, PassengerResponse{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    string(p.Gender),
		})
	}

	resp := BookingResponse{
		ID:                booking.ID.String(),
		UserID:            booking.UserID.String(),
		FlightID:          booking.FlightID.String(),
		Passengers:        passengers,
		CabinClass:        booking.CabinClass,
		PricePerPassenger: booking.PricePerPassenger,
		TotalPrice:        booking.TotalPrice,
		Status:            booking.Status,
		PNR:               booking.PNR,
		Email:             booking.Email,
		CreatedAt:         booking.CreatedAt,
	}

	if booking.PaymentID != nil {
		paymentID := booking.PaymentID.String()
		resp.PaymentID = &paymentID
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, BookingToResponse(booking))
	}
	return result
}

func BookingToDetailResponse(booking *entity.Booking, flight *entity.Flight, payment *entity.Payment) BookingDetailResponse {
	resp := BookingDetailResponse{
		BookingResponse: BookingToResponse(booking),
	}

	if flight != nil {
		f := FlightToResponse(flight)
		resp.Flight = &f
	}
	if payment != nil {
		p := PaymentToResponse(payment)
		resp.Payment = &p
	}

	return resp
}
