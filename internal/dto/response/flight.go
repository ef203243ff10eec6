package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type FlightResponse struct {
	ID            string    `json:"id"`
	From          string    `json:"from"`
	FromAirport   string    `json:"from_airport"`
	To            string    `json:"to"`
	ToAirport     string    `json:"to_airport"`
	OperatedBy    string    `json:"operated_by"`
	FlightNumber  string    `json:"flight_number"`
	AirplaneType  string    `json:"airplane_type"`
	DepartureTime string    `json:"departure_time"`
	ArrivalTime   string    `json:"arrival_time"`
	Duration      string    `json:"duration"`
	Transfers     int       `json:"transfers"`
	EconomyPrice  float64   `json:"economy_price"`
	BusinessPrice float64   `json:"business_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// Helper converters
func FlightToResponse(flight *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:            flight.ID.String(),
		From:          flight.From,
		FromAirport:   flight.FromAirport,
		To:            flight.To,
		ToAirport:     flight.ToAirport,
		OperatedBy:    flight.OperatedBy,
		FlightNumber:  flight.FlightNumber,
		AirplaneType:  flight.AirplaneType,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Duration:      flight.Duration,
		Transfers:     flight.Transfers,
		EconomyPrice:  flight.EconomyPrice,
		BusinessPrice: flight.BusinessPrice,
		CreatedAt:     flight.CreatedAt,
	}
}

func FlightsToResponse(flights []*entity.Flight) []FlightResponse {
	result := make([]FlightResponse, 0, len(flights))
	for _, flight := range flights {
		result = append(result, FlightToResponse(flight))
	}
	return result
}
