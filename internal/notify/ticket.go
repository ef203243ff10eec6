package notify

import (
	"fmt"
	"strings"

	"flight-booking/internal/data/entity"
)

// TicketEvent is the message published to the notifications topic after
// a successful payment capture. The mail worker consumes it and sends
// the e-ticket; by the time it is published the payment is already
// durable, so delivery failures never touch booking state.
type TicketEvent struct {
	BookingID string `json:"booking_id"`
	PaymentID string `json:"payment_id"`
	PNR       string `json:"pnr"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func NewTicketEvent(booking *entity.Booking, flight *entity.Flight) TicketEvent {
	return TicketEvent{
		BookingID: booking.ID.String(),
		PNR:       booking.PNR,
		Email:     booking.Email,
		Subject:   fmt.Sprintf("Your E-Ticket (PNR: %s)", booking.PNR),
		Body:      BuildTicketText(booking, flight),
	}
}

// BuildTicketText formats the confirmation itinerary sent to the customer.
func BuildTicketText(booking *entity.Booking, flight *entity.Flight) string {
	names := make([]string, 0, len(booking.Passengers))
	for _, p := range booking.Passengers {
		names = append(names, p.FirstName+" "+p.LastName)
	}

	var b strings.Builder
	b.WriteString("E-Ticket / Booking Confirmed\n\n")
	fmt.Fprintf(&b, "PNR: %s\n\n", booking.PNR)
	b.WriteString("Flight details:\n")
	fmt.Fprintf(&b, "Route: %s -> %s\n", flight.FromAirport, flight.ToAirport)
	fmt.Fprintf(&b, "Flight: %s %s\n", flight.OperatedBy, flight.FlightNumber)
	fmt.Fprintf(&b, "Aircraft: %s\n", flight.AirplaneType)
	fmt.Fprintf(&b, "Departure: %s\n", flight.DepartureTime)
	fmt.Fprintf(&b, "Arrival: %s\n", flight.ArrivalTime)
	fmt.Fprintf(&b, "Duration: %s\n", flight.Duration)
	fmt.Fprintf(&b, "Transfers: %d\n\n", flight.Transfers)
	fmt.Fprintf(&b, "Cabin: %s\n", booking.CabinClass)
	fmt.Fprintf(&b, "Passengers: %s\n\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "Total paid: %.0f %s\n\n", booking.TotalPrice, entity.DefaultCurrency)
	b.WriteString("Seat selection is available at the airport during check-in.\n")
	b.WriteString("Thank you for choosing Vizier Airways!")

	return b.String()
}
