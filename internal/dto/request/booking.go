package request

type PassengerRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Gender    string `json:"gender" validate:"required,oneof=male female"`
}

type CreateBookingRequest struct {
	FlightID   string             `json:"flight_id" validate:"required,uuid4"`
	CabinClass string             `json:"cabin_class" validate:"required,oneof=economy business"`
	Passengers []PassengerRequest `json:"passengers" validate:"required,min=1,max=9,dive"`
}

type PayBookingRequest struct {
	BookingID  string `json:"booking_id" validate:"required,uuid4"`
	CardNumber string `json:"card_number" validate:"required,min=12,max=19"`
	ExpMonth   int    `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear    int    `json:"exp_year" validate:"required,min=2000"`
	CVC        string `json:"cvc" validate:"required,min=3,max=4"` // accepted, never stored
}
