package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CardLast4 string    `json:"card_last4"`
	ExpMonth  int       `json:"exp_month"`
	ExpYear   int       `json:"exp_year"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID.String(),
		BookingID: payment.BookingID.String(),
		Amount:    payment.Amount,
		Currency:  payment.Currency,
		CardLast4: payment.CardLast4,
		ExpMonth:  payment.ExpMonth,
		ExpYear:   payment.ExpYear,
		Paid:      payment.Paid,
		CreatedAt: payment.CreatedAt,
	}
}
