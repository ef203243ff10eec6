package repository

import (
	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	OTP     OTPRepository
	Flight  FlightRepository
	Booking BookingRepository
	Payment PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		OTP:     NewOTPRepository(db, log),
		Flight:  NewFlightRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
	}
}
