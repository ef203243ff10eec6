package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT, repo.Session, log)

	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/me", bookingHandler.MyBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Patch("/{id}/cancel", bookingHandler.CancelBooking)
	})

	r.With(auth).Post("/api/payments/pay", bookingHandler.PayBooking)
}
