package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFlight(
	r chi.Router,
	flightHandler *adaptor.FlightHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Catalog is public; no auth required to browse flights
	r.Route("/api/flights", func(r chi.Router) {
		r.Get("/", flightHandler.ListFlights)
		r.Get("/search", flightHandler.SearchFlights)
		r.Get("/{id}", flightHandler.GetFlight)
	})
}
