package adaptor

import (
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log,
	}
}

// ListFlights handles GET /api/flights
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListFlights(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list flights")
		return
	}

	utils.ResponseSuccess(w, "Flights retrieved", flights)
}

// SearchFlights handles GET /api/flights/search?from=&to=
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	req := request.SearchFlightsRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	flights, err := h.service.SearchFlights(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "Flights retrieved", flights)
}

// GetFlight handles GET /api/flights/{id}
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	flight, err := h.service.GetFlight(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get flight")
		return
	}

	utils.ResponseSuccess(w, "Flight retrieved", flight)
}
