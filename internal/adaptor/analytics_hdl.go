package adaptor

import (
	"net/http"

	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log,
	}
}

// TopRoutes handles GET /api/analytics/top-routes?limit=
func (h *AnalyticsHandler) TopRoutes(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 0)

	resp, err := h.service.TopRoutes(r.Context(), limit)
	if err != nil {
		handleServiceError(w, h.log, err, "aggregate top routes")
		return
	}

	utils.ResponseSuccess(w, "Top routes retrieved", resp)
}

// CarrierPricing handles GET /api/analytics/carriers?min_flights=
func (h *AnalyticsHandler) CarrierPricing(w http.ResponseWriter, r *http.Request) {
	minFlights := utils.ParseInt(r.URL.Query().Get("min_flights"), 0)

	resp, err := h.service.CarrierPricing(r.Context(), minFlights)
	if err != nil {
		handleServiceError(w, h.log, err, "aggregate carrier pricing")
		return
	}

	utils.ResponseSuccess(w, "Carrier pricing retrieved", resp)
}
