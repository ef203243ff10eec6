package wire

import (
	"flight-booking/internal/adaptor"
	"flight-booking/internal/data/repository"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAnalytics(
	r chi.Router,
	analyticsHandler *adaptor.AnalyticsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.Auth(config.JWT, repo.Session, log)
	admin := middleware.Admin(repo.User, log)

	// Pricing aggregations are an admin surface
	r.Route("/api/analytics", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)
		r.Get("/top-routes", analyticsHandler.TopRoutes)
		r.Get("/carriers", analyticsHandler.CarrierPricing)
	})
}
