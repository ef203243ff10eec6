package wire

import (
	"net/http"

	"flight-booking/internal/adaptor"
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/email"
	"flight-booking/internal/kafka"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/middleware"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services and handlers and mounts all routes.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	flightCache *cache.FlightCache,
	producer *kafka.Producer,
	mailer *email.Sender,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, flightCache, producer, mailer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireFlight(r, handler.Flight, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireAnalytics(r, handler.Analytics, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
