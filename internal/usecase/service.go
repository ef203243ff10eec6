package usecase

import (
	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/email"
	"flight-booking/internal/kafka"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Flight    FlightService
	Booking   BookingService
	Analytics AnalyticsService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	flightCache *cache.FlightCache,
	producer *kafka.Producer,
	mailer *email.Sender,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, mailer, log),
		User:      NewUserService(repo.User, log),
		Flight:    NewFlightService(repo.Flight, flightCache, log),
		Booking:   NewBookingService(repo, config, producer, log),
		Analytics: NewAnalyticsService(repo.Flight, log),
	}
}
