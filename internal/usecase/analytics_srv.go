package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/response"

	"go.uber.org/zap"
)

const (
	defaultTopRoutesLimit = 10
	maxTopRoutesLimit     = 50
	defaultMinFlights     = 1
)

type AnalyticsService interface {
	TopRoutes(ctx context.Context, limit int) ([]response.RouteStatsResponse, error)
	CarrierPricing(ctx context.Context, minFlights int) ([]response.CarrierStatsResponse, error)
}

type analyticsService struct {
	flightRepo repository.FlightRepository
	log        *zap.Logger
}

func NewAnalyticsService(flightRepo repository.FlightRepository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		flightRepo: flightRepo,
		log:        log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) TopRoutes(ctx context.Context, limit int) ([]response.RouteStatsResponse, error) {
	if limit <= 0 {
		limit = defaultTopRoutesLimit
	}
	if limit > maxTopRoutesLimit {
		limit = maxTopRoutesLimit
	}

	stats, err := s.flightRepo.TopRoutes(ctx, limit)
	if err != nil {
		s.log.Error("Failed to aggregate top routes", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("aggregate top routes: %w", err)
	}

	return response.RouteStatsToResponse(stats), nil
}

func (s *analyticsService) CarrierPricing(ctx context.Context, minFlights int) ([]response.CarrierStatsResponse, error) {
	if minFlights <= 0 {
		minFlights = defaultMinFlights
	}

	stats, err := s.flightRepo.CarrierPricing(ctx, minFlights)
	if err != nil {
		s.log.Error("Failed to aggregate carrier pricing", zap.Error(err), zap.Int("min_flights", minFlights))
		return nil, fmt.Errorf("aggregate carrier pricing: %w", err)
	}

	return response.CarrierStatsToResponse(stats), nil
}
