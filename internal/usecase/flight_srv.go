package usecase

import (
	"context"
	"fmt"

	"flight-booking/internal/cache"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightService interface {
	ListFlights(ctx context.Context) ([]response.FlightResponse, error)
	SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]response.FlightResponse, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*response.FlightResponse, error)
}

type flightService struct {
	flightRepo repository.FlightRepository
	cache      *cache.FlightCache
	log        *zap.Logger
}

func NewFlightService(flightRepo repository.FlightRepository, flightCache *cache.FlightCache, log *zap.Logger) FlightService {
	return &flightService{
		flightRepo: flightRepo,
		cache:      flightCache,
		log:        log.With(zap.String("service", "flight")),
	}
}

func (s *flightService) ListFlights(ctx context.Context) ([]response.FlightResponse, error) {
	// Catalog is read-mostly, so the full listing is served from cache
	// when Redis is configured. Cache misses and cache errors both fall
	// through to the database.
	cached, err := s.cache.GetFlights(ctx)
	if err != nil {
		s.log.Warn("Flight cache read failed", zap.Error(err))
	}
	if len(cached) > 0 {
		return response.FlightsToResponse(cached), nil
	}

	flights, err := s.flightRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}
	if len(flights) == 0 {
		return nil, ErrNoFlights
	}

	if err := s.cache.SetFlights(ctx, flights); err != nil {
		s.log.Warn("Flight cache write failed", zap.Error(err))
	}

	return response.FlightsToResponse(flights), nil
}

func (s *flightService) SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search flights validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	flights, err := s.flightRepo.FindByRoute(ctx, req.From, req.To)
	if err != nil {
		s.log.Error("Failed to search flights",
			zap.Error(err),
			zap.String("from", req.From),
			zap.String("to", req.To),
		)
		return nil, fmt.Errorf("search flights: %w", err)
	}
	if len(flights) == 0 {
		return nil, ErrNoFlights
	}

	return response.FlightsToResponse(flights), nil
}

func (s *flightService) GetFlight(ctx context.Context, id uuid.UUID) (*response.FlightResponse, error) {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", id.String()))
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	resp := response.FlightToResponse(flight)
	return &resp, nil
}
