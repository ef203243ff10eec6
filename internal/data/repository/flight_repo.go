package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindAll(ctx context.Context) ([]*entity.Flight, error)
	FindByRoute(ctx context.Context, from, to string) ([]*entity.Flight, error)

	// Analytics queries
	TopRoutes(ctx context.Context, limit int) ([]*entity.RouteStats, error)
	CarrierPricing(ctx context.Context, minFlights int) ([]*entity.CarrierStats, error)
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, origin, origin_airport, destination, destination_airport, operated_by,
       flight_number, airplane_type, departure_time, arrival_time, duration, transfers,
       economy_price, business_price, created_at`

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	var flight entity.Flight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.From,
		&flight.FromAirport,
		&flight.To,
		&flight.ToAirport,
		&flight.OperatedBy,
		&flight.FlightNumber,
		&flight.AirplaneType,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.Duration,
		&flight.Transfers,
		&flight.EconomyPrice,
		&flight.BusinessPrice,
		&flight.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return &flight, nil
}

func (r *flightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights ORDER BY origin, destination, departure_time`
	return r.findMany(ctx, query)
}

func (r *flightRepository) FindByRoute(ctx context.Context, from, to string) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE origin = $1 AND destination = $2 ORDER BY departure_time`
	return r.findMany(ctx, query, from, to)
}

func (r *flightRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Flight, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query flights", zap.Error(err))
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		var flight entity.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.From,
			&flight.FromAirport,
			&flight.To,
			&flight.ToAirport,
			&flight.OperatedBy,
			&flight.FlightNumber,
			&flight.AirplaneType,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.Duration,
			&flight.Transfers,
			&flight.EconomyPrice,
			&flight.BusinessPrice,
			&flight.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) TopRoutes(ctx context.Context, limit int) ([]*entity.RouteStats, error) {
	query := `
		SELECT origin, destination,
		       COUNT(*) AS flights_count,
		       ROUND(AVG(economy_price)::numeric, 2)  AS avg_economy,
		       ROUND(AVG(business_price)::numeric, 2) AS avg_business,
		       MIN(economy_price) AS min_economy,
		       MAX(economy_price) AS max_economy
		FROM flights
		GROUP BY origin, destination
		ORDER BY flights_count DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query top routes", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("query top routes: %w", err)
	}
	defer rows.Close()

	var stats []*entity.RouteStats
	for rows.Next() {
		var s entity.RouteStats
		err := rows.Scan(
			&s.From,
			&s.To,
			&s.FlightsCount,
			&s.AvgEconomy,
			&s.AvgBusiness,
			&s.MinEconomy,
			&s.MaxEconomy,
		)
		if err != nil {
			r.log.Error("Failed to scan route stats row", zap.Error(err))
			return nil, fmt.Errorf("scan route stats row: %w", err)
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate route stats rows: %w", err)
	}

	return stats, nil
}

func (r *flightRepository) CarrierPricing(ctx context.Context, minFlights int) ([]*entity.CarrierStats, error) {
	query := `
		SELECT operated_by,
		       COUNT(*) AS flights_count,
		       ROUND(AVG(economy_price)::numeric, 2)  AS avg_economy,
		       ROUND(AVG(business_price)::numeric, 2) AS avg_business,
		       ROUND((AVG(business_price) - AVG(economy_price))::numeric, 2) AS premium_gap,
		       MIN(economy_price)  AS min_economy,
		       MAX(economy_price)  AS max_economy,
		       MIN(business_price) AS min_business,
		       MAX(business_price) AS max_business
		FROM flights
		GROUP BY operated_by
		HAVING COUNT(*) >= $1
		ORDER BY flights_count DESC, avg_economy ASC
	`

	rows, err := r.db.Query(ctx, query, minFlights)
	if err != nil {
		r.log.Error("Failed to query carrier pricing", zap.Error(err), zap.Int("min_flights", minFlights))
		return nil, fmt.Errorf("query carrier pricing: %w", err)
	}
	defer rows.Close()

	var stats []*entity.CarrierStats
	for rows.Next() {
		var s entity.CarrierStats
		err := rows.Scan(
			&s.OperatedBy,
			&s.FlightsCount,
			&s.AvgEconomy,
			&s.AvgBusiness,
			&s.PremiumGap,
			&s.MinEconomy,
			&s.MaxEconomy,
			&s.MinBusiness,
			&s.MaxBusiness,
		)
		if err != nil {
			r.log.Error("Failed to scan carrier stats row", zap.Error(err))
			return nil, fmt.Errorf("scan carrier stats row: %w", err)
		}
		stats = append(stats, &s)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate carrier stats rows: %w", err)
	}

	return stats, nil
}
