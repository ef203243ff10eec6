package cache

import (
	"context"
	"encoding/json"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const flightsKey = "cache:flights"

// FlightCache keeps the full flight catalog in Redis. A nil *FlightCache
// is a valid no-op cache, so callers never need to branch on whether
// Redis is configured.
type FlightCache struct {
	client     *redis.Client
	flightsTTL time.Duration
	log        *zap.Logger
}

func NewFlightCache(cfg utils.RedisConfig, log *zap.Logger) *FlightCache {
	if cfg.Addr == "" {
		return nil
	}

	return &FlightCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		flightsTTL: time.Duration(cfg.FlightsTTLHours) * time.Hour,
		log:        log.With(zap.String("component", "flight_cache")),
	}
}

func (c *FlightCache) GetFlights(ctx context.Context) ([]*entity.Flight, error) {
	if c == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []*entity.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *FlightCache) SetFlights(ctx context.Context, flights []*entity.Flight) error {
	if c == nil {
		return nil
	}

	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.flightsTTL).Err()
}

func (c *FlightCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, flightsKey).Err()
}

func (c *FlightCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
