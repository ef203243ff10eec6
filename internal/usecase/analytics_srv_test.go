package usecase

import (
	"context"
	"testing"

	"flight-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAnalyticsService_TopRoutes_DefaultAndCapLimit(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	service := NewAnalyticsService(mockFlightRepo, zap.NewNop())

	ctx := context.Background()
	stats := []*entity.RouteStats{
		{From: "Almaty", To: "Astana", FlightsCount: 12, AvgEconomy: 48000.50, AvgBusiness: 115000.25},
	}

	// Zero limit falls back to the default
	mockFlightRepo.On("TopRoutes", ctx, defaultTopRoutesLimit).Return(stats, nil).Once()
	resp, err := service.TopRoutes(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, int64(12), resp[0].FlightsCount)
	assert.Equal(t, 48000.50, resp[0].AvgEconomy)

	// Oversized limit is capped
	mockFlightRepo.On("TopRoutes", ctx, maxTopRoutesLimit).Return(stats, nil).Once()
	_, err = service.TopRoutes(ctx, 500)
	assert.NoError(t, err)

	mockFlightRepo.AssertExpectations(t)
}

func TestAnalyticsService_CarrierPricing(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	service := NewAnalyticsService(mockFlightRepo, zap.NewNop())

	ctx := context.Background()
	stats := []*entity.CarrierStats{
		{
			OperatedBy:   "Vizier Airways",
			FlightsCount: 8,
			AvgEconomy:   50000,
			AvgBusiness:  120000,
			PremiumGap:   70000,
		},
	}

	mockFlightRepo.On("CarrierPricing", ctx, 5).Return(stats, nil).Once()

	resp, err := service.CarrierPricing(ctx, 5)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, int64(8), resp[0].FlightsCount)
	assert.Equal(t, float64(70000), resp[0].PremiumGap)

	// Non-positive filter falls back to the default
	mockFlightRepo.On("CarrierPricing", ctx, defaultMinFlights).Return(stats, nil).Once()
	_, err = service.CarrierPricing(ctx, -3)
	assert.NoError(t, err)

	mockFlightRepo.AssertExpectations(t)
}
