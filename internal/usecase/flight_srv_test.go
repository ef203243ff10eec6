package usecase

import (
	"context"
	"testing"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFlightService_ListFlights(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	service := NewFlightService(mockFlightRepo, nil, zap.NewNop())

	ctx := context.Background()
	flights := []*entity.Flight{newTestFlight(), newTestFlight()}

	mockFlightRepo.On("FindAll", ctx).Return(flights, nil).Once()

	resp, err := service.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	mockFlightRepo.AssertExpectations(t)
}

func TestFlightService_ListFlights_Empty(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	service := NewFlightService(mockFlightRepo, nil, zap.NewNop())

	ctx := context.Background()

	mockFlightRepo.On("FindAll", ctx).Return([]*entity.Flight{}, nil).Once()

	resp, err := service.ListFlights(ctx)

	assert.ErrorIs(t, err, ErrNoFlights)
	assert.Nil(t, resp)
}

func TestFlightService_SearchFlights(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	service := NewFlightService(mockFlightRepo, nil, zap.NewNop())

	ctx := context.Background()
	flights := []*entity.Flight{newTestFlight()}

	mockFlightRepo.On("FindByRoute", ctx, "Almaty", "Astana").Return(flights, nil).Once()

	resp, err := service.SearchFlights(ctx, &request.SearchFlightsRequest{From: "Almaty", To: "Astana"})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "Almaty", resp[0].From)
}

func TestFlightService_GetFlight_NotFound(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}
	service := NewFlightService(mockFlightRepo, nil, zap.NewNop())

	ctx := context.Background()
	id := uuid.New()

	mockFlightRepo.On("FindByID", ctx, id).Return(nil, nil).Once()

	resp, err := service.GetFlight(ctx, id)

	assert.ErrorIs(t, err, ErrFlightNotFound)
	assert.Nil(t, resp)
}
