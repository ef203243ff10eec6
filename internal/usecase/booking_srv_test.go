package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const validCardNumber = "4539148803436467"

func newTestFlight() *entity.Flight {
	return &entity.Flight{
		ID:            uuid.New(),
		From:          "Almaty",
		FromAirport:   "Almaty International Airport",
		To:            "Astana",
		ToAirport:     "Nursultan Nazarbayev International Airport",
		OperatedBy:    "Vizier Airways",
		FlightNumber:  "VZ101",
		AirplaneType:  "Airbus A320",
		DepartureTime: "08:00",
		ArrivalTime:   "09:45",
		Duration:      "1h 45m",
		Transfers:     0,
		EconomyPrice:  50000,
		BusinessPrice: 120000,
	}
}

func newBookingTestService(repo *repository.Repository) BookingService {
	return NewBookingService(repo, &utils.Config{}, nil, zap.NewNop())
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockFlightRepo := &MockFlightRepository{}
	mockUserRepo := &MockUserRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Flight:  mockFlightRepo,
		User:    mockUserRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	flight := newTestFlight()
	userID := uuid.New()
	user := &entity.User{
		Base:  entity.Base{ID: userID},
		Email: "passenger@example.com",
	}

	mockFlightRepo.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockUserRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

	req := &request.CreateBookingRequest{
		FlightID:   flight.ID.String(),
		CabinClass: "economy",
		Passengers: []request.PassengerRequest{
			{FirstName: "Aigerim", LastName: "Bekova", Gender: "female"},
			{FirstName: "Daniyar", LastName: "Bekov", Gender: "male"},
		},
	}

	resp, err := service.CreateBooking(ctx, userID, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, float64(50000), resp.PricePerPassenger)
	assert.Equal(t, float64(100000), resp.TotalPrice)
	assert.Len(t, resp.PNR, 6)
	assert.Equal(t, "passenger@example.com", resp.Email)
	assert.Nil(t, resp.PaymentID)

	mockFlightRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockBookingRepo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_BusinessFare(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockFlightRepo := &MockFlightRepository{}
	mockUserRepo := &MockUserRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Flight:  mockFlightRepo,
		User:    mockUserRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	flight := newTestFlight()
	userID := uuid.New()
	user := &entity.User{Base: entity.Base{ID: userID}, Email: "vip@example.com"}

	mockFlightRepo.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockUserRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

	req := &request.CreateBookingRequest{
		FlightID:   flight.ID.String(),
		CabinClass: "business",
		Passengers: []request.PassengerRequest{
			{FirstName: "Erlan", LastName: "Seitov", Gender: "male"},
		},
	}

	resp, err := service.CreateBooking(ctx, userID, req)

	assert.NoError(t, err)
	assert.Equal(t, float64(120000), resp.PricePerPassenger)
	assert.Equal(t, float64(120000), resp.TotalPrice)
}

func TestBookingService_CreateBooking_FlightNotFound(t *testing.T) {
	mockFlightRepo := &MockFlightRepository{}

	repo := &repository.Repository{Flight: mockFlightRepo}
	service := newBookingTestService(repo)

	ctx := context.Background()
	flightID := uuid.New()

	mockFlightRepo.On("FindByID", ctx, flightID).Return(nil, nil).Once()

	req := &request.CreateBookingRequest{
		FlightID:   flightID.String(),
		CabinClass: "economy",
		Passengers: []request.PassengerRequest{
			{FirstName: "Aigerim", LastName: "Bekova", Gender: "female"},
		},
	}

	resp, err := service.CreateBooking(ctx, uuid.New(), req)

	assert.ErrorIs(t, err, ErrFlightNotFound)
	assert.Nil(t, resp)
	mockFlightRepo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_PNRCollisionRetries(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockFlightRepo := &MockFlightRepository{}
	mockUserRepo := &MockUserRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Flight:  mockFlightRepo,
		User:    mockUserRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	flight := newTestFlight()
	userID := uuid.New()
	user := &entity.User{Base: entity.Base{ID: userID}, Email: "passenger@example.com"}

	mockFlightRepo.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockUserRepo.On("FindByID", ctx, userID).Return(user, nil).Once()
	// First insert collides on the locator, second one lands. The
	// sentinel arrives wrapped, as errors.Is must still match it.
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).
		Return(fmt.Errorf("create booking: %w", repository.ErrDuplicatePNR)).Once()
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Booking")).
		Return(nil).Once()

	req := &request.CreateBookingRequest{
		FlightID:   flight.ID.String(),
		CabinClass: "economy",
		Passengers: []request.PassengerRequest{
			{FirstName: "Aigerim", LastName: "Bekova", Gender: "female"},
		},
	}

	resp, err := service.CreateBooking(ctx, userID, req)

	assert.NoError(t, err)
	assert.Len(t, resp.PNR, 6)
	mockBookingRepo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service := newBookingTestService(&repository.Repository{})
	ctx := context.Background()

	testCases := []struct {
		name string
		req  *request.CreateBookingRequest
	}{
		{
			name: "no passengers",
			req: &request.CreateBookingRequest{
				FlightID:   uuid.New().String(),
				CabinClass: "economy",
				Passengers: []request.PassengerRequest{},
			},
		},
		{
			name: "bad cabin class",
			req: &request.CreateBookingRequest{
				FlightID:   uuid.New().String(),
				CabinClass: "first",
				Passengers: []request.PassengerRequest{
					{FirstName: "Aigerim", LastName: "Bekova", Gender: "female"},
				},
			},
		},
		{
			name: "bad gender",
			req: &request.CreateBookingRequest{
				FlightID:   uuid.New().String(),
				CabinClass: "economy",
				Passengers: []request.PassengerRequest{
					{FirstName: "Aigerim", LastName: "Bekova", Gender: "other"},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := service.CreateBooking(ctx, uuid.New(), tc.req)
			assert.Nil(t, resp)

			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestBookingService_CancelBooking_Pending(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}

	repo := &repository.Repository{Booking: mockBookingRepo}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	booking := &entity.Booking{
		Base:   entity.Base{ID: bookingID},
		UserID: userID,
		Status: entity.BookingStatusPending,
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()
	mockBookingRepo.On("UpdateStatus", ctx, bookingID, entity.BookingStatusCancelled).Return(nil).Once()

	err := service.CancelBooking(ctx, bookingID, userID)

	assert.NoError(t, err)
	mockBookingRepo.AssertExpectations(t)
}

func TestBookingService_CancelBooking_Confirmed(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}

	repo := &repository.Repository{Booking: mockBookingRepo}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	booking := &entity.Booking{
		Base:   entity.Base{ID: bookingID},
		UserID: userID,
		Status: entity.BookingStatusConfirmed,
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()

	err := service.CancelBooking(ctx, bookingID, userID)

	assert.ErrorIs(t, err, ErrBookingConfirmed)
	mockBookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CancelBooking_AlreadyCancelled(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}

	repo := &repository.Repository{Booking: mockBookingRepo}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	booking := &entity.Booking{
		Base:   entity.Base{ID: bookingID},
		UserID: userID,
		Status: entity.BookingStatusCancelled,
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()

	err := service.CancelBooking(ctx, bookingID, userID)

	assert.NoError(t, err)
	mockBookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CancelBooking_NotFound(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}

	repo := &repository.Repository{Booking: mockBookingRepo}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(nil, nil).Once()

	err := service.CancelBooking(ctx, bookingID, userID)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestBookingService_PayBooking_Success(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockPaymentRepo := &MockPaymentRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Payment: mockPaymentRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	booking := &entity.Booking{
		Base:       entity.Base{ID: bookingID},
		UserID:     userID,
		TotalPrice: 100000,
		Status:     entity.BookingStatusPending,
		PNR:        "A1B2C3",
		Email:      "passenger@example.com",
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()
	mockPaymentRepo.On("Capture", ctx, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.BookingID == bookingID &&
			p.UserID == userID &&
			p.Amount == 100000 &&
			p.Currency == entity.DefaultCurrency &&
			p.CardLast4 == "6467" &&
			p.Paid
	})).Return(nil).Once()

	req := &request.PayBookingRequest{
		BookingID:  bookingID.String(),
		CardNumber: validCardNumber,
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVC:        "123",
	}

	resp, err := service.PayBooking(ctx, userID, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, bookingID.String(), resp.BookingID)
	assert.Equal(t, "A1B2C3", resp.PNR)
	assert.NotEmpty(t, resp.PaymentID)

	mockBookingRepo.AssertExpectations(t)
	mockPaymentRepo.AssertExpectations(t)
}

func TestBookingService_PayBooking_InvalidCard(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockPaymentRepo := &MockPaymentRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Payment: mockPaymentRepo,
	}
	service := newBookingTestService(repo)

	req := &request.PayBookingRequest{
		BookingID:  uuid.New().String(),
		CardNumber: "4539148803436468",
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVC:        "123",
	}

	resp, err := service.PayBooking(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.Nil(t, resp)
	// Card fails before any lookup; booking stays untouched
	mockBookingRepo.AssertNotCalled(t, "FindByIDAndUser", mock.Anything, mock.Anything, mock.Anything)
	mockPaymentRepo.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything)
}

func TestBookingService_PayBooking_CardExpired(t *testing.T) {
	service := newBookingTestService(&repository.Repository{})

	req := &request.PayBookingRequest{
		BookingID:  uuid.New().String(),
		CardNumber: validCardNumber,
		ExpMonth:   1,
		ExpYear:    time.Now().Year() - 1,
		CVC:        "123",
	}

	resp, err := service.PayBooking(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, ErrCardExpired)
	assert.Nil(t, resp)
}

func TestBookingService_PayBooking_NotFound(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}

	repo := &repository.Repository{Booking: mockBookingRepo}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(nil, nil).Once()

	req := &request.PayBookingRequest{
		BookingID:  bookingID.String(),
		CardNumber: validCardNumber,
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVC:        "123",
	}

	resp, err := service.PayBooking(ctx, userID, req)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, resp)
}

func TestBookingService_PayBooking_AlreadyConfirmed(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockPaymentRepo := &MockPaymentRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Payment: mockPaymentRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	booking := &entity.Booking{
		Base:   entity.Base{ID: bookingID},
		UserID: userID,
		Status: entity.BookingStatusConfirmed,
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()

	req := &request.PayBookingRequest{
		BookingID:  bookingID.String(),
		CardNumber: validCardNumber,
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVC:        "123",
	}

	resp, err := service.PayBooking(ctx, userID, req)

	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Nil(t, resp)
	mockPaymentRepo.AssertNotCalled(t, "Capture", mock.Anything, mock.Anything)
}

func TestBookingService_PayBooking_DuplicatePayment(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockPaymentRepo := &MockPaymentRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Payment: mockPaymentRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	booking := &entity.Booking{
		Base:       entity.Base{ID: bookingID},
		UserID:     userID,
		TotalPrice: 100000,
		Status:     entity.BookingStatusPending,
		PNR:        "A1B2C3",
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()
	mockPaymentRepo.On("Capture", ctx, mock.AnythingOfType("*entity.Payment")).
		Return(fmt.Errorf("capture payment: %w", repository.ErrDuplicatePayment)).Once()

	req := &request.PayBookingRequest{
		BookingID:  bookingID.String(),
		CardNumber: validCardNumber,
		ExpMonth:   12,
		ExpYear:    time.Now().Year() + 2,
		CVC:        "123",
	}

	resp, err := service.PayBooking(ctx, userID, req)

	assert.ErrorIs(t, err, ErrDuplicatePayment)
	assert.Nil(t, resp)
}

func TestBookingService_MyBookings_PopulatesFlight(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockFlightRepo := &MockFlightRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Flight:  mockFlightRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	userID := uuid.New()
	flight := newTestFlight()
	bookings := []*entity.Booking{
		{Base: entity.Base{ID: uuid.New()}, UserID: userID, FlightID: flight.ID, Status: entity.BookingStatusConfirmed, PNR: "AAAAAA"},
		{Base: entity.Base{ID: uuid.New()}, UserID: userID, FlightID: flight.ID, Status: entity.BookingStatusPending, PNR: "BBBBBB"},
	}

	mockBookingRepo.On("FindByUserID", ctx, userID).Return(bookings, nil).Once()
	// Both bookings reference the same flight; it is loaded once.
	mockFlightRepo.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()

	resp, err := service.MyBookings(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "AAAAAA", resp[0].PNR)
	for _, item := range resp {
		assert.NotNil(t, item.Flight)
		assert.Equal(t, "VZ101", item.Flight.FlightNumber)
	}
	mockFlightRepo.AssertExpectations(t)
}

func TestBookingService_GetBooking_WithDetail(t *testing.T) {
	mockBookingRepo := &MockBookingRepository{}
	mockFlightRepo := &MockFlightRepository{}
	mockPaymentRepo := &MockPaymentRepository{}

	repo := &repository.Repository{
		Booking: mockBookingRepo,
		Flight:  mockFlightRepo,
		Payment: mockPaymentRepo,
	}
	service := newBookingTestService(repo)

	ctx := context.Background()
	flight := newTestFlight()
	bookingID := uuid.New()
	userID := uuid.New()
	paymentID := uuid.New()
	booking := &entity.Booking{
		Base:      entity.Base{ID: bookingID},
		UserID:    userID,
		FlightID:  flight.ID,
		Status:    entity.BookingStatusConfirmed,
		PaymentID: &paymentID,
		PNR:       "A1B2C3",
	}
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{ID: paymentID},
		BookingID:  bookingID,
		Amount:     100000,
		Currency:   entity.DefaultCurrency,
	}

	mockBookingRepo.On("FindByIDAndUser", ctx, bookingID, userID).Return(booking, nil).Once()
	mockFlightRepo.On("FindByID", ctx, flight.ID).Return(flight, nil).Once()
	mockPaymentRepo.On("FindByID", ctx, paymentID).Return(payment, nil).Once()

	resp, err := service.GetBooking(ctx, bookingID, userID)

	assert.NoError(t, err)
	assert.NotNil(t, resp.Flight)
	assert.Equal(t, "VZ101", resp.Flight.FlightNumber)
	assert.NotNil(t, resp.Payment)
	assert.Equal(t, float64(100000), resp.Payment.Amount)
}
