package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/kafka"
	"flight-booking/internal/notify"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// pnrMaxAttempts bounds retries when a generated locator collides with
// an existing one. Collisions are rare at 6 base-36 characters.
const pnrMaxAttempts = 5

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	MyBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error)
	GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*response.BookingDetailResponse, error)
	CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error
	PayBooking(ctx context.Context, userID uuid.UUID, req *request.PayBookingRequest) (*response.PayBookingResponse, error)
}

type bookingService struct {
	repo     *repository.Repository // grouping booking, payment, flight & user repos
	config   *utils.Config
	producer *kafka.Producer
	log      *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	config *utils.Config,
	producer *kafka.Producer,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:     repo,
		config:   config,
		producer: producer,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID format %s: %w", req.FlightID, err)
	}

	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		s.log.Error("Failed to find flight", zap.Error(err), zap.String("flight_id", req.FlightID))
		return nil, fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	// Email is snapshotted onto the booking at creation and never
	// re-read, so later profile edits don't change where the ticket goes.
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	passengers := make([]entity.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, entity.Passenger{
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Gender:    entity.Gender(p.Gender),
		})
	}

	cabinClass := entity.CabinClass(req.CabinClass)
	fare := flight.FarePerPassenger(cabinClass)
	totalPrice := fare * float64(len(passengers))

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:            userID,
		FlightID:          flight.ID,
		Passengers:        passengers,
		CabinClass:        cabinClass,
		PricePerPassenger: fare,
		TotalPrice:        totalPrice,
		Status:            entity.BookingStatusPending,
		PNR:               utils.GeneratePNR(),
		Email:             user.Email,
	}

	// Retry with a fresh locator on PNR collision; the unique index is
	// the source of truth.
	for attempt := 1; ; attempt++ {
		err = s.repo.Booking.Create(ctx, booking)
		if !errors.Is(err, repository.ErrDuplicatePNR) {
			break
		}
		if attempt >= pnrMaxAttempts {
			s.log.Error("PNR collisions exhausted retries", zap.Int("attempts", attempt))
			return nil, fmt.Errorf("generate unique PNR: %w", err)
		}
		s.log.Warn("PNR collision, regenerating",
			zap.String("pnr", booking.PNR),
			zap.Int("attempt", attempt),
		)
		booking.PNR = utils.GeneratePNR()
	}
	if err != nil {
		s.log.Error("Failed to create booking", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("flight_id", flight.ID.String()),
		zap.String("pnr", booking.PNR),
		zap.Float64("total_price", totalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) MyBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingDetailResponse, error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	// Load each distinct flight once; a flight that fails to load just
	// leaves that item's detail empty.
	flights := make(map[uuid.UUID]*entity.Flight)
	for _, booking := range bookings {
		if _, ok := flights[booking.FlightID]; ok {
			continue
		}
		flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
		if err != nil {
			s.log.Warn("Failed to load flight for booking list",
				zap.Error(err), zap.String("flight_id", booking.FlightID.String()))
		}
		flights[booking.FlightID] = flight
	}

	result := make([]response.BookingDetailResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, response.BookingToDetailResponse(booking, flights[booking.FlightID], nil))
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*response.BookingDetailResponse, error) {
	booking, err := s.repo.Booking.FindByIDAndUser(ctx, bookingID, userID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	// Flight and payment are enrichment; a missing flight row just
	// leaves the detail empty.
	flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
	if err != nil {
		s.log.Warn("Failed to load flight for booking detail",
			zap.Error(err), zap.String("flight_id", booking.FlightID.String()))
	}

	var payment *entity.Payment
	if booking.PaymentID != nil {
		payment, err = s.repo.Payment.FindByID(ctx, *booking.PaymentID)
		if err != nil {
			s.log.Warn("Failed to load payment for booking detail",
				zap.Error(err), zap.String("payment_id", booking.PaymentID.String()))
		}
	}

	resp := response.BookingToDetailResponse(booking, flight, payment)
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByIDAndUser(ctx, bookingID, userID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	// Confirmed bookings go through a refund path, not this one.
	if booking.Status == entity.BookingStatusConfirmed {
		return ErrBookingConfirmed
	}

	// Cancelling an already-cancelled booking is a no-op.
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

func (s *bookingService) PayBooking(ctx context.Context, userID uuid.UUID, req *request.PayBookingRequest) (*response.PayBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Pay booking validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// Card checks run before any lookup so card problems are reported
	// even for bookings that don't exist.
	if !utils.IsValidLuhn(req.CardNumber) {
		return nil, ErrInvalidCard
	}
	if !utils.IsCardNotExpired(req.ExpMonth, req.ExpYear) {
		return nil, ErrCardExpired
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", req.BookingID, err)
	}

	booking, err := s.repo.Booking.FindByIDAndUser(ctx, bookingID, userID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status == entity.BookingStatusConfirmed {
		return nil, ErrAlreadyConfirmed
	}

	// Amount comes from the booking's stored total, never re-derived
	// from the flight.
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		BookingID: booking.ID,
		UserID:    userID,
		Amount:    booking.TotalPrice,
		Currency:  entity.DefaultCurrency,
		CardLast4: utils.CardLast4(req.CardNumber),
		ExpMonth:  req.ExpMonth,
		ExpYear:   req.ExpYear,
		Paid:      true,
	}

	// Capture inserts the payment and confirms the booking atomically;
	// the unique index on booking_id defends against concurrent
	// payments on the same booking.
	if err := s.repo.Payment.Capture(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, ErrDuplicatePayment
		}
		s.log.Error("Failed to capture payment", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("capture payment: %w", err)
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.PaymentID = &payment.ID

	s.log.Info("Payment captured",
		zap.String("booking_id", booking.ID.String()),
		zap.String("payment_id", payment.ID.String()),
		zap.String("pnr", booking.PNR),
		zap.Float64("amount", payment.Amount),
	)

	// Ticket delivery is best effort: payment state is durable by now
	// and a notification failure never rolls it back.
	go s.notifyTicket(booking, payment)

	return &response.PayBookingResponse{
		BookingID: booking.ID.String(),
		PaymentID: payment.ID.String(),
		PNR:       booking.PNR,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) notifyTicket(booking *entity.Booking, payment *entity.Payment) {
	if s.producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
	if err != nil || flight == nil {
		s.log.Warn("Skipping ticket notification, flight lookup failed",
			zap.Error(err), zap.String("flight_id", booking.FlightID.String()))
		return
	}

	event := notify.NewTicketEvent(booking, flight)
	event.PaymentID = payment.ID.String()

	err = s.producer.PublishWithRetry(ctx, s.config.Kafka.NotificationsTopic, booking.ID.String(), event, 3)
	if err != nil {
		s.log.Error("Failed to publish ticket notification",
			zap.Error(err), zap.String("booking_id", booking.ID.String()))
	}
}
