package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, flight_id, passengers, cabin_class, price_per_passenger,
       total_price, status, payment_id, pnr, email, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, flight_id, passengers, cabin_class, price_per_passenger,
		                      total_price, status, pnr, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	passengers, err := json.Marshal(booking.Passengers)
	if err != nil {
		return fmt.Errorf("marshal passengers: %w", err)
	}

	err = r.db.QueryRow(ctx, query,
		booking.ID,
		booking.UserID,
		booking.FlightID,
		passengers,
		booking.CabinClass,
		booking.PricePerPassenger,
		booking.TotalPrice,
		booking.Status,
		booking.PNR,
		booking.Email,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if isUniqueViolation(err) && uniqueConstraint(err) == "bookings_pnr_key" {
		return ErrDuplicatePNR
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *bookingRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND user_id = $2`
	return r.findOne(ctx, query, id, userID)
}

func (r *bookingRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Booking, error) {
	var booking entity.Booking
	var passengers []byte

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.FlightID,
		&passengers,
		&booking.CabinClass,
		&booking.PricePerPassenger,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentID,
		&booking.PNR,
		&booking.Email,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking", zap.Error(err))
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if err := json.Unmarshal(passengers, &booking.Passengers); err != nil {
		return nil, fmt.Errorf("unmarshal passengers: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to query bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("query bookings for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		var passengers []byte

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.FlightID,
			&passengers,
			&booking.CabinClass,
			&booking.PricePerPassenger,
			&booking.TotalPrice,
			&booking.Status,
			&booking.PaymentID,
			&booking.PNR,
			&booking.Email,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}

		if err := json.Unmarshal(passengers, &booking.Passengers); err != nil {
			return nil, fmt.Errorf("unmarshal passengers: %w", err)
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status: %w", id.String(), err)
	}

	return nil
}
