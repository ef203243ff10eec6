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

type PaymentRepository interface {
	// Capture inserts the payment and confirms its booking in one
	// transaction. Returns ErrDuplicatePayment when the booking already
	// has a payment row.
	Capture(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, booking_id, user_id, amount, currency, card_last4, exp_month, exp_year, paid, created_at`

func (r *paymentRepository) Capture(ctx context.Context, payment *entity.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin payment transaction", zap.Error(err))
		return fmt.Errorf("begin payment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertPayment := `
		INSERT INTO payments (id, booking_id, user_id, amount, currency, card_last4, exp_month, exp_year, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err = tx.QueryRow(ctx, insertPayment,
		payment.ID,
		payment.BookingID,
		payment.UserID,
		payment.Amount,
		payment.Currency,
		payment.CardLast4,
		payment.ExpMonth,
		payment.ExpYear,
		payment.Paid,
	).Scan(&payment.CreatedAt)

	if isUniqueViolation(err) && uniqueConstraint(err) == "payments_booking_id_key" {
		return ErrDuplicatePayment
	}
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("insert payment: %w", err)
	}

	confirmBooking := `
		UPDATE bookings SET status = $2, payment_id = $3, updated_at = NOW()
		WHERE id = $1
	`

	_, err = tx.Exec(ctx, confirmBooking, payment.BookingID, entity.BookingStatusConfirmed, payment.ID)
	if err != nil {
		r.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("confirm booking %s: %w", payment.BookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit payment transaction", zap.Error(err))
		return fmt.Errorf("commit payment transaction: %w", err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`
	return r.findOne(ctx, query, bookingID)
}

func (r *paymentRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Payment, error) {
	var payment entity.Payment

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.CardLast4,
		&payment.ExpMonth,
		&payment.ExpYear,
		&payment.Paid,
		&payment.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err))
		return nil, fmt.Errorf("find payment: %w", err)
	}

	return &payment, nil
}
