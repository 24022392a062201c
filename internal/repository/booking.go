package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, car_id, user_id, start_at, end_at, status, pay_mode,
			  total_amount, hold_amount, currency, hold_expires_at, payment_due_at,
			  license_path, addons, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// CreateAtomic flips the car from available to held/booked and inserts the
// booking, its first payment and the audit entry in one transaction. The car
// update is a compare-and-swap on availability_status, so of any number of
// concurrent calls for one car exactly one commits.
func (r *BookingRepository) CreateAtomic(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	casQuery := `UPDATE cars
				 SET availability_status = $2, booked_by = $3, booked_at = $4,
				     current_booking_id = $5, updated_at = $4
				 WHERE id = $1 AND availability_status = $6
				 RETURNING currency`
	var currency string
	err = tx.QueryRowContext(
		ctx, casQuery, b.CarID, b.CarStatus(), b.UserID,
		b.CreatedAt, b.ID, domain.CarStatusAvailable,
	).Scan(&currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Определяем причину: машины нет или она уже занята
			var exists bool
			existsQuery := `SELECT EXISTS (SELECT 1 FROM cars WHERE id = $1)`
			if scanErr := tx.QueryRowContext(ctx, existsQuery, b.CarID).Scan(&exists); scanErr != nil {
				return fmt.Errorf("check car: %w", scanErr)
			}
			if !exists {
				return domain.ErrCarNotFound
			}
			return domain.ErrCarAlreadyBooked
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case foreignKeyViolation:
				return domain.ErrUserNotFound
			case invalidTextRepresentation:
				return fmt.Errorf("%w: malformed car or user id", domain.ErrValidation)
			}
		}
		return fmt.Errorf("reserve car: %w", err)
	}
	b.Currency = currency
	p.Currency = currency

	addons, err := json.Marshal(b.Addons)
	if err != nil {
		return fmt.Errorf("marshal addons: %w", err)
	}

	bookingQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = tx.ExecContext(
		ctx, bookingQuery,
		b.ID, b.CarID, b.UserID, b.StartAt, b.EndAt, b.Status, b.PayMode,
		b.TotalAmount, b.HoldAmount, b.Currency, b.HoldExpiresAt, b.PaymentDueAt,
		b.LicensePath, addons, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return domain.ErrCarAlreadyBooked
			case foreignKeyViolation:
				return domain.ErrUserNotFound
			}
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	paymentQuery := `INSERT INTO payments (id, booking_id, provider_transaction_id, amount_paise,
			  currency, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.ExecContext(
		ctx, paymentQuery,
		p.ID, p.BookingID, p.ProviderTransactionID, p.AmountPaise,
		p.Currency, p.Status, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	if err = appendAudit(ctx, tx, domain.AuditEntry{
		Action:   domain.AuditCarBooked,
		ActorID:  b.UserID,
		TargetID: b.CarID,
		Metadata: map[string]any{
			"booking_id":   b.ID,
			"payment_id":   p.ID,
			"status":       b.Status,
			"pay_mode":     b.PayMode,
			"total_amount": b.TotalAmount,
			"hold_amount":  b.HoldAmount,
		},
		CreatedAt: b.CreatedAt,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE user_id = $1
              ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// ListExpired returns held bookings past their hold window and full-payment
// bookings past their payment deadline.
func (r *BookingRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE (status = $1 AND hold_expires_at <= $3)
			     OR (status = $2 AND payment_due_at <= $3)
			  ORDER BY created_at
			  LIMIT $4`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusHeld, domain.BookingStatusPending, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list expired bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expired booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// Expire moves one overdue booking to expired and returns its car in the
// same transaction. It returns ErrBookingNotActive when the booking was
// confirmed, cancelled or already expired in the meantime.
func (r *BookingRepository) Expire(ctx context.Context, id string, now time.Time) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockBookingPayments(ctx, tx, id); err != nil {
		return nil, err
	}

	query := `UPDATE bookings
			  SET status = $4, hold_expires_at = NULL, payment_due_at = NULL, updated_at = $5
			  WHERE id = $1
			    AND ((status = $2 AND hold_expires_at <= $5)
			      OR (status = $3 AND payment_due_at <= $5))
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusHeld, domain.BookingStatusPending,
		domain.BookingStatusExpired, now,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotActive
		}
		return nil, fmt.Errorf("expire booking: %w", err)
	}

	released, err := releaseCar(ctx, tx, b.CarID, b.ID)
	if err != nil {
		return nil, err
	}

	failed, err := failPendingPayments(ctx, tx, b.ID)
	if err != nil {
		return nil, err
	}

	if err = appendAudit(ctx, tx, domain.AuditEntry{
		Action:   domain.AuditCarReleased,
		ActorID:  domain.ActorSystem,
		TargetID: b.CarID,
		Metadata: map[string]any{
			"booking_id":      b.ID,
			"reason":          "expired",
			"pay_mode":        b.PayMode,
			"car_released":    released,
			"payments_failed": failed,
		},
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

// Cancel cancels an active booking and frees its car. An empty ownerID
// skips the ownership check (admin override).
func (r *BookingRepository) Cancel(
	ctx context.Context,
	id, ownerID, actorID string,
	action domain.AuditAction,
) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockBookingPayments(ctx, tx, id); err != nil {
		return nil, err
	}

	var userID string
	var status domain.BookingStatus
	lockQuery := `SELECT user_id, status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&userID, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	if ownerID != "" && ownerID != userID {
		return nil, domain.ErrBookingNotOwned
	}
	if status.Terminal() {
		return nil, domain.ErrBookingNotActive
	}

	query := `UPDATE bookings
			  SET status = $2, hold_expires_at = NULL, payment_due_at = NULL, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns
	b, err := scanBooking(tx.QueryRowContext(ctx, query, id, domain.BookingStatusCancelled))
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	released, err := releaseCar(ctx, tx, b.CarID, b.ID)
	if err != nil {
		return nil, err
	}

	if _, err = failPendingPayments(ctx, tx, b.ID); err != nil {
		return nil, err
	}

	if err = appendAudit(ctx, tx, domain.AuditEntry{
		Action:   action,
		ActorID:  actorID,
		TargetID: b.CarID,
		Metadata: map[string]any{
			"booking_id":      b.ID,
			"previous_status": status,
			"car_released":    released,
		},
	}); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	var addons []byte
	if err := s.Scan(
		&b.ID, &b.CarID, &b.UserID, &b.StartAt, &b.EndAt, &b.Status, &b.PayMode,
		&b.TotalAmount, &b.HoldAmount, &b.Currency, &b.HoldExpiresAt, &b.PaymentDueAt,
		&b.LicensePath, &addons, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(addons) > 0 {
		if err := json.Unmarshal(addons, &b.Addons); err != nil {
			return nil, fmt.Errorf("unmarshal addons: %w", err)
		}
	}
	return &b, nil
}
