package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

const paymentColumns = `id, booking_id, provider_transaction_id, amount_paise, currency,
			  status, created_at, updated_at`

type PaymentRepository struct {
	db *dbpg.DB
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Complete records a successful payment and confirms its booking. Applying
// it again for the same transaction is reported as a duplicate and changes
// nothing.
func (r *PaymentRepository) Complete(ctx context.Context, txID string, now time.Time) (*domain.PaymentResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	p, err := lockPayment(ctx, tx, txID)
	if err != nil {
		return nil, err
	}

	res := &domain.PaymentResult{Payment: p}
	if p.BookingID != nil {
		res.BookingID = *p.BookingID
	}

	if p.Status == domain.PaymentStatusCompleted {
		res.Outcome = domain.PaymentOutcomeDuplicate
		return res, nil
	}

	if err = setPaymentStatus(ctx, tx, p, domain.PaymentStatusCompleted, now); err != nil {
		return nil, err
	}

	if p.BookingID == nil {
		res.Outcome = domain.PaymentOutcomeLate
		return res, commit(tx)
	}

	confirmQuery := `UPDATE bookings
			  SET status = $3, hold_expires_at = NULL, payment_due_at = NULL, updated_at = $4
			  WHERE id = $1 AND status = ANY($2)
			  RETURNING car_id, user_id`
	var carID, userID string
	err = tx.QueryRowContext(
		ctx, confirmQuery, *p.BookingID,
		pq.Array(domain.AwaitingPaymentStatuses), domain.BookingStatusConfirmed, now,
	).Scan(&carID, &userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// бронь уже подтверждена, истекла или отменена
			var status domain.BookingStatus
			statusQuery := `SELECT status FROM bookings WHERE id = $1`
			if scanErr := tx.QueryRowContext(ctx, statusQuery, *p.BookingID).Scan(&status); scanErr != nil {
				return nil, fmt.Errorf("check booking status: %w", scanErr)
			}
			res.Outcome = domain.PaymentOutcomeLate
			if status == domain.BookingStatusConfirmed {
				res.Outcome = domain.PaymentOutcomeDuplicate
			}
			return res, commit(tx)
		}
		return nil, fmt.Errorf("confirm booking: %w", err)
	}

	carQuery := `UPDATE cars SET availability_status = $3, updated_at = $4
			  WHERE id = $1 AND current_booking_id = $2`
	if _, err = tx.ExecContext(ctx, carQuery, carID, *p.BookingID, domain.CarStatusBooked, now); err != nil {
		return nil, fmt.Errorf("mark car booked: %w", err)
	}

	if err = appendAudit(ctx, tx, domain.AuditEntry{
		Action:   domain.AuditBookingConfirmed,
		ActorID:  domain.ActorSystem,
		TargetID: *p.BookingID,
		Metadata: map[string]any{
			"payment_id":              p.ID,
			"provider_transaction_id": p.ProviderTransactionID,
			"car_id":                  carID,
			"user_id":                 userID,
			"amount_paise":            p.AmountPaise,
		},
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	res.Outcome = domain.PaymentOutcomeConfirmed
	return res, commit(tx)
}

// Fail marks a pending payment as failed. The booking is left alone: a held
// booking keeps its expiry countdown.
func (r *PaymentRepository) Fail(ctx context.Context, txID string, now time.Time) (*domain.PaymentResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	p, err := lockPayment(ctx, tx, txID)
	if err != nil {
		return nil, err
	}

	res := &domain.PaymentResult{Payment: p}
	if p.BookingID != nil {
		res.BookingID = *p.BookingID
	}

	// completed никогда не откатываем
	if p.Status != domain.PaymentStatusPending {
		res.Outcome = domain.PaymentOutcomeDuplicate
		return res, nil
	}

	if err = setPaymentStatus(ctx, tx, p, domain.PaymentStatusFailed, now); err != nil {
		return nil, err
	}

	if err = appendAudit(ctx, tx, domain.AuditEntry{
		Action:   domain.AuditPaymentFailed,
		ActorID:  domain.ActorSystem,
		TargetID: p.ID,
		Metadata: map[string]any{
			"provider_transaction_id": p.ProviderTransactionID,
			"booking_id":              res.BookingID,
		},
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}

	res.Outcome = domain.PaymentOutcomeFailed
	return res, commit(tx)
}

func lockPayment(ctx context.Context, tx *sql.Tx, txID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE provider_transaction_id = $1
			  FOR UPDATE`
	p, err := scanPayment(tx.QueryRowContext(ctx, query, txID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("lock payment: %w", err)
	}
	return p, nil
}

func setPaymentStatus(ctx context.Context, tx *sql.Tx, p *domain.Payment, status domain.PaymentStatus, now time.Time) error {
	query := `UPDATE payments SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, p.ID, status, now); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	p.Status = status
	p.UpdatedAt = now
	return nil
}

func commit(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func scanPayment(s scanner) (*domain.Payment, error) {
	var p domain.Payment
	err := s.Scan(
		&p.ID, &p.BookingID, &p.ProviderTransactionID, &p.AmountPaise, &p.Currency,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
