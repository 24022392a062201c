package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const (
	uniqueViolation           = "23505"
	foreignKeyViolation       = "23503"
	invalidTextRepresentation = "22P02"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// appendAudit writes the entry in the caller's transaction so it commits
// or rolls back together with the change it describes.
func appendAudit(ctx context.Context, tx *sql.Tx, e domain.AuditEntry) error {
	meta := e.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal audit metadata: %w", err)
	}

	query := `INSERT INTO audit_logs (action, actor_id, target_id, metadata, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if _, err = tx.ExecContext(ctx, query, e.Action, e.ActorID, e.TargetID, raw, createdAt); err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}

	return nil
}

// releaseCar returns the car to the pool only if the given booking still owns it.
func releaseCar(ctx context.Context, tx *sql.Tx, carID, bookingID string) (bool, error) {
	query := `UPDATE cars
			  SET availability_status = $3, booked_by = NULL, booked_at = NULL,
			      current_booking_id = NULL, updated_at = now()
			  WHERE id = $1 AND current_booking_id = $2`
	res, err := tx.ExecContext(ctx, query, carID, bookingID, domain.CarStatusAvailable)
	if err != nil {
		return false, fmt.Errorf("release car: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("release car rows affected: %w", err)
	}
	return rows > 0, nil
}

func failPendingPayments(ctx context.Context, tx *sql.Tx, bookingID string) (int64, error) {
	query := `UPDATE payments SET status = $3, updated_at = now()
			  WHERE booking_id = $1 AND status = $2`
	res, err := tx.ExecContext(ctx, query, bookingID, domain.PaymentStatusPending, domain.PaymentStatusFailed)
	if err != nil {
		return 0, fmt.Errorf("fail pending payments: %w", err)
	}
	return res.RowsAffected()
}

// lockBookingPayments takes the booking's payment rows first, in the same
// order the payment bridge does, so the two never deadlock.
func lockBookingPayments(ctx context.Context, tx *sql.Tx, bookingID string) error {
	query := `SELECT 1 FROM payments WHERE booking_id = $1 ORDER BY id FOR UPDATE`
	if _, err := tx.ExecContext(ctx, query, bookingID); err != nil {
		return fmt.Errorf("lock payments: %w", err)
	}
	return nil
}
