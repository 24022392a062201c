package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusHeld      BookingStatus = "held"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusExpired   BookingStatus = "expired"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// AwaitingPaymentStatuses can still be confirmed by the payment bridge.
var AwaitingPaymentStatuses = []BookingStatus{BookingStatusHeld, BookingStatusPending}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusExpired || s == BookingStatusCancelled
}

type PayMode string

const (
	PayModeHold PayMode = "hold"
	PayModeFull PayMode = "full"
)

func (m PayMode) Valid() bool {
	return m == PayModeHold || m == PayModeFull
}

const (
	MinRentalDuration = 12 * time.Hour
	HoldWindow        = 24 * time.Hour
	HoldPercent       = 10
)

// HoldAmount is HoldPercent of total, rounded half up, in minor units.
func HoldAmount(total int64) int64 {
	return (total*HoldPercent + 50) / 100
}

// ValidateWindow checks the rental window before any write is attempted.
func ValidateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: pickup and return are required", ErrValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: return must be after pickup", ErrValidation)
	}
	if end.Sub(start) < MinRentalDuration {
		return fmt.Errorf("%w: %w", ErrValidation, ErrRentalTooShort)
	}
	return nil
}

type Booking struct {
	ID            string        `json:"id"`
	CarID         string        `json:"car_id"`
	UserID        string        `json:"user_id"`
	StartAt       time.Time     `json:"start_at"`
	EndAt         time.Time     `json:"end_at"`
	Status        BookingStatus `json:"status"`
	PayMode       PayMode       `json:"pay_mode"`
	TotalAmount   int64         `json:"total_amount"`
	HoldAmount    int64         `json:"hold_amount"`
	Currency      string        `json:"currency"`
	HoldExpiresAt *time.Time    `json:"hold_expires_at"`
	PaymentDueAt  *time.Time    `json:"payment_due_at"`
	LicensePath   string        `json:"license_path"`
	Addons        Addons        `json:"addons"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// AmountDue is what the booking's first payment has to collect.
func (b *Booking) AmountDue() int64 {
	if b.PayMode == PayModeHold {
		return b.HoldAmount
	}
	return b.TotalAmount
}

// CarStatus is the availability a car takes while owned by this booking.
func (b *Booking) CarStatus() CarStatus {
	if b.Status == BookingStatusHeld {
		return CarStatusHeld
	}
	return CarStatusBooked
}

type BookInput struct {
	CarID       string
	UserID      string
	StartAt     time.Time
	EndAt       time.Time
	TotalAmount int64
	PayMode     PayMode
	LicensePath string
	Addons      Addons
}

type BookResult struct {
	Booking *Booking `json:"booking"`
	Payment *Payment `json:"payment"`
}
