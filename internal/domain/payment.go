package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type Payment struct {
	ID                    string        `json:"id"`
	BookingID             *string       `json:"booking_id"`
	ProviderTransactionID string        `json:"provider_transaction_id"`
	AmountPaise           int64         `json:"amount_paise"`
	Currency              string        `json:"currency"`
	Status                PaymentStatus `json:"status"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// PaymentOutcome reports what a gateway notification changed.
type PaymentOutcome string

const (
	PaymentOutcomeConfirmed PaymentOutcome = "confirmed"
	PaymentOutcomeFailed    PaymentOutcome = "failed"
	// PaymentOutcomeDuplicate is a redelivery of an already applied notification.
	PaymentOutcomeDuplicate PaymentOutcome = "duplicate"
	// PaymentOutcomeLate is a completed payment for a booking that already expired or was cancelled.
	PaymentOutcomeLate PaymentOutcome = "late"
)

type PaymentResult struct {
	Payment   *Payment       `json:"payment"`
	BookingID string         `json:"booking_id"`
	Outcome   PaymentOutcome `json:"outcome"`
}
