package domain

import "time"

type AuditAction string

const (
	AuditCarCreated       AuditAction = "car_created"
	AuditCarBooked        AuditAction = "car_booked"
	AuditCarReleased      AuditAction = "car_released"
	AuditBookingConfirmed AuditAction = "booking_confirmed"
	AuditBookingCancelled AuditAction = "booking_cancelled"
	AuditPaymentFailed    AuditAction = "payment_failed"
	AuditAdminOverride    AuditAction = "admin_override"
)

// ActorSystem marks entries written by the sweeper and the payment bridge.
const ActorSystem = "system"

type AuditEntry struct {
	Action    AuditAction    `json:"action"`
	ActorID   string         `json:"actor_id"`
	TargetID  string         `json:"target_id"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}
