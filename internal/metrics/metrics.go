package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess    = "success"
	ResultContention = "contention"
	ResultInvalid    = "invalid"
	ResultError      = "error"
)

var (
	BookingAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carbooker_booking_attempts_total",
		Help: "Booking attempts by result",
	}, []string{"result", "pay_mode"})

	BookingsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carbooker_bookings_expired_total",
		Help: "Bookings expired by the hold sweeper",
	})

	SweepFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carbooker_sweep_row_failures_total",
		Help: "Rows the hold sweeper failed to expire",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "carbooker_sweep_duration_seconds",
		Help:    "Duration of one hold sweep",
		Buckets: prometheus.DefBuckets,
	})

	PaymentNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carbooker_payment_notifications_total",
		Help: "Payment gateway notifications by outcome",
	}, []string{"outcome"})

	DraftResumes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "carbooker_draft_resumes_total",
		Help: "Draft resumes by next step",
	}, []string{"step"})

	HTTPPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "carbooker_http_panics_total",
		Help: "Handler panics caught by the recovery middleware",
	})
)
