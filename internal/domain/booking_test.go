package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoldAmount(t *testing.T) {
	tests := []struct {
		total int64
		want  int64
	}{
		{total: 123456, want: 12346},
		{total: 100000, want: 10000},
		{total: 100005, want: 10001}, // 10000.5 округляется вверх
		{total: 100004, want: 10000},
		{total: 4, want: 0},
		{total: 5, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HoldAmount(tt.total), "total=%d", tt.total)
	}
}

func TestValidateWindow(t *testing.T) {
	start := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateWindow(start, start.Add(12*time.Hour)))
	assert.NoError(t, ValidateWindow(start, start.Add(72*time.Hour)))

	err := ValidateWindow(start, start.Add(12*time.Hour-time.Minute))
	assert.ErrorIs(t, err, ErrRentalTooShort)
	assert.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, ValidateWindow(start, start), ErrValidation)
	assert.ErrorIs(t, ValidateWindow(start, start.Add(-time.Hour)), ErrValidation)
	assert.ErrorIs(t, ValidateWindow(time.Time{}, start), ErrValidation)
}

func TestBooking_AmountDueAndCarStatus(t *testing.T) {
	held := Booking{Status: BookingStatusHeld, PayMode: PayModeHold, TotalAmount: 50000, HoldAmount: 5000}
	full := Booking{Status: BookingStatusPending, PayMode: PayModeFull, TotalAmount: 50000}

	assert.Equal(t, int64(5000), held.AmountDue())
	assert.Equal(t, CarStatusHeld, held.CarStatus())
	assert.Equal(t, int64(50000), full.AmountDue())
	assert.Equal(t, CarStatusBooked, full.CarStatus())
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.False(t, BookingStatusHeld.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.True(t, BookingStatusExpired.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
}
