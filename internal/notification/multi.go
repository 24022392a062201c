package notification

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
)

// Multi fans every notification out to all wrapped notifiers in order.
type Multi []ports.BookingNotifier

func (m Multi) NotifyBookingCreated(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingCreated(ctx, user, car, b)
	}
}

func (m Multi) NotifyBookingConfirmed(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, user, car, b)
	}
}

func (m Multi) NotifyBookingExpired(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingExpired(ctx, user, car, b)
	}
}

func (m Multi) NotifyBookingCancelled(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingCancelled(ctx, user, car, b)
	}
}
