package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, car *domain.Car, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, car *domain.Car, booking *domain.Booking)
	NotifyBookingExpired(ctx context.Context, user *domain.User, car *domain.Car, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, car *domain.Car, booking *domain.Booking)
}
