package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type BookingRepo interface {
	CreateAtomic(ctx context.Context, b *domain.Booking, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*domain.Booking, error)
	Expire(ctx context.Context, id string, now time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, id, ownerID, actorID string, action domain.AuditAction) (*domain.Booking, error)
}
