package ports

import (
	"context"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type CarRepo interface {
	Create(ctx context.Context, c *domain.Car, actorID string) error
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Car, error)
}
