package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type PaymentRepo interface {
	Complete(ctx context.Context, txID string, now time.Time) (*domain.PaymentResult, error)
	Fail(ctx context.Context, txID string, now time.Time) (*domain.PaymentResult, error)
}
