package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
)

const defaultSeats = 4

type CarService struct {
	repo ports.CarRepo
}

func NewCarService(repo ports.CarRepo) *CarService {
	return &CarService{repo: repo}
}

// Create is admin-only; new cars always start available.
func (s *CarService) Create(ctx context.Context, input domain.CreateCarInput, actorID string) (*domain.Car, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.PricePerDayPaise <= 0 {
		return nil, fmt.Errorf("%w: price_per_day_paise must be positive", domain.ErrValidation)
	}
	if input.PricePerHourPaise < 0 {
		return nil, fmt.Errorf("%w: price_per_hour_paise must not be negative", domain.ErrValidation)
	}
	if input.Seats < 0 {
		return nil, fmt.Errorf("%w: seats must not be negative", domain.ErrValidation)
	}

	seats := input.Seats
	if seats == 0 {
		seats = defaultSeats
	}
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := time.Now().UTC()
	car := &domain.Car{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(input.Name),
		Make:              input.Make,
		Model:             input.Model,
		Seats:             seats,
		PricePerDayPaise:  input.PricePerDayPaise,
		PricePerHourPaise: input.PricePerHourPaise,
		Currency:          currency,
		Status:            domain.CarStatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Create(ctx, car, actorID); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}

	return car, nil
}

func (s *CarService) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) List(ctx context.Context, onlyAvailable bool) ([]*domain.Car, error) {
	return s.repo.List(ctx, onlyAvailable)
}
