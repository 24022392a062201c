package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const carColumns = `id, name, make, model, seats, price_per_day_paise, price_per_hour_paise,
			  currency, availability_status, booked_by, booked_at, created_at, updated_at`

type CarRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCarRepo(db *dbpg.DB) *CarRepository {
	return &CarRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create is the admin write path. Legacy major-unit price columns are
// derived from the paise columns here and nowhere else.
func (r *CarRepository) Create(ctx context.Context, c *domain.Car, actorID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO cars (id, name, make, model, seats, price_per_day_paise, price_per_hour_paise,
			  currency, price_per_day, price_per_hour, availability_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $12::numeric / 100, $13::numeric / 100, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, query,
		c.ID, c.Name, c.Make, c.Model, c.Seats, c.PricePerDayPaise, c.PricePerHourPaise,
		c.Currency, c.Status, c.CreatedAt, c.UpdatedAt,
		c.PricePerDayPaise, c.PricePerHourPaise,
	); err != nil {
		return fmt.Errorf("insert car: %w", err)
	}

	if err = appendAudit(ctx, tx, domain.AuditEntry{
		Action:   domain.AuditCarCreated,
		ActorID:  actorID,
		TargetID: c.ID,
		Metadata: map[string]any{
			"name":                c.Name,
			"price_per_day_paise": c.PricePerDayPaise,
			"currency":            c.Currency,
		},
		CreatedAt: c.CreatedAt,
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	c, err := scanCar(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, fmt.Errorf("scan car: %w", err)
	}

	return c, nil
}

func (r *CarRepository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Car, error) {
	query := `SELECT ` + carColumns + `
			  FROM cars
			  WHERE NOT $1 OR availability_status = $2
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, onlyAvailable, domain.CarStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()

	var res []*domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanCar(s scanner) (*domain.Car, error) {
	var c domain.Car
	err := s.Scan(
		&c.ID, &c.Name, &c.Make, &c.Model, &c.Seats, &c.PricePerDayPaise, &c.PricePerHourPaise,
		&c.Currency, &c.Status, &c.BookedBy, &c.BookedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
