package domain

import "time"

type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusBooked    CarStatus = "booked"
	CarStatusHeld      CarStatus = "held"
)

const DefaultCurrency = "INR"

type Car struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Make              string     `json:"make"`
	Model             string     `json:"model"`
	Seats             int        `json:"seats"`
	PricePerDayPaise  int64      `json:"price_per_day_paise"`
	PricePerHourPaise int64      `json:"price_per_hour_paise"`
	Currency          string     `json:"currency"`
	Status            CarStatus  `json:"availability_status"`
	BookedBy          *string    `json:"booked_by"`
	BookedAt          *time.Time `json:"booked_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (c *Car) Available() bool {
	return c.Status == CarStatusAvailable
}

type CreateCarInput struct {
	Name              string
	Make              string
	Model             string
	Seats             int
	PricePerDayPaise  int64
	PricePerHourPaise int64
	Currency          string
}
