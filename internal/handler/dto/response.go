package dto

import (
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
)

type BookResponse struct {
	Success               bool    `json:"success"`
	BookingID             string  `json:"booking_id"`
	PaymentID             string  `json:"payment_id"`
	ProviderTransactionID string  `json:"provider_transaction_id"`
	Status                string  `json:"status"`
	AmountDue             int64   `json:"amount_due"`
	HoldAmount            *int64  `json:"hold_amount,omitempty"`
	HoldUntil             *string `json:"hold_until,omitempty"`
	PaymentDueAt          *string `json:"payment_due_at,omitempty"`
}

type BookingResponse struct {
	ID            string        `json:"id"`
	CarID         string        `json:"car_id"`
	UserID        string        `json:"user_id"`
	StartAt       string        `json:"start_at"`
	EndAt         string        `json:"end_at"`
	Status        string        `json:"status"`
	PayMode       string        `json:"pay_mode"`
	TotalAmount   int64         `json:"total_amount"`
	HoldAmount    int64         `json:"hold_amount"`
	Currency      string        `json:"currency"`
	HoldExpiresAt *string       `json:"hold_expires_at,omitempty"`
	PaymentDueAt  *string       `json:"payment_due_at,omitempty"`
	Addons        domain.Addons `json:"addons"`
	CreatedAt     string        `json:"created_at"`
}

type CarResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Make              string `json:"make"`
	Model             string `json:"model"`
	Seats             int    `json:"seats"`
	PricePerDayPaise  int64  `json:"price_per_day_paise"`
	PricePerHourPaise int64  `json:"price_per_hour_paise"`
	Currency          string `json:"currency"`
	Status            string `json:"availability_status"`
	Available         bool   `json:"available"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Phone          *string `json:"phone,omitempty"`
	TelegramChatID *int64  `json:"telegram_chat_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type SweepResponse struct {
	Success         bool `json:"success"`
	ExpiredBookings int  `json:"expiredBookings"`
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome,omitempty"`
}

type SaveDraftResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirect_url"`
}

type ResumeResponse struct {
	Success            bool         `json:"success"`
	Step               string       `json:"step"`
	ProfileJustUpdated bool         `json:"profile_just_updated"`
	Draft              domain.Draft `json:"draft"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ToBookResponse(r *domain.BookResult) BookResponse {
	b := r.Booking
	resp := BookResponse{
		Success:               true,
		BookingID:             b.ID,
		PaymentID:             r.Payment.ID,
		ProviderTransactionID: r.Payment.ProviderTransactionID,
		Status:                string(b.Status),
		AmountDue:             r.Payment.AmountPaise,
	}
	if b.Status == domain.BookingStatusHeld {
		amount := b.HoldAmount
		resp.HoldAmount = &amount
		resp.HoldUntil = formatTime(b.HoldExpiresAt)
	}
	resp.PaymentDueAt = formatTime(b.PaymentDueAt)
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CarID:         b.CarID,
		UserID:        b.UserID,
		StartAt:       b.StartAt.Format(time.RFC3339),
		EndAt:         b.EndAt.Format(time.RFC3339),
		Status:        string(b.Status),
		PayMode:       string(b.PayMode),
		TotalAmount:   b.TotalAmount,
		HoldAmount:    b.HoldAmount,
		Currency:      b.Currency,
		HoldExpiresAt: formatTime(b.HoldExpiresAt),
		PaymentDueAt:  formatTime(b.PaymentDueAt),
		Addons:        b.Addons,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToCarResponse(c *domain.Car) CarResponse {
	return CarResponse{
		ID:                c.ID,
		Name:              c.Name,
		Make:              c.Make,
		Model:             c.Model,
		Seats:             c.Seats,
		PricePerDayPaise:  c.PricePerDayPaise,
		PricePerHourPaise: c.PricePerHourPaise,
		Currency:          c.Currency,
		Status:            string(c.Status),
		Available:         c.Available(),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToResumeResponse(r *domain.ResumeResult) ResumeResponse {
	return ResumeResponse{
		Success:            true,
		Step:               string(r.Step),
		ProfileJustUpdated: r.ProfileJustUpdated,
		Draft:              r.Draft,
	}
}

func (d DateTimeRequest) ToDomain() domain.DateTime {
	return domain.DateTime{Date: d.Date, Time: d.Time}
}

func (a AddonsRequest) ToDomain() domain.Addons {
	return domain.Addons{
		Driver:    a.Driver,
		GPS:       a.GPS,
		ChildSeat: a.ChildSeat,
		Insurance: a.Insurance,
	}
}

func (t TotalsRequest) ToDomain() domain.Totals {
	return domain.Totals{
		Days:          t.Days,
		Base:          t.Base,
		Addons:        t.Addons,
		Subtotal:      t.Subtotal,
		ServiceCharge: t.ServiceCharge,
		Total:         t.Total,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
