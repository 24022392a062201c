package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	RoutingBookingCreated   = "booking.created"
	RoutingBookingConfirmed = "booking.confirmed"
	RoutingBookingExpired   = "booking.expired"
	RoutingBookingCancelled = "booking.cancelled"

	eventVersion = 1
)

// BookingEvent is the message body published for every booking transition.
type BookingEvent struct {
	Event      string `json:"event"`
	Version    int    `json:"version"`
	OccurredAt string `json:"occurred_at"`
	Data       struct {
		BookingID     string  `json:"booking_id"`
		CarID         string  `json:"car_id"`
		UserID        string  `json:"user_id"`
		Status        string  `json:"status"`
		PayMode       string  `json:"pay_mode"`
		TotalAmount   int64   `json:"total_amount"`
		HoldAmount    int64   `json:"hold_amount"`
		Currency      string  `json:"currency"`
		HoldExpiresAt *string `json:"hold_expires_at,omitempty"`
	} `json:"data"`
}

// AMQPPublisher publishes booking transitions to a topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

func NewAMQPPublisher(url, exchange string, log logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *AMQPPublisher) NotifyBookingCreated(ctx context.Context, _ *domain.User, _ *domain.Car, b *domain.Booking) {
	p.publish(ctx, RoutingBookingCreated, b)
}

func (p *AMQPPublisher) NotifyBookingConfirmed(ctx context.Context, _ *domain.User, _ *domain.Car, b *domain.Booking) {
	p.publish(ctx, RoutingBookingConfirmed, b)
}

func (p *AMQPPublisher) NotifyBookingExpired(ctx context.Context, _ *domain.User, _ *domain.Car, b *domain.Booking) {
	p.publish(ctx, RoutingBookingExpired, b)
}

func (p *AMQPPublisher) NotifyBookingCancelled(ctx context.Context, _ *domain.User, _ *domain.Car, b *domain.Booking) {
	p.publish(ctx, RoutingBookingCancelled, b)
}

func (p *AMQPPublisher) publish(ctx context.Context, key string, b *domain.Booking) {
	body, err := json.Marshal(NewBookingEvent(key, b, time.Now().UTC()))
	if err != nil {
		p.logger.Error("failed to marshal booking event",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("routing_key", key),
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func NewBookingEvent(key string, b *domain.Booking, at time.Time) BookingEvent {
	evt := BookingEvent{
		Event:      key,
		Version:    eventVersion,
		OccurredAt: at.Format(time.RFC3339),
	}
	evt.Data.BookingID = b.ID
	evt.Data.CarID = b.CarID
	evt.Data.UserID = b.UserID
	evt.Data.Status = string(b.Status)
	evt.Data.PayMode = string(b.PayMode)
	evt.Data.TotalAmount = b.TotalAmount
	evt.Data.HoldAmount = b.HoldAmount
	evt.Data.Currency = b.Currency
	if b.HoldExpiresAt != nil {
		s := b.HoldExpiresAt.UTC().Format(time.RFC3339)
		evt.Data.HoldExpiresAt = &s
	}
	return evt
}
