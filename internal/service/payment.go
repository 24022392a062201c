package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/metrics"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// PaymentService applies asynchronous gateway notifications to payments and
// their bookings.
type PaymentService struct {
	paymentRepo ports.PaymentRepo
	bookingRepo ports.BookingRepo
	carRepo     ports.CarRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// HandleNotification is safe to call repeatedly for one transaction id:
// redeliveries come back as domain.PaymentOutcomeDuplicate.
func (s *PaymentService) HandleNotification(
	ctx context.Context,
	txID string,
	status domain.PaymentStatus,
) (*domain.PaymentResult, error) {
	if txID == "" {
		return nil, fmt.Errorf("%w: provider transaction id is required", domain.ErrValidation)
	}

	now := s.now().UTC()
	var (
		res *domain.PaymentResult
		err error
	)
	switch status {
	case domain.PaymentStatusCompleted:
		res, err = s.paymentRepo.Complete(ctx, txID, now)
	case domain.PaymentStatusFailed:
		res, err = s.paymentRepo.Fail(ctx, txID, now)
	default:
		return nil, fmt.Errorf("%w: unsupported payment status %q", domain.ErrValidation, status)
	}
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			metrics.PaymentNotifications.WithLabelValues("unknown").Inc()
			s.logger.Warn("payment notification for unknown transaction",
				logger.String("provider_transaction_id", txID),
				logger.String("status", string(status)),
			)
		}
		return nil, fmt.Errorf("apply payment notification: %w", err)
	}

	metrics.PaymentNotifications.WithLabelValues(string(res.Outcome)).Inc()

	switch res.Outcome {
	case domain.PaymentOutcomeConfirmed:
		s.logger.Info("booking confirmed by payment",
			logger.String("booking_id", res.BookingID),
			logger.String("payment_id", res.Payment.ID),
		)
		go s.notifyConfirmed(context.WithoutCancel(ctx), res.BookingID)
	case domain.PaymentOutcomeFailed:
		s.logger.Info("payment failed",
			logger.String("booking_id", res.BookingID),
			logger.String("payment_id", res.Payment.ID),
		)
	case domain.PaymentOutcomeLate:
		// деньги получены, но бронь уже не активна: нужен возврат
		s.logger.Warn("payment completed for inactive booking",
			logger.String("booking_id", res.BookingID),
			logger.String("payment_id", res.Payment.ID),
			logger.Int64("amount_paise", res.Payment.AmountPaise),
		)
	case domain.PaymentOutcomeDuplicate:
		s.logger.Debug("duplicate payment notification ignored",
			logger.String("provider_transaction_id", txID),
		)
	}

	return res, nil
}

func (s *PaymentService) notifyConfirmed(ctx context.Context, bookingID string) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("failed to get booking for notification",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return
	}
	notifyBooking(ctx, s.userRepo, s.carRepo, s.logger, b, s.notifier.NotifyBookingConfirmed)
}
