package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/metrics"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPaymentWindow = 30 * time.Minute
	defaultSweepBatch    = 500
)

type BookingService struct {
	bookingRepo   ports.BookingRepo
	carRepo       ports.CarRepo
	userRepo      ports.UserRepo
	notifier      ports.BookingNotifier
	logger        logger.Logger
	now           func() time.Time
	paymentWindow time.Duration
	sweepBatch    int
}

type BookingOption func(*BookingService)

// WithClock overrides the time source used for hold and payment deadlines.
func WithClock(now func() time.Time) BookingOption {
	return func(s *BookingService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPaymentWindow sets how long a full-payment booking may stay unpaid.
func WithPaymentWindow(d time.Duration) BookingOption {
	return func(s *BookingService) {
		if d > 0 {
			s.paymentWindow = d
		}
	}
}

func WithSweepBatch(n int) BookingOption {
	return func(s *BookingService) {
		if n > 0 {
			s.sweepBatch = n
		}
	}
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	opts ...BookingOption,
) *BookingService {
	s := &BookingService{
		bookingRepo:   bookingRepo,
		carRepo:       carRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
		now:           time.Now,
		paymentWindow: defaultPaymentWindow,
		sweepBatch:    defaultSweepBatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Book runs the atomic booking operation. Availability is checked only by
// the repository's compare-and-swap; the caller's view of the car is never
// trusted. A retry after success fails with domain.ErrCarAlreadyBooked.
func (s *BookingService) Book(ctx context.Context, in domain.BookInput) (*domain.BookResult, error) {
	if err := validateBookInput(in); err != nil {
		metrics.BookingAttempts.WithLabelValues(metrics.ResultInvalid, string(in.PayMode)).Inc()
		return nil, err
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:          uuid.New().String(),
		CarID:       in.CarID,
		UserID:      in.UserID,
		StartAt:     in.StartAt.UTC(),
		EndAt:       in.EndAt.UTC(),
		PayMode:     in.PayMode,
		TotalAmount: in.TotalAmount,
		LicensePath: in.LicensePath,
		Addons:      in.Addons,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch in.PayMode {
	case domain.PayModeHold:
		holdUntil := now.Add(domain.HoldWindow)
		booking.Status = domain.BookingStatusHeld
		booking.HoldAmount = domain.HoldAmount(in.TotalAmount)
		booking.HoldExpiresAt = &holdUntil
	case domain.PayModeFull:
		dueAt := now.Add(s.paymentWindow)
		booking.Status = domain.BookingStatusPending
		booking.PaymentDueAt = &dueAt
	}

	payment := &domain.Payment{
		ID:                    uuid.New().String(),
		BookingID:             &booking.ID,
		ProviderTransactionID: "txn_" + uuid.New().String(),
		AmountPaise:           booking.AmountDue(),
		Status:                domain.PaymentStatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.bookingRepo.CreateAtomic(ctx, booking, payment); err != nil {
		if errors.Is(err, domain.ErrCarAlreadyBooked) {
			metrics.BookingAttempts.WithLabelValues(metrics.ResultContention, string(in.PayMode)).Inc()
			s.logger.Info("booking rejected, car already booked",
				logger.String("car_id", in.CarID),
				logger.String("user_id", in.UserID),
			)
		} else {
			metrics.BookingAttempts.WithLabelValues(metrics.ResultError, string(in.PayMode)).Inc()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingAttempts.WithLabelValues(metrics.ResultSuccess, string(in.PayMode)).Inc()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
		logger.String("user_id", booking.UserID),
		logger.String("status", string(booking.Status)),
		logger.Int64("amount_due", payment.AmountPaise),
	)

	go s.notify(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingCreated)

	return &domain.BookResult{Booking: booking, Payment: payment}, nil
}

func validateBookInput(in domain.BookInput) error {
	if in.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if in.CarID == "" {
		return fmt.Errorf("%w: car_id is required", domain.ErrValidation)
	}
	if !in.PayMode.Valid() {
		return fmt.Errorf("%w: pay_mode must be hold or full", domain.ErrValidation)
	}
	if in.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount must be positive", domain.ErrValidation)
	}
	if in.PayMode == domain.PayModeHold && domain.HoldAmount(in.TotalAmount) <= 0 {
		return fmt.Errorf("%w: total amount too small for a hold", domain.ErrValidation)
	}
	return domain.ValidateWindow(in.StartAt, in.EndAt)
}

// ExpireHolds is one sweep: every overdue held or unpaid booking is expired
// together with its car, row by row. A failing row is logged and skipped.
func (s *BookingService) ExpireHolds(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(start).Seconds()) }()

	now := s.now().UTC()
	overdue, err := s.bookingRepo.ListExpired(ctx, now, s.sweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list expired: %w", err)
	}

	expired := make([]*domain.Booking, 0, len(overdue))
	failures := 0
	for _, b := range overdue {
		res, err := s.bookingRepo.Expire(ctx, b.ID, now)
		if err != nil {
			if errors.Is(err, domain.ErrBookingNotActive) {
				// оплачена или отменена между выборкой и обновлением
				s.logger.Debug("booking no longer expirable",
					logger.String("booking_id", b.ID),
				)
				continue
			}
			failures++
			metrics.SweepFailures.Inc()
			s.logger.Error("failed to expire booking",
				logger.String("booking_id", b.ID),
				logger.String("car_id", b.CarID),
				logger.String("error", err.Error()),
			)
			continue
		}
		expired = append(expired, res)
	}

	if len(expired) > 0 || failures > 0 {
		metrics.BookingsExpired.Add(float64(len(expired)))
		s.logger.Info("expired bookings released",
			logger.Int("count", len(expired)),
			logger.Int("failures", failures),
		)
		go s.notifyAll(context.WithoutCancel(ctx), expired, s.notifier.NotifyBookingExpired)
	}

	return len(expired), nil
}

// Cancel lets a user cancel their own active booking.
func (s *BookingService) Cancel(ctx context.Context, bookingID, userID string) (*domain.Booking, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	b, err := s.bookingRepo.Cancel(ctx, bookingID, userID, userID, domain.AuditBookingCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("car_id", b.CarID),
		logger.String("user_id", userID),
	)
	go s.notify(context.WithoutCancel(ctx), b, s.notifier.NotifyBookingCancelled)

	return b, nil
}

// AdminRelease cancels any active booking and frees its car.
func (s *BookingService) AdminRelease(ctx context.Context, bookingID, adminID string) (*domain.Booking, error) {
	b, err := s.bookingRepo.Cancel(ctx, bookingID, "", adminID, domain.AuditAdminOverride)
	if err != nil {
		return nil, fmt.Errorf("admin release: %w", err)
	}

	s.logger.Warn("booking released by admin",
		logger.String("booking_id", b.ID),
		logger.String("car_id", b.CarID),
		logger.String("admin_id", adminID),
	)
	go s.notify(context.WithoutCancel(ctx), b, s.notifier.NotifyBookingCancelled)

	return b, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

type notifyFunc func(ctx context.Context, user *domain.User, car *domain.Car, booking *domain.Booking)

func (s *BookingService) notifyAll(ctx context.Context, bookings []*domain.Booking, fn notifyFunc) {
	for _, b := range bookings {
		s.notify(ctx, b, fn)
	}
}

func (s *BookingService) notify(ctx context.Context, b *domain.Booking, fn notifyFunc) {
	notifyBooking(ctx, s.userRepo, s.carRepo, s.logger, b, fn)
}

// notifyBooking loads the user and car a notification needs. Failures only
// cost the notification.
func notifyBooking(
	ctx context.Context,
	userRepo ports.UserRepo,
	carRepo ports.CarRepo,
	log logger.Logger,
	b *domain.Booking,
	fn notifyFunc,
) {
	user, err := userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		log.Error("failed to get user for notification",
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}

	car, err := carRepo.GetByID(ctx, b.CarID)
	if err != nil {
		log.Error("failed to get car for notification",
			logger.String("car_id", b.CarID),
			logger.String("error", err.Error()),
		)
		return
	}

	fn(ctx, user, car, b)
}
