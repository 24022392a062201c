package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const HeaderSessionID = "X-Session-ID"

type CarSvc interface {
	Create(ctx context.Context, input domain.CreateCarInput, actorID string) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	List(ctx context.Context, onlyAvailable bool) ([]*domain.Car, error)
}

type BookingSvc interface {
	Book(ctx context.Context, in domain.BookInput) (*domain.BookResult, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	AdminRelease(ctx context.Context, bookingID, adminID string) (*domain.Booking, error)
	ExpireHolds(ctx context.Context) (int, error)
}

type PaymentSvc interface {
	HandleNotification(ctx context.Context, providerTxID string, status domain.PaymentStatus) (*domain.PaymentResult, error)
}

type DraftSvc interface {
	SaveAndRedirect(ctx context.Context, sessionID string, draft domain.Draft, opts domain.SaveDraftOptions) (string, error)
	Resume(ctx context.Context, sessionID, userID string) (*domain.ResumeResult, error)
	MarkProfileUpdated(ctx context.Context, sessionID string) error
	Clear(ctx context.Context, sessionID string) error
	Quote(ctx context.Context, carID string, pickup, ret domain.DateTime, addons domain.Addons) (*domain.Totals, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdatePhone(ctx context.Context, id, phone string) error
	List(ctx context.Context) ([]*domain.User, error)
}

type Config struct {
	// Location interprets the date/time pairs sent by the booking form.
	Location      *time.Location
	WebhookSecret string
}

type Handler struct {
	carService     CarSvc
	bookingService BookingSvc
	paymentService PaymentSvc
	draftService   DraftSvc
	userService    UserSvc
	cfg            Config
}

func NewHandler(
	carService CarSvc,
	bookingService BookingSvc,
	paymentService PaymentSvc,
	draftService DraftSvc,
	userService UserSvc,
	cfg Config,
) *Handler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Handler{
		carService:     carService,
		bookingService: bookingService,
		paymentService: paymentService,
		draftService:   draftService,
		userService:    userService,
		cfg:            cfg,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCarNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, errorBody(err))

	case errors.Is(err, domain.ErrCarAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrCarAlreadyBooked.Error()})

	case errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrResumeInProgress),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusConflict, errorBody(err))

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrPhoneRequired):
		c.JSON(http.StatusBadRequest, errorBody(err))

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, errorBody(err))

	case errors.Is(err, domain.ErrBookingNotOwned),
		errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody(err))

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func errorBody(err error) dto.ErrorResponse {
	return dto.ErrorResponse{Error: err.Error()}
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
