package handler

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/CarBooker/internal/handler/mocks"
	"github.com/stpnv0/CarBooker/internal/middleware"
	"github.com/stpnv0/CarBooker/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	testAdminToken    = "admin-secret"
	testWebhookSecret = "whsec_test"
	testUserID        = "6f1c2d3e-4b5a-4c7d-8e9f-0a1b2c3d4e5f"
)

type testDeps struct {
	cars     *hmocks.MockCarSvc
	bookings *hmocks.MockBookingSvc
	payments *hmocks.MockPaymentSvc
	drafts   *hmocks.MockDraftSvc
	users    *hmocks.MockUserSvc
}

func setupRouter(t *testing.T, cfg Config) (testDeps, http.Handler) {
	t.Helper()
	d := testDeps{
		cars:     hmocks.NewMockCarSvc(t),
		bookings: hmocks.NewMockBookingSvc(t),
		payments: hmocks.NewMockPaymentSvc(t),
		drafts:   hmocks.NewMockDraftSvc(t),
		users:    hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(d.cars, d.bookings, d.payments, d.drafts, d.users, cfg)
	r := router.InitRouter("test", h, middleware.AdminOnly(testAdminToken), middleware.RequestID())

	return d, r
}

func doJSON(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case []byte:
			buf.Write(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookRequest(carID string) dto.BookRequest {
	return dto.BookRequest{
		CarID:   carID,
		UserID:  uuid.New().String(),
		Pickup:  dto.DateTimeRequest{Date: "2026-03-12", Time: "10:00"},
		Return:  dto.DateTimeRequest{Date: "2026-03-13", Time: "10:00"},
		Addons:  dto.AddonsRequest{GPS: true},
		Totals:  dto.TotalsRequest{Days: 1, Base: 250000, Addons: 10000, Subtotal: 260000, ServiceCharge: 13000, Total: 273000},
		PayMode: "hold",
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Hold(t *testing.T) {
	d, r := setupRouter(t, Config{})

	carID := uuid.New().String()
	holdUntil := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	var got domain.BookInput

	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in domain.BookInput) { got = in }).
		Return(&domain.BookResult{
			Booking: &domain.Booking{
				ID:            "b1",
				CarID:         carID,
				Status:        domain.BookingStatusHeld,
				PayMode:       domain.PayModeHold,
				TotalAmount:   273000,
				HoldAmount:    27300,
				HoldExpiresAt: &holdUntil,
			},
			Payment: &domain.Payment{ID: "p1", ProviderTransactionID: "txn_1", AmountPaise: 27300},
		}, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookRequest(carID), nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "b1", resp.BookingID)
	assert.Equal(t, "p1", resp.PaymentID)
	assert.Equal(t, "txn_1", resp.ProviderTransactionID)
	require.NotNil(t, resp.HoldAmount)
	assert.Equal(t, int64(27300), *resp.HoldAmount)
	require.NotNil(t, resp.HoldUntil)
	assert.Equal(t, "2026-03-11T10:00:00Z", *resp.HoldUntil)

	assert.Equal(t, carID, got.CarID)
	assert.Equal(t, int64(273000), got.TotalAmount)
	assert.Equal(t, domain.PayModeHold, got.PayMode)
	assert.Equal(t, time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC), got.StartAt)
	assert.Equal(t, 24*time.Hour, got.EndAt.Sub(got.StartAt))
	assert.True(t, got.Addons.GPS)
}

func TestHandler_CreateBooking_UsesLocation(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	d, r := setupRouter(t, Config{Location: ist})

	var got domain.BookInput
	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in domain.BookInput) { got = in }).
		Return(nil, domain.ErrCarAlreadyBooked)

	doJSON(r, http.MethodPost, "/api/bookings", bookRequest(uuid.New().String()), nil)

	assert.Equal(t, time.Date(2026, 3, 12, 4, 30, 0, 0, time.UTC), got.StartAt.UTC())
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create booking: %w", domain.ErrCarAlreadyBooked))

	w := doJSON(r, http.MethodPost, "/api/bookings", bookRequest(uuid.New().String()), nil)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Car is already booked", resp.Error)
}

func TestHandler_CreateBooking_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "car not found", err: domain.ErrCarNotFound, code: http.StatusNotFound},
		{name: "too short", err: fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrRentalTooShort), code: http.StatusBadRequest},
		{name: "unauthenticated", err: domain.ErrUnauthenticated, code: http.StatusUnauthorized},
		{name: "internal", err: fmt.Errorf("create booking: %w", assert.AnError), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := setupRouter(t, Config{})
			d.bookings.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(r, http.MethodPost, "/api/bookings", bookRequest(uuid.New().String()), nil)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_CreateBooking_BadRequest(t *testing.T) {
	_, r := setupRouter(t, Config{})

	req := bookRequest(uuid.New().String())
	req.PayMode = "later"
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/bookings", req, nil).Code)

	req = bookRequest("not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/bookings", req, nil).Code)

	req = bookRequest(uuid.New().String())
	req.Pickup.Date = "12.03.2026"
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/api/bookings", req, nil).Code)
}

func TestHandler_CreateBooking_InvalidUserID(t *testing.T) {
	d, r := setupRouter(t, Config{})

	req := bookRequest(uuid.New().String())
	req.UserID = "not-a-uuid"
	w := doJSON(r, http.MethodPost, "/api/bookings", req, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	d.bookings.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
}

func TestHandler_CreateBooking_NoUserIsUnauthenticated(t *testing.T) {
	d, r := setupRouter(t, Config{})

	var got domain.BookInput
	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).
		Run(func(_ context.Context, in domain.BookInput) { got = in }).
		Return(nil, domain.ErrUnauthenticated)

	req := bookRequest(uuid.New().String())
	req.UserID = ""
	w := doJSON(r, http.MethodPost, "/api/bookings", req, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, got.UserID)
}

func TestHandler_CreateBooking_ClearsDraft(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.bookings.EXPECT().Book(mock.Anything, mock.Anything).Return(&domain.BookResult{
		Booking: &domain.Booking{ID: "b1", Status: domain.BookingStatusPending},
		Payment: &domain.Payment{ID: "p1"},
	}, nil)
	d.drafts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil)

	req := bookRequest(uuid.New().String())
	req.PayMode = "full"
	w := doJSON(r, http.MethodPost, "/api/bookings", req, map[string]string{HeaderSessionID: "sess-1"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.HoldAmount)
	assert.Nil(t, resp.HoldUntil)
}

func TestHandler_CancelBooking(t *testing.T) {
	d, r := setupRouter(t, Config{})

	bookingID := uuid.New().String()
	userID := uuid.New().String()
	d.bookings.EXPECT().Cancel(mock.Anything, bookingID, userID).
		Return(&domain.Booking{ID: bookingID, Status: domain.BookingStatusCancelled}, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", dto.CancelRequest{UserID: userID}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_NotOwned(t *testing.T) {
	d, r := setupRouter(t, Config{})

	bookingID := uuid.New().String()
	d.bookings.EXPECT().Cancel(mock.Anything, bookingID, mock.Anything).Return(nil, domain.ErrBookingNotOwned)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel",
		dto.CancelRequest{UserID: uuid.New().String()}, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t, Config{})

	w := doJSON(r, http.MethodGet, "/api/bookings/nope", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	d, r := setupRouter(t, Config{})

	userID := uuid.New().String()
	d.bookings.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Booking{
		{ID: "b1", UserID: userID, Status: domain.BookingStatusConfirmed},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+userID+"/bookings", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "confirmed", resp[0].Status)
}

// --- Admin & internal ---

func TestHandler_Sweep(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.bookings.EXPECT().ExpireHolds(mock.Anything).Return(4, nil)

	w := doJSON(r, http.MethodPost, "/api/internal/sweep", nil, map[string]string{middleware.HeaderAdminToken: testAdminToken})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"expiredBookings":4}`, w.Body.String())
}

func TestHandler_Sweep_RequiresAdmin(t *testing.T) {
	_, r := setupRouter(t, Config{})

	w := doJSON(r, http.MethodPost, "/api/internal/sweep", nil, map[string]string{middleware.HeaderAdminToken: "wrong"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AdminCancelBooking(t *testing.T) {
	d, r := setupRouter(t, Config{})

	bookingID := uuid.New().String()
	d.bookings.EXPECT().AdminRelease(mock.Anything, bookingID, "admin").
		Return(&domain.Booking{ID: bookingID, Status: domain.BookingStatusCancelled}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/bookings/"+bookingID+"/cancel", nil,
		map[string]string{middleware.HeaderAdminToken: testAdminToken})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateCar(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.cars.EXPECT().Create(mock.Anything, mock.Anything, "admin").Return(&domain.Car{
		ID: "c1", Name: "Swift", PricePerDayPaise: 250000, Currency: "INR", Status: domain.CarStatusAvailable,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/cars",
		dto.CreateCarRequest{Name: "Swift", PricePerDayPaise: 250000},
		map[string]string{middleware.HeaderAdminToken: testAdminToken})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

// --- Cars ---

func TestHandler_ListCars_OnlyAvailable(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.cars.EXPECT().List(mock.Anything, true).Return([]*domain.Car{{ID: "c1", Status: domain.CarStatusAvailable}}, nil)

	w := doJSON(r, http.MethodGet, "/api/cars?available=true", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetCar_NotFound(t *testing.T) {
	d, r := setupRouter(t, Config{})

	carID := uuid.New().String()
	d.cars.EXPECT().GetByID(mock.Anything, carID).Return(nil, domain.ErrCarNotFound)

	w := doJSON(r, http.MethodGet, "/api/cars/"+carID, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Payments ---

func signedHeader(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func TestHandler_PaymentWebhook_Completed(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.payments.EXPECT().HandleNotification(mock.Anything, "txn_1", domain.PaymentStatusCompleted).
		Return(&domain.PaymentResult{Outcome: domain.PaymentOutcomeConfirmed}, nil)

	w := doJSON(r, http.MethodPost, "/api/payments/webhook",
		dto.PaymentWebhookRequest{ProviderTransactionID: "txn_1", EventType: "payment.completed"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true,"outcome":"confirmed"}`, w.Body.String())
}

func TestHandler_PaymentWebhook_Failed(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.payments.EXPECT().HandleNotification(mock.Anything, "txn_1", domain.PaymentStatusFailed).
		Return(&domain.PaymentResult{Outcome: domain.PaymentOutcomeFailed}, nil)

	w := doJSON(r, http.MethodPost, "/api/payments/webhook",
		dto.PaymentWebhookRequest{ProviderTransactionID: "txn_1", EventType: "payment.failed"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_UnknownTransactionAcknowledged(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.payments.EXPECT().HandleNotification(mock.Anything, "txn_x", domain.PaymentStatusCompleted).
		Return(nil, fmt.Errorf("apply payment notification: %w", domain.ErrPaymentNotFound))

	w := doJSON(r, http.MethodPost, "/api/payments/webhook",
		dto.PaymentWebhookRequest{ProviderTransactionID: "txn_x", EventType: "payment.completed"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_PaymentWebhook_BadEventType(t *testing.T) {
	_, r := setupRouter(t, Config{})

	w := doJSON(r, http.MethodPost, "/api/payments/webhook",
		[]byte(`{"provider_transaction_id":"txn_1","event_type":"payment.refunded"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PaymentWebhook_Signature(t *testing.T) {
	payload := []byte(`{"provider_transaction_id":"txn_1","event_type":"payment.completed"}`)

	t.Run("valid", func(t *testing.T) {
		d, r := setupRouter(t, Config{WebhookSecret: testWebhookSecret})
		d.payments.EXPECT().HandleNotification(mock.Anything, "txn_1", domain.PaymentStatusCompleted).
			Return(&domain.PaymentResult{Outcome: domain.PaymentOutcomeDuplicate}, nil)

		w := doJSON(r, http.MethodPost, "/api/payments/webhook", payload,
			map[string]string{HeaderSignature: signedHeader(t, payload, testWebhookSecret)})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, r := setupRouter(t, Config{WebhookSecret: testWebhookSecret})

		w := doJSON(r, http.MethodPost, "/api/payments/webhook", payload,
			map[string]string{HeaderSignature: signedHeader(t, payload, "whsec_other")})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		_, r := setupRouter(t, Config{WebhookSecret: testWebhookSecret})

		w := doJSON(r, http.MethodPost, "/api/payments/webhook", payload, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// --- Drafts ---

func TestHandler_SaveDraft(t *testing.T) {
	d, r := setupRouter(t, Config{})

	carID := uuid.New().String()
	d.drafts.EXPECT().SaveAndRedirect(mock.Anything, "sess-1", mock.MatchedBy(func(dr domain.Draft) bool {
		return dr.CarID == carID && dr.Pickup.Date == "2026-03-12"
	}), domain.SaveDraftOptions{RedirectToProfile: true, ReturnTo: "/cars/" + carID}).
		Return("/login?returnTo=%2Fcars", nil)

	w := doJSON(r, http.MethodPut, "/api/drafts", dto.SaveDraftRequest{
		CarID:             carID,
		Pickup:            dto.DateTimeRequest{Date: "2026-03-12", Time: "10:00"},
		RedirectToProfile: true,
		ReturnTo:          "/cars/" + carID,
	}, map[string]string{HeaderSessionID: "sess-1"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SaveDraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/login?returnTo=%2Fcars", resp.RedirectURL)
}

func TestHandler_SaveDraft_MissingSession(t *testing.T) {
	_, r := setupRouter(t, Config{})

	w := doJSON(r, http.MethodPut, "/api/drafts", dto.SaveDraftRequest{CarID: uuid.New().String()}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ResumeDraft(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.drafts.EXPECT().Resume(mock.Anything, "sess-1", testUserID).Return(&domain.ResumeResult{
		Draft: domain.Draft{CarID: "c1"},
		Step:  domain.ResumeStepCollectPhone,
	}, nil)

	w := doJSON(r, http.MethodPost, "/api/drafts/resume", dto.ResumeDraftRequest{UserID: testUserID},
		map[string]string{HeaderSessionID: "sess-1"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "collect_phone", resp.Step)
	assert.Equal(t, "c1", resp.Draft.CarID)
}

func TestHandler_ResumeDraft_InProgress(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.drafts.EXPECT().Resume(mock.Anything, "sess-1", testUserID).Return(nil, domain.ErrResumeInProgress)

	w := doJSON(r, http.MethodPost, "/api/drafts/resume", dto.ResumeDraftRequest{UserID: testUserID},
		map[string]string{HeaderSessionID: "sess-1"})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_ResumeDraft_Stale(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.drafts.EXPECT().Resume(mock.Anything, "sess-1", testUserID).Return(nil, domain.ErrDraftNotFound)

	w := doJSON(r, http.MethodPost, "/api/drafts/resume", dto.ResumeDraftRequest{UserID: testUserID},
		map[string]string{HeaderSessionID: "sess-1"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ResumeDraft_InvalidUserID(t *testing.T) {
	d, r := setupRouter(t, Config{})

	w := doJSON(r, http.MethodPost, "/api/drafts/resume", dto.ResumeDraftRequest{UserID: "not-a-uuid"},
		map[string]string{HeaderSessionID: "sess-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	d.drafts.AssertNotCalled(t, "Resume", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ResumeDraft_NoUserReachesService(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.drafts.EXPECT().Resume(mock.Anything, "sess-1", "").Return(nil, domain.ErrUnauthenticated)

	w := doJSON(r, http.MethodPost, "/api/drafts/resume", dto.ResumeDraftRequest{},
		map[string]string{HeaderSessionID: "sess-1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ClearDraft(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.drafts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/drafts", nil, map[string]string{HeaderSessionID: "sess-1"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_QuoteDraft(t *testing.T) {
	d, r := setupRouter(t, Config{})

	carID := uuid.New().String()
	d.drafts.EXPECT().Quote(mock.Anything, carID,
		domain.DateTime{Date: "2026-03-12", Time: "10:00"},
		domain.DateTime{Date: "2026-03-14", Time: "10:00"},
		domain.Addons{Insurance: true},
	).Return(&domain.Totals{Days: 2, Total: 588000}, nil)

	w := doJSON(r, http.MethodPost, "/api/drafts/quote", dto.QuoteRequest{
		CarID:  carID,
		Pickup: dto.DateTimeRequest{Date: "2026-03-12", Time: "10:00"},
		Return: dto.DateTimeRequest{Date: "2026-03-14", Time: "10:00"},
		Addons: dto.AddonsRequest{Insurance: true},
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var totals domain.Totals
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &totals))
	assert.Equal(t, int64(588000), totals.Total)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.User{ID: "u1", Username: "alice"}, nil)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	d, r := setupRouter(t, Config{})

	d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Username: "alice"}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateUserPhone(t *testing.T) {
	d, r := setupRouter(t, Config{})

	userID := uuid.New().String()
	phone := "+919876543210"
	d.users.EXPECT().UpdatePhone(mock.Anything, userID, "+91 98765 43210").Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, userID).Return(&domain.User{ID: userID, Phone: &phone}, nil)

	w := doJSON(r, http.MethodPut, "/api/users/"+userID+"/phone", dto.UpdatePhoneRequest{Phone: "+91 98765 43210"}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Phone)
	assert.Equal(t, phone, *resp.Phone)
}
