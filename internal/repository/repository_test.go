package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/wb-go/wbf/dbpg"
)

const migrationsDir = "../../migrations"

type testStore struct {
	db       *dbpg.DB
	cars     *CarRepository
	bookings *BookingRepository
	payments *PaymentRepository
	users    *UserRepository
}

func setupStore(t *testing.T) *testStore {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test, skipped in -short mode")
	}

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("carbooker_test"),
		postgres.WithUsername("carbooker"),
		postgres.WithPassword("carbooker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrationDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	defer migrationDB.Close()
	require.NoError(t, goose.Up(migrationDB, migrationsDir))

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 30, MaxIdleConns: 10})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Master.Close() })

	return &testStore{
		db:       db,
		cars:     NewCarRepo(db),
		bookings: NewBookingRepo(db),
		payments: NewPaymentRepo(db),
		users:    NewUserRepo(db),
	}
}

func (s *testStore) createUser(t *testing.T) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.New().String(), Username: "user-" + uuid.New().String()[:8], CreatedAt: time.Now().UTC()}
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

func (s *testStore) createCar(t *testing.T) *domain.Car {
	t.Helper()
	now := time.Now().UTC()
	c := &domain.Car{
		ID:                uuid.New().String(),
		Name:              "Maruti Swift",
		Seats:             5,
		PricePerDayPaise:  250050,
		PricePerHourPaise: 12500,
		Currency:          domain.DefaultCurrency,
		Status:            domain.CarStatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, s.cars.Create(context.Background(), c, "admin"))
	return c
}

func newBooking(carID, userID string, mode domain.PayMode, createdAt time.Time) (*domain.Booking, *domain.Payment) {
	b := &domain.Booking{
		ID:          uuid.New().String(),
		CarID:       carID,
		UserID:      userID,
		StartAt:     createdAt.Add(48 * time.Hour),
		EndAt:       createdAt.Add(72 * time.Hour),
		PayMode:     mode,
		TotalAmount: 300000,
		Addons:      domain.Addons{Driver: true},
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if mode == domain.PayModeHold {
		until := createdAt.Add(domain.HoldWindow)
		b.Status = domain.BookingStatusHeld
		b.HoldAmount = domain.HoldAmount(b.TotalAmount)
		b.HoldExpiresAt = &until
	} else {
		due := createdAt.Add(30 * time.Minute)
		b.Status = domain.BookingStatusPending
		b.PaymentDueAt = &due
	}
	p := &domain.Payment{
		ID:                    uuid.New().String(),
		BookingID:             &b.ID,
		ProviderTransactionID: "txn_" + uuid.New().String(),
		AmountPaise:           b.AmountDue(),
		Status:                domain.PaymentStatusPending,
		CreatedAt:             createdAt,
		UpdatedAt:             createdAt,
	}
	return b, p
}

func countAudit(t *testing.T, s *testStore, action domain.AuditAction, target string) int {
	t.Helper()
	var n int
	err := s.db.Master.QueryRow(
		`SELECT count(*) FROM audit_logs WHERE action = $1 AND target_id = $2`, action, target,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

func paymentStatus(t *testing.T, s *testStore, txID string) domain.PaymentStatus {
	t.Helper()
	var status domain.PaymentStatus
	err := s.db.Master.QueryRow(
		`SELECT status FROM payments WHERE provider_transaction_id = $1`, txID,
	).Scan(&status)
	require.NoError(t, err)
	return status
}

func TestCarRepository_CreateWritesLegacyPrices(t *testing.T) {
	s := setupStore(t)
	car := s.createCar(t)

	var perDay, perHour string
	err := s.db.Master.QueryRow(
		`SELECT price_per_day::text, price_per_hour::text FROM cars WHERE id = $1`, car.ID,
	).Scan(&perDay, &perHour)
	require.NoError(t, err)
	assert.Equal(t, "2500.50", perDay)
	assert.Equal(t, "125.00", perHour)
	assert.Equal(t, 1, countAudit(t, s, domain.AuditCarCreated, car.ID))

	got, err := s.cars.GetByID(context.Background(), car.ID)
	require.NoError(t, err)
	assert.True(t, got.Available())
}

func TestBookingRepository_CreateAtomic_SingleWinner(t *testing.T) {
	s := setupStore(t)
	car := s.createCar(t)

	const attempts = 20
	users := make([]*domain.User, attempts)
	for i := range users {
		users[i] = s.createUser(t)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []*domain.Booking
		conflicts int
		other     []error
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(u *domain.User) {
			defer wg.Done()
			<-start
			b, p := newBooking(car.ID, u.ID, domain.PayModeHold, time.Now().UTC())
			err := s.bookings.CreateAtomic(context.Background(), b, p)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, b)
			case errors.Is(err, domain.ErrCarAlreadyBooked):
				conflicts++
			default:
				other = append(other, err)
			}
		}(users[i])
	}
	close(start)
	wg.Wait()

	require.Empty(t, other)
	require.Len(t, winners, 1)
	assert.Equal(t, attempts-1, conflicts)

	got, err := s.cars.GetByID(context.Background(), car.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CarStatusHeld, got.Status)
	require.NotNil(t, got.BookedBy)
	assert.Equal(t, winners[0].UserID, *got.BookedBy)
	assert.Equal(t, 1, countAudit(t, s, domain.AuditCarBooked, car.ID))

	var bookings int
	require.NoError(t, s.db.Master.QueryRow(`SELECT count(*) FROM bookings WHERE car_id = $1`, car.ID).Scan(&bookings))
	assert.Equal(t, 1, bookings)
}

func TestBookingRepository_CreateAtomic_DoubleSubmit(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	car := s.createCar(t)
	user := s.createUser(t)

	results := make(chan error, 2)
	start := make(chan struct{})
	for i := 0; i < 2; i++ {
		go func() {
			<-start
			b, p := newBooking(car.ID, user.ID, domain.PayModeHold, time.Now().UTC())
			results <- s.bookings.CreateAtomic(ctx, b, p)
		}()
	}
	close(start)

	var ok, conflicts int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrCarAlreadyBooked):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)

	// повтор после успешной брони
	b, p := newBooking(car.ID, user.ID, domain.PayModeHold, time.Now().UTC())
	err := s.bookings.CreateAtomic(ctx, b, p)
	require.ErrorIs(t, err, domain.ErrCarAlreadyBooked)
	assert.Equal(t, "Car is already booked", err.Error())

	var bookings, payments int
	require.NoError(t, s.db.Master.QueryRow(`SELECT count(*) FROM bookings WHERE car_id = $1`, car.ID).Scan(&bookings))
	require.NoError(t, s.db.Master.QueryRow(
		`SELECT count(*) FROM payments p JOIN bookings b ON b.id = p.booking_id WHERE b.car_id = $1`, car.ID,
	).Scan(&payments))
	assert.Equal(t, 1, bookings)
	assert.Equal(t, 1, payments)
}

func TestBookingRepository_CreateAtomic_Errors(t *testing.T) {
	s := setupStore(t)
	user := s.createUser(t)
	now := time.Now().UTC()

	b, p := newBooking(uuid.New().String(), user.ID, domain.PayModeHold, now)
	assert.ErrorIs(t, s.bookings.CreateAtomic(context.Background(), b, p), domain.ErrCarNotFound)

	car := s.createCar(t)
	b, p = newBooking(car.ID, uuid.New().String(), domain.PayModeFull, now)
	assert.ErrorIs(t, s.bookings.CreateAtomic(context.Background(), b, p), domain.ErrUserNotFound)

	b, p = newBooking(car.ID, "not-a-uuid", domain.PayModeHold, now)
	assert.ErrorIs(t, s.bookings.CreateAtomic(context.Background(), b, p), domain.ErrValidation)

	got, err := s.cars.GetByID(context.Background(), car.ID)
	require.NoError(t, err)
	assert.True(t, got.Available())
}

func TestBookingRepository_ExpireReleasesCar(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	car := s.createCar(t)
	user := s.createUser(t)

	created := time.Now().UTC().Add(-25 * time.Hour)
	b, p := newBooking(car.ID, user.ID, domain.PayModeHold, created)
	require.NoError(t, s.bookings.CreateAtomic(ctx, b, p))

	now := time.Now().UTC()
	overdue, err := s.bookings.ListExpired(ctx, now, 100)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, b.ID, overdue[0].ID)
	assert.Equal(t, domain.Addons{Driver: true}, overdue[0].Addons)

	expired, err := s.bookings.Expire(ctx, b.ID, now)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusExpired, expired.Status)
	assert.Nil(t, expired.HoldExpiresAt)

	gotCar, err := s.cars.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.True(t, gotCar.Available())
	assert.Nil(t, gotCar.BookedBy)
	assert.Nil(t, gotCar.BookedAt)

	assert.Equal(t, domain.PaymentStatusFailed, paymentStatus(t, s, p.ProviderTransactionID))
	assert.Equal(t, 1, countAudit(t, s, domain.AuditCarReleased, car.ID))

	// повторный прогон ничего не меняет
	_, err = s.bookings.Expire(ctx, b.ID, now)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)
	overdue, err = s.bookings.ListExpired(ctx, now, 100)
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestBookingRepository_ListExpired_SkipsLiveHolds(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	live, lp := newBooking(s.createCar(t).ID, s.createUser(t).ID, domain.PayModeHold, time.Now().UTC())
	require.NoError(t, s.bookings.CreateAtomic(ctx, live, lp))
	unpaid, up := newBooking(s.createCar(t).ID, s.createUser(t).ID, domain.PayModeFull, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, s.bookings.CreateAtomic(ctx, unpaid, up))

	overdue, err := s.bookings.ListExpired(ctx, time.Now().UTC(), 100)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, unpaid.ID, overdue[0].ID)
}

func TestPaymentRepository_CompleteConfirmsOnce(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	car := s.createCar(t)
	user := s.createUser(t)

	b, p := newBooking(car.ID, user.ID, domain.PayModeHold, time.Now().UTC())
	require.NoError(t, s.bookings.CreateAtomic(ctx, b, p))

	res, err := s.payments.Complete(ctx, p.ProviderTransactionID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentOutcomeConfirmed, res.Outcome)

	got, err := s.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	assert.Nil(t, got.HoldExpiresAt)

	gotCar, err := s.cars.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CarStatusBooked, gotCar.Status)

	res, err = s.payments.Complete(ctx, p.ProviderTransactionID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentOutcomeDuplicate, res.Outcome)
	assert.Equal(t, 1, countAudit(t, s, domain.AuditBookingConfirmed, b.ID))

	res, err = s.payments.Fail(ctx, p.ProviderTransactionID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentOutcomeDuplicate, res.Outcome)
	assert.Equal(t, domain.PaymentStatusCompleted, res.Payment.Status)
}

func TestPaymentRepository_LatePaymentAfterExpiry(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	car := s.createCar(t)
	user := s.createUser(t)

	b, p := newBooking(car.ID, user.ID, domain.PayModeFull, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, s.bookings.CreateAtomic(ctx, b, p))
	_, err := s.bookings.Expire(ctx, b.ID, time.Now().UTC())
	require.NoError(t, err)

	res, err := s.payments.Complete(ctx, p.ProviderTransactionID, time.Now().UTC())

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentOutcomeLate, res.Outcome)

	got, err := s.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusExpired, got.Status)

	gotCar, err := s.cars.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.True(t, gotCar.Available())
}

func TestPaymentRepository_FailKeepsHold(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	b, p := newBooking(s.createCar(t).ID, s.createUser(t).ID, domain.PayModeHold, time.Now().UTC())
	require.NoError(t, s.bookings.CreateAtomic(ctx, b, p))

	res, err := s.payments.Fail(ctx, p.ProviderTransactionID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentOutcomeFailed, res.Outcome)

	got, err := s.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusHeld, got.Status)

	_, err = s.payments.Complete(ctx, "txn_unknown", time.Now().UTC())
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestBookingRepository_Cancel(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	car := s.createCar(t)
	owner := s.createUser(t)

	b, p := newBooking(car.ID, owner.ID, domain.PayModeHold, time.Now().UTC())
	require.NoError(t, s.bookings.CreateAtomic(ctx, b, p))

	_, err := s.bookings.Cancel(ctx, b.ID, uuid.New().String(), "someone", domain.AuditBookingCancelled)
	assert.ErrorIs(t, err, domain.ErrBookingNotOwned)

	cancelled, err := s.bookings.Cancel(ctx, b.ID, owner.ID, owner.ID, domain.AuditBookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	gotCar, err := s.cars.GetByID(ctx, car.ID)
	require.NoError(t, err)
	assert.True(t, gotCar.Available())

	_, err = s.bookings.Cancel(ctx, b.ID, "", "admin", domain.AuditAdminOverride)
	assert.ErrorIs(t, err, domain.ErrBookingNotActive)

	// машину можно забронировать снова
	b2, p2 := newBooking(car.ID, owner.ID, domain.PayModeFull, time.Now().UTC())
	require.NoError(t, s.bookings.CreateAtomic(ctx, b2, p2))
}

func TestUserRepository_CreateAndUpdatePhone(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	u := s.createUser(t)

	dup := &domain.User{ID: uuid.New().String(), Username: u.Username, CreatedAt: time.Now().UTC()}
	assert.ErrorIs(t, s.users.Create(ctx, dup), domain.ErrUsernameTaken)

	byName, err := s.users.GetByUsername(ctx, u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	_, err = s.users.GetByUsername(ctx, "nobody-"+uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, s.users.UpdatePhone(ctx, u.ID, "+919876543210"))
	got, err := s.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.HasPhone())

	assert.ErrorIs(t, s.users.UpdatePhone(ctx, uuid.New().String(), "+919876543210"), domain.ErrUserNotFound)
}
