package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/CarBooker/internal/config"
	"github.com/stpnv0/CarBooker/internal/draftstore"
	"github.com/stpnv0/CarBooker/internal/handler"
	"github.com/stpnv0/CarBooker/internal/middleware"
	"github.com/stpnv0/CarBooker/internal/notification"
	"github.com/stpnv0/CarBooker/internal/repository"
	"github.com/stpnv0/CarBooker/internal/router"
	"github.com/stpnv0/CarBooker/internal/scheduler"
	"github.com/stpnv0/CarBooker/internal/service"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *notification.AMQPPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CarBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client, err := draftstore.Connect(context.Background(), a.cfg.Redis.URL)
	if err != nil {
		return err
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", client.Options().Addr),
	)

	return nil
}

func (a *App) initNotifier() (ports.BookingNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}
	notifiers := notification.Multi{tg}

	if a.cfg.RabbitMQ.URL == "" {
		a.log.Warn("rabbitmq url is empty, booking events disabled")
		return notifiers, nil
	}

	pub, err := notification.NewAMQPPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return nil, fmt.Errorf("init rabbitmq: %w", err)
	}
	a.publisher = pub

	return append(notifiers, pub), nil
}

func (a *App) initServices() error {
	carRepo := repository.NewCarRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	drafts := draftstore.NewRedisStore(a.redis, a.cfg.Draft.StaleAfter)

	n, err := a.initNotifier()
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	loc, err := a.cfg.Location.Load()
	if err != nil {
		return err
	}

	carService := service.NewCarService(carRepo)
	userService := service.NewUserService(userRepo)
	bookingService := service.NewBookingService(
		bookingRepo, carRepo, userRepo, n, a.log,
		service.WithPaymentWindow(a.cfg.Booking.PaymentWindow),
		service.WithSweepBatch(a.cfg.Booking.SweepBatch),
	)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, carRepo, userRepo, n, a.log)
	draftService := service.NewDraftService(drafts, drafts, userRepo, carRepo, a.log, service.DraftConfig{
		LoginURL:      a.cfg.Auth.LoginURL,
		ResumeLockTTL: a.cfg.Draft.ResumeLockTTL,
		Location:      loc,
	})

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		carService,
		bookingService,
		paymentService,
		draftService,
		userService,
		handler.Config{
			Location:      loc,
			WebhookSecret: a.cfg.Payment.WebhookSecret,
		},
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminOnly(a.cfg.Auth.AdminToken),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("close rabbitmq", logger.String("error", err.Error()))
		}
	}

	if err := a.redis.Close(); err != nil {
		a.log.Warn("close redis", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
