package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Booking   BookingConfig   `yaml:"booking"`
	Draft     DraftConfig     `yaml:"draft"`
	Auth      AuthConfig      `yaml:"auth"`
	Payment   PaymentConfig   `yaml:"payment"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Location  LocationConfig  `yaml:"location"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"carbooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"20"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0" validate:"required"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type BookingConfig struct {
	PaymentWindow time.Duration `yaml:"payment_window" env:"BOOKING_PAYMENT_WINDOW" env-default:"30m" validate:"gt=0"`
	SweepBatch    int           `yaml:"sweep_batch"    env:"BOOKING_SWEEP_BATCH"    env-default:"500" validate:"min=1"`
}

type DraftConfig struct {
	StaleAfter    time.Duration `yaml:"stale_after"     env:"DRAFT_STALE_AFTER"     env-default:"24h" validate:"gt=0"`
	ResumeLockTTL time.Duration `yaml:"resume_lock_ttl" env:"DRAFT_RESUME_LOCK_TTL" env-default:"10s" validate:"gt=0"`
}

type AuthConfig struct {
	LoginURL   string `yaml:"login_url"   env:"AUTH_LOGIN_URL"   env-default:"/login"`
	AdminToken string `yaml:"admin_token" env:"AUTH_ADMIN_TOKEN" env-default:""`
}

type PaymentConfig struct {
	WebhookSecret string `yaml:"webhook_secret" env:"PAYMENT_WEBHOOK_SECRET" env-default:""`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// RabbitMQConfig: пустой URL отключает публикацию событий.
type RabbitMQConfig struct {
	URL      string `yaml:"url"      env:"RABBITMQ_URL"      env-default:""`
	Exchange string `yaml:"exchange" env:"RABBITMQ_EXCHANGE" env-default:"carbooker.events"`
}

type LocationConfig struct {
	TimeZone string `yaml:"time_zone" env:"TIME_ZONE" env-default:"Asia/Kolkata"`
}

// Load returns the zone used to interpret date/time pairs from the client.
func (l LocationConfig) Load() (*time.Location, error) {
	if l.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", l.TimeZone, err)
	}
	return loc, nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
