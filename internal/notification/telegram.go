package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sony/gobreaker"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	dateFormat = "02.01.2006 15:04"

	breakerFailures = 5
	breakerTimeout  = 30 * time.Second
)

type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

func NewTelegramNotifier(token string, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "telegram",
		Timeout: breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				logger.String("name", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})

	return &TelegramNotifier{bot: bot, breaker: breaker, logger: log}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	var text string
	if b.Status == domain.BookingStatusHeld {
		text = fmt.Sprintf(
			"*Car held for you!*\n\nCar: %s\nPickup (UTC): %s\nReturn (UTC): %s\n"+
				"Advance due: %s\nPay before %s or the hold is released.",
			car.Name, b.StartAt.Format(dateFormat), b.EndAt.Format(dateFormat),
			formatAmount(b.HoldAmount, b.Currency), b.HoldExpiresAt.Format(dateFormat),
		)
	} else {
		text = fmt.Sprintf(
			"*Car booked!*\n\nCar: %s\nPickup (UTC): %s\nReturn (UTC): %s\nAmount due: %s",
			car.Name, b.StartAt.Format(dateFormat), b.EndAt.Format(dateFormat),
			formatAmount(b.TotalAmount, b.Currency),
		)
	}
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\nCar: %s\nPickup (UTC): %s\nReturn (UTC): %s",
		car.Name, b.StartAt.Format(dateFormat), b.EndAt.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking expired (payment not received in time)*\n\nCar: %s\nPickup (UTC): %s",
		car.Name, b.StartAt.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, car *domain.Car, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nCar: %s\nPickup (UTC): %s",
		car.Name, b.StartAt.Format(dateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	_, err := n.breaker.Execute(func() (interface{}, error) {
		return n.bot.Send(msg)
	})
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func formatAmount(paise int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", paise/100, paise%100, currency)
}
