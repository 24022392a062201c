package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Phone          *string   `json:"phone"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) HasPhone() bool {
	return u.Phone != nil && *u.Phone != ""
}

type CreateUserInput struct {
	Username       string
	Phone          *string
	TelegramChatID *int64
}
