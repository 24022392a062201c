package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/service/ports"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	var phone *string
	if input.Phone != nil && *input.Phone != "" {
		p, err := normalizePhone(*input.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}

	// гонку двух регистраций ловит уникальный индекс в репозитории
	existing, err := s.repo.GetByUsername(ctx, input.Username)
	switch {
	case err == nil && existing != nil:
		return nil, domain.ErrUsernameTaken
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check username: %w", err)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       input.Username,
		Phone:          phone,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// UpdatePhone stores the number collected before a booking can resume.
func (s *UserService) UpdatePhone(ctx context.Context, id, phone string) error {
	p, err := normalizePhone(phone)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePhone(ctx, id, p); err != nil {
		return fmt.Errorf("update phone: %w", err)
	}

	return nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func normalizePhone(phone string) (string, error) {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	if p == "" {
		return "", fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrPhoneRequired)
	}
	if !phonePattern.MatchString(p) {
		return "", fmt.Errorf("%w: invalid phone number", domain.ErrValidation)
	}
	return p, nil
}
