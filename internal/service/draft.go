package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stpnv0/CarBooker/internal/metrics"
	"github.com/stpnv0/CarBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultResumeLockTTL = 10 * time.Second

type DraftConfig struct {
	LoginURL      string
	ResumeLockTTL time.Duration
	Location      *time.Location
}

// DraftService keeps a session's in-progress booking across the login
// redirect and decides where the flow continues afterwards.
type DraftService struct {
	store    ports.DraftStore
	locker   ports.ResumeLocker
	userRepo ports.UserRepo
	carRepo  ports.CarRepo
	logger   logger.Logger
	cfg      DraftConfig
	now      func() time.Time
}

func NewDraftService(
	store ports.DraftStore,
	locker ports.ResumeLocker,
	userRepo ports.UserRepo,
	carRepo ports.CarRepo,
	logger logger.Logger,
	cfg DraftConfig,
) *DraftService {
	if cfg.ResumeLockTTL <= 0 {
		cfg.ResumeLockTTL = defaultResumeLockTTL
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &DraftService{
		store:    store,
		locker:   locker,
		userRepo: userRepo,
		carRepo:  carRepo,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// SaveAndRedirect stores the draft for the session and returns the login URL
// that brings the user back to returnTo.
func (s *DraftService) SaveAndRedirect(
	ctx context.Context,
	sessionID string,
	draft domain.Draft,
	opts domain.SaveDraftOptions,
) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("%w: session id is required", domain.ErrValidation)
	}
	if draft.CarID == "" {
		return "", fmt.Errorf("%w: car_id is required", domain.ErrValidation)
	}

	loginURL, err := url.Parse(s.cfg.LoginURL)
	if err != nil {
		return "", fmt.Errorf("parse login url: %w", err)
	}

	rec := &domain.DraftRecord{
		Draft:             draft,
		SavedAt:           s.now().UTC(),
		RedirectToProfile: opts.RedirectToProfile,
	}
	if err = s.store.Save(ctx, sessionID, rec); err != nil {
		return "", fmt.Errorf("save draft: %w", err)
	}

	returnTo := opts.ReturnTo
	if returnTo == "" {
		returnTo = "/"
	}
	q := loginURL.Query()
	q.Set("returnTo", returnTo)
	if opts.RedirectToProfile {
		q.Set("next", "profile")
	}
	loginURL.RawQuery = q.Encode()

	return loginURL.String(), nil
}

// Resume picks the saved draft back up after login. Concurrent resumes for
// one session are collapsed: only the first proceeds, the rest get
// domain.ErrResumeInProgress. Stale drafts are discarded.
func (s *DraftService) Resume(ctx context.Context, sessionID, userID string) (*domain.ResumeResult, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrValidation)
	}
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	token, err := s.locker.AcquireResume(ctx, sessionID, s.cfg.ResumeLockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire resume lock: %w", err)
	}
	if token == "" {
		return nil, domain.ErrResumeInProgress
	}
	defer func() {
		if err := s.locker.ReleaseResume(context.WithoutCancel(ctx), sessionID, token); err != nil {
			s.logger.Error("failed to release resume lock",
				logger.String("session_id", sessionID),
				logger.String("error", err.Error()),
			)
		}
	}()

	rec, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	if rec.Stale(s.now()) {
		if err = s.store.Clear(ctx, sessionID); err != nil {
			s.logger.Error("failed to clear stale draft",
				logger.String("session_id", sessionID),
				logger.String("error", err.Error()),
			)
		}
		s.logger.Info("stale draft discarded",
			logger.String("session_id", sessionID),
			logger.String("car_id", rec.Draft.CarID),
		)
		return nil, domain.ErrDraftNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	res := &domain.ResumeResult{
		Draft:              rec.Draft,
		ProfileJustUpdated: rec.ProfileJustUpdated,
	}
	switch {
	case !user.HasPhone():
		res.Step = domain.ResumeStepCollectPhone
	case !rec.Draft.DatesComplete():
		res.Step = domain.ResumeStepCollectDates
	default:
		res.Step = domain.ResumeStepAcceptTerms
	}

	// флаги одноразовые
	if rec.ProfileJustUpdated && res.Step != domain.ResumeStepCollectPhone {
		rec.ProfileJustUpdated = false
		rec.RedirectToProfile = false
		if err = s.store.Save(ctx, sessionID, rec); err != nil {
			return nil, fmt.Errorf("save draft flags: %w", err)
		}
	}

	metrics.DraftResumes.WithLabelValues(string(res.Step)).Inc()
	s.logger.Info("draft resumed",
		logger.String("session_id", sessionID),
		logger.String("user_id", userID),
		logger.String("step", string(res.Step)),
	)

	return res, nil
}

// MarkProfileUpdated is called once the missing phone number was collected.
func (s *DraftService) MarkProfileUpdated(ctx context.Context, sessionID string) error {
	rec, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get draft: %w", err)
	}

	rec.RedirectToProfile = false
	rec.ProfileJustUpdated = true
	if err = s.store.Save(ctx, sessionID, rec); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}

	return nil
}

// Clear drops the draft and its flags. Clearing an empty session is not an error.
func (s *DraftService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrDraftNotFound) {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Quote prices a selection from the car's current per-day rate.
func (s *DraftService) Quote(
	ctx context.Context,
	carID string,
	pickup, ret domain.DateTime,
	addons domain.Addons,
) (*domain.Totals, error) {
	start, err := pickup.In(s.cfg.Location)
	if err != nil {
		return nil, err
	}
	end, err := ret.In(s.cfg.Location)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateWindow(start, end); err != nil {
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("get car: %w", err)
	}

	totals := domain.Quote(car.PricePerDayPaise, start, end, addons)
	return &totals, nil
}
