package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CarBooker/internal/domain"
)

// DraftStore keeps one draft record per browsing session.
// Get returns domain.ErrDraftNotFound when nothing is stored.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, rec *domain.DraftRecord) error
	Get(ctx context.Context, sessionID string) (*domain.DraftRecord, error)
	Clear(ctx context.Context, sessionID string) error
}

// ResumeLocker guards the post-login resume of one session. AcquireResume
// returns an empty token when another resume holds the lock; ReleaseResume
// only drops the lock if it still carries the given token.
type ResumeLocker interface {
	AcquireResume(ctx context.Context, sessionID string, ttl time.Duration) (string, error)
	ReleaseResume(ctx context.Context, sessionID, token string) error
}
