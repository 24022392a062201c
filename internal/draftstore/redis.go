package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/CarBooker/internal/domain"
)

const keyPrefix = "draft:"

// releaseScript deletes the resume lock only while it still holds the
// caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisStore keeps one draft record per browsing session. Keys expire with
// the staleness window, so abandoned drafts disappear on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = domain.DraftStaleAfter
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and pings the server.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, rec *domain.DraftRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}

	if err = s.client.Set(ctx, draftKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("set draft: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.DraftRecord, error) {
	raw, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("get draft: %w", err)
	}

	var rec domain.DraftRecord
	if err = json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}

	return &rec, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID), lockKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// AcquireResume takes the session's resume lock and returns its token, or
// an empty token when another resume holds it.
func (s *RedisStore) AcquireResume(ctx context.Context, sessionID string, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	ok, err := s.client.SetNX(ctx, lockKey(sessionID), token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("acquire resume lock: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// ReleaseResume is a no-op when the lock expired and was taken by someone else.
func (s *RedisStore) ReleaseResume(ctx context.Context, sessionID, token string) error {
	if err := releaseScript.Run(ctx, s.client, []string{lockKey(sessionID)}, token).Err(); err != nil {
		return fmt.Errorf("release resume lock: %w", err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return keyPrefix + sessionID
}

func lockKey(sessionID string) string {
	return keyPrefix + sessionID + ":resume"
}
