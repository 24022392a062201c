package draftstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CarBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupStore(t *testing.T) *RedisStore {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test, skipped in -short mode")
	}

	ctx := context.Background()
	ctr, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	url, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, time.Hour)
}

func TestRedisStore_SaveGet(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	sid := uuid.New().String()

	rec := &domain.DraftRecord{
		Draft: domain.Draft{
			CarID:  uuid.New().String(),
			Pickup: domain.DateTime{Date: "2026-03-12", Time: "10:00"},
			Return: domain.DateTime{Date: "2026-03-14", Time: "10:00"},
			Addons: domain.Addons{GPS: true},
			Totals: domain.Totals{Days: 2, Base: 500000, Addons: 40000, Subtotal: 540000, ServiceCharge: 6000, Total: 546000},
		},
		SavedAt:           time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
		RedirectToProfile: true,
	}
	require.NoError(t, s.Save(ctx, sid, rec))

	got, err := s.Get(ctx, sid)

	require.NoError(t, err)
	assert.Equal(t, rec.Draft, got.Draft)
	assert.True(t, rec.SavedAt.Equal(got.SavedAt))
	assert.True(t, got.RedirectToProfile)
	assert.False(t, got.ProfileJustUpdated)

	ttl, err := s.client.TTL(ctx, draftKey(sid)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisStore_GetMissing(t *testing.T) {
	s := setupStore(t)

	_, err := s.Get(context.Background(), "no-such-session")

	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRedisStore_ResumeLock(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	sid := uuid.New().String()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		tokens []string
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := s.AcquireResume(ctx, sid, time.Minute)
			if assert.NoError(t, err) && token != "" {
				mu.Lock()
				tokens = append(tokens, token)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Len(t, tokens, 1)

	require.NoError(t, s.ReleaseResume(ctx, sid, tokens[0]))
	token, err := s.AcquireResume(ctx, sid, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRedisStore_ReleaseKeepsNewerHolder(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	sid := uuid.New().String()

	stale, err := s.AcquireResume(ctx, sid, 200*time.Millisecond)
	require.NoError(t, err)
	require.NotEmpty(t, stale)

	// первая попытка пережила свой TTL
	time.Sleep(400 * time.Millisecond)
	current, err := s.AcquireResume(ctx, sid, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, current)
	assert.NotEqual(t, stale, current)

	require.NoError(t, s.ReleaseResume(ctx, sid, stale))

	got, err := s.client.Get(ctx, lockKey(sid)).Result()
	require.NoError(t, err)
	assert.Equal(t, current, got)
	token, err := s.AcquireResume(ctx, sid, time.Minute)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.ReleaseResume(ctx, sid, current))
	token, err = s.AcquireResume(ctx, sid, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestRedisStore_ClearDropsDraftAndLock(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()
	sid := uuid.New().String()

	require.NoError(t, s.Save(ctx, sid, &domain.DraftRecord{SavedAt: time.Now().UTC()}))
	token, err := s.AcquireResume(ctx, sid, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, s.Clear(ctx, sid))

	_, err = s.Get(ctx, sid)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	token, err = s.AcquireResume(ctx, sid, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// пустая сессия
	assert.NoError(t, s.Clear(ctx, "no-such-session"))
}
