package repository

import (
	"context"
	"testing"
	"time"
	"vrukshaAdmin/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	repo, err := NewSessionRepository(rdb, 30*time.Minute)
	require.NoError(t, err)
	return repo, mr
}

func TestNewSessionRepositoryRequiresConn(t *testing.T) {
	_, err := NewSessionRepository(nil, time.Minute)
	require.Error(t, err)
}

func TestSessionRoundtrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := Session{
		Token:    "t1",
		Identity: models.Identity{Id: "u1", Email: "asha@vruksha.in", Name: "Asha", Role: "admin"},
	}
	id, err := repo.CreateSession(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, exists, err := repo.GetSession(ctx, id)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, in, out)
}

func TestCreateSessionRejectsPartialLogin(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.CreateSession(context.Background(), Session{Token: "t1"})
	assert.ErrorIs(t, err, models.ErrServerError)

	_, err = repo.CreateSession(context.Background(), Session{
		Identity: models.Identity{Id: "u1"},
	})
	assert.ErrorIs(t, err, models.ErrServerError)
}

func TestGetSessionMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, exists, err := repo.GetSession(context.Background(), "never-created")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetSessionDropsIncompleteRecord(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	mr.HSet("adminSession:broken", "token", "t1")

	_, exists, err := repo.GetSession(ctx, "broken")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.False(t, mr.Exists("adminSession:broken"))
}

func TestDeleteSessionIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, Session{
		Token:    "t1",
		Identity: models.Identity{Id: "u1"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteSession(ctx, id))
	require.NoError(t, repo.DeleteSession(ctx, id))

	_, exists, err := repo.GetSession(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSessionExpiry(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, Session{
		Token:    "t1",
		Identity: models.Identity{Id: "u1"},
	})
	require.NoError(t, err)

	mr.FastForward(31 * time.Minute)

	_, exists, err := repo.GetSession(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRefreshSessionExtendsTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, Session{
		Token:    "t1",
		Identity: models.Identity{Id: "u1"},
	})
	require.NoError(t, err)

	mr.FastForward(20 * time.Minute)
	require.NoError(t, repo.RefreshSession(ctx, id))
	mr.FastForward(20 * time.Minute)

	_, exists, err := repo.GetSession(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)
}
