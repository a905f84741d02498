package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/muhammadheryan/buyer-leads/constant"
	"github.com/muhammadheryan/buyer-leads/model"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRepository(client), mr
}

func TestSession(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()
	actor := model.Actor{ID: "agent-1", Role: constant.RoleAgent}

	require.NoError(t, repo.SetSession(ctx, "jti-1", actor, time.Hour))
	assert.True(t, mr.Exists("session:jti-1"))

	got, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, &actor, got)

	require.NoError(t, repo.DeleteSession(ctx, "jti-1"))
	got, err = repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSession_Expires(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-2", model.Actor{ID: "admin-1", Role: constant.RoleAdmin}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := repo.GetSession(ctx, "jti-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHitRateLimit(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		res, err := repo.HitRateLimit(ctx, "update:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 3-i, res.Remaining)
		assert.Equal(t, int64(3), res.Limit)
		assert.True(t, res.ResetIn > 0 && res.ResetIn <= time.Minute)
	}

	res, err := repo.HitRateLimit(ctx, "update:10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(0), res.Remaining)

	other, err := repo.HitRateLimit(ctx, "update:10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	mr.FastForward(time.Minute + time.Second)
	res, err = repo.HitRateLimit(ctx, "update:10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, int64(2), res.Remaining)
}

func TestTagCache(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, ok, err := repo.GetTags(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetTags(ctx, nil, time.Minute))
	tags, ok, err := repo.GetTags(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, tags)

	require.NoError(t, repo.SetTags(ctx, []string{"hot", "NRI"}, time.Minute))
	tags, ok, err = repo.GetTags(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"hot", "NRI"}, tags)

	require.NoError(t, repo.DeleteTags(ctx))
	_, ok, err = repo.GetTags(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNilClient(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "x", model.Actor{}, time.Minute))
	got, err := repo.GetSession(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, got)

	res, err := repo.HitRateLimit(ctx, "k", 10, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	_, ok, err := repo.GetTags(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
