package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/muhammadheryan/buyer-leads/model"
	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionPrefix   = "session:"
	rateLimitPrefix = "ratelimit:"
	tagCacheKey     = "buyers:tags"
)

// RateLimit is the state of a fixed-window counter after one hit.
type RateLimit struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetIn   time.Duration
}

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	SetSession(ctx context.Context, sessionID string, actor model.Actor, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*model.Actor, error)
	DeleteSession(ctx context.Context, sessionID string) error
	HitRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (RateLimit, error)
	GetTags(ctx context.Context) ([]string, bool, error)
	SetTags(ctx context.Context, tags []string, ttl time.Duration) error
	DeleteTags(ctx context.Context) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client
// turns every call into a no-op.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// SetSession stores the actor behind a token id with TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, actor model.Actor, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	b, err := json.Marshal(actor)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionPrefix+sessionID, b, ttl).Err()
}

// GetSession returns nil, nil when the session expired or was revoked.
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.Actor, error) {
	if r.client == nil {
		return nil, nil
	}
	val, err := r.client.Get(ctx, sessionPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var actor model.Actor
	if err := json.Unmarshal(val, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// HitRateLimit counts one request against key in a fixed window. The window
// starts with the first hit.
func (r *redis) HitRateLimit(ctx context.Context, key string, limit int64, window time.Duration) (RateLimit, error) {
	res := RateLimit{Allowed: true, Limit: limit, Remaining: limit, ResetIn: window}
	if r.client == nil {
		return res, nil
	}

	k := rateLimitPrefix + key
	var (
		incr *goredis.IntCmd
		ttl  *goredis.DurationCmd
	)
	if _, err := r.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		ttl = p.PTTL(ctx, k)
		return nil
	}); err != nil {
		return res, err
	}

	count := incr.Val()
	resetIn := ttl.Val()
	if resetIn <= 0 {
		if err := r.client.PExpire(ctx, k, window).Err(); err != nil {
			return res, err
		}
		resetIn = window
	}

	res.ResetIn = resetIn
	res.Remaining = limit - count
	if res.Remaining < 0 {
		res.Remaining = 0
	}
	res.Allowed = count <= limit
	return res, nil
}

// GetTags reports ok=false on a cache miss.
func (r *redis) GetTags(ctx context.Context) ([]string, bool, error) {
	if r.client == nil {
		return nil, false, nil
	}
	val, err := r.client.Get(ctx, tagCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var tags []string
	if err := json.Unmarshal(val, &tags); err != nil {
		return nil, false, err
	}
	return tags, true, nil
}

func (r *redis) SetTags(ctx context.Context, tags []string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, tagCacheKey, b, ttl).Err()
}

func (r *redis) DeleteTags(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, tagCacheKey).Err()
}
