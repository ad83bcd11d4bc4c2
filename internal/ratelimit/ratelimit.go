package ratelimit

import (
	"context"
	"errors"
	"time"

	"inkwell-api/pkg/redis"
)

// ErrLimited indicates the caller has exceeded the OTP dispatch limits
var ErrLimited = errors.New("too many requests")

const (
	// Minimum gap between two OTP emails to the same address
	minSendInterval = 1 * time.Minute

	// Window-based cap: at most maxPerWindow sends per window
	window       = 2 * time.Hour
	maxPerWindow = 5

	gapKeyPrefix   = "otp:gap:"
	countKeyPrefix = "otp:count:"
)

// Limiter gates OTP email dispatch per recipient and purpose
type Limiter interface {
	Allow(ctx context.Context, email, purpose string) error
}

// RedisLimiter enforces a minimum interval between sends plus a
// per-window cap, keyed on (purpose, email)
type RedisLimiter struct {
	client *redis.Client
}

// New creates a Redis-backed limiter
func New(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow reports whether another OTP may be sent to email for the given
// purpose, recording the send when allowed. Returns ErrLimited when the
// caller must wait; other errors are infrastructure failures.
func (l *RedisLimiter) Allow(ctx context.Context, email, purpose string) error {
	gapKey := gapKeyPrefix + purpose + ":" + email
	ok, err := l.client.SetNX(ctx, gapKey, "1", minSendInterval)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLimited
	}

	countKey := countKeyPrefix + purpose + ":" + email
	count, err := l.client.Incr(ctx, countKey)
	if err != nil {
		return err
	}
	if count == 1 {
		// First send in this window; start the window clock
		if _, err := l.client.Expire(ctx, countKey, window); err != nil {
			return err
		}
	}
	if count > maxPerWindow {
		return ErrLimited
	}

	return nil
}
