package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResendThrottle bounds verification-code resends per user to max sends
// inside a sliding window. The counter lives in redis so the limit holds
// across instances.
type ResendThrottle struct {
	client redis.UniversalClient
	window time.Duration
	max    int
}

func NewResendThrottle(client redis.UniversalClient, window time.Duration, max int) *ResendThrottle {
	return &ResendThrottle{
		client: client,
		window: window,
		max:    max,
	}
}

func (t *ResendThrottle) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "verification:resend:" + key

	count, err := t.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("incr resend counter failed: %w", err)
	}

	if count == 1 {
		if err := t.client.Expire(ctx, redisKey, t.window).Err(); err != nil {
			return false, fmt.Errorf("expire resend counter failed: %w", err)
		}
	}

	return count <= int64(t.max), nil
}
