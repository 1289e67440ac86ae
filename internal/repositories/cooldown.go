package repositories

import (
	"fmt"
	"time"

	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sornchai2025/buildmate-auth/internal/logger"
)

// ResendCooldownRepository tracks per-email resend cooldowns in Redis.
// The identity provider does not rate-limit verification resends itself,
// so the gateway enforces a window here.
type ResendCooldownRepository struct {
	client *redis.Client
	window time.Duration
}

// NewResendCooldownRepository creates a new repository with the given cooldown window.
func NewResendCooldownRepository(client *redis.Client, window time.Duration) *ResendCooldownRepository {
	return &ResendCooldownRepository{
		client: client,
		window: window,
	}
}

// Allow reports whether a resend is permitted for the email. The first
// call inside a window claims it atomically (SETNX); subsequent calls
// return false until the key expires.
func (r *ResendCooldownRepository) Allow(ctx context.Context, email string) (bool, error) {
	key := fmt.Sprintf("resend_cooldown:%s", email)

	ok, err := r.client.SetNX(ctx, key, "1", r.window).Result()

	logger.Log.Infow("cooldown check",
		"key", key,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return ok, nil
}
