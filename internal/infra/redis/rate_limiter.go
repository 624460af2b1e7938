package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter throttles chat commands with a fixed window per key. The
// counters live in redis so every polling worker shares the same budget.
type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) *RateLimiter {
	return &RateLimiter{client: client}
}

// Allow counts one hit against key and reports whether the caller is still
// within limit for the current window. The first hit arms the expiry.
func (r *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := r.client.Incr(ctx, key)
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, key, window); err != nil {
			return false, err
		}
	}
	return count <= int64(limit), nil
}

// ChatCommandKey scopes the window to one chat and one command, so a flood
// of /order requests cannot starve /help for the same chat.
func ChatCommandKey(chatID int64, command string) string {
	return fmt.Sprintf("rate_limit:%d:%s", chatID, command)
}
