package redis

import (
	"context"
	"fmt"
	"time"

	"omar-backend/internal/ratelimit"

	goredis "github.com/redis/go-redis/v9"
)

// Rate limiting key pattern:
// - ratelimit:{ip}:api - window TTL, per-minute request limit

// fixedWindowScript atomically increments and checks a counter
var fixedWindowScript = goredis.NewScript(`
	local key = KEYS[1]
	local limit = tonumber(ARGV[1])
	local window = tonumber(ARGV[2])

	local current = redis.call('GET', key)
	if current == false then
		current = 0
	else
		current = tonumber(current)
	end

	local ttl = redis.call('TTL', key)
	if ttl < 0 then
		ttl = window
	end

	if current < limit then
		redis.call('INCR', key)
		if ttl == window then
			redis.call('EXPIRE', key, window)
		end
		return {1, limit - current - 1, ttl}
	else
		return {0, 0, ttl}
	end
`)

// RateLimiter handles rate limiting using Redis so the counters survive restarts.
type RateLimiter struct {
	client goredis.Scripter
	limit  int
	window time.Duration
}

var _ ratelimit.Limiter = (*RateLimiter)(nil)

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client goredis.Scripter, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow checks if the client identified by key may make another request
func (r *RateLimiter) Allow(ctx context.Context, key string) (*ratelimit.Result, error) {
	if r.limit <= 0 || r.window <= 0 {
		return &ratelimit.Result{Allowed: true, Remaining: -1, Limit: r.limit}, nil
	}

	redisKey := fmt.Sprintf("ratelimit:%s:api", key)
	result, err := fixedWindowScript.Run(ctx, r.client, []string{redisKey}, r.limit, int(r.window.Seconds())).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	return parseResult(result, r.limit)
}

func parseResult(result interface{}, limit int) (*ratelimit.Result, error) {
	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) < 3 {
		return nil, fmt.Errorf("unexpected rate limit result format")
	}

	values := make([]int64, 3)
	for i := range values {
		v, ok := resultSlice[i].(int64)
		if !ok {
			return nil, fmt.Errorf("unexpected rate limit result element %d: %T", i, resultSlice[i])
		}
		values[i] = v
	}

	return &ratelimit.Result{
		Allowed:   values[0] == 1,
		Remaining: int(values[1]),
		ResetIn:   time.Duration(values[2]) * time.Second,
		Limit:     limit,
	}, nil
}
