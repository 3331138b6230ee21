package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Result contains the result of a rate limit check
type Result struct {
	Allowed   bool          // Whether the request is allowed
	Remaining int           // Remaining requests in the window
	ResetIn   time.Duration // Time until the window resets
	Limit     int           // The limit for this key
}

// Limiter counts requests per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// DefaultMaxBuckets caps the number of tracked keys. Keys seen once the cap is
// reached share one overflow bucket until a sweep frees room.
const DefaultMaxBuckets = 10000

const overflowKey = "\x00overflow"

type bucket struct {
	count   int
	resetAt time.Time
}

// Memory is an in-process fixed window limiter.
type Memory struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	maxBuckets int
	buckets    map[string]*bucket
	nextSweep  time.Time
	now        func() time.Time
}

// NewMemory allows limit requests per key every window. A limit <= 0 disables limiting.
func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		limit:      limit,
		window:     window,
		maxBuckets: DefaultMaxBuckets,
		buckets:    make(map[string]*bucket),
		now:        time.Now,
	}
}

func (m *Memory) Allow(_ context.Context, key string) (*Result, error) {
	if m.limit <= 0 || m.window <= 0 {
		return &Result{Allowed: true, Remaining: -1, Limit: m.limit}, nil
	}

	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	// At most one full pass per window.
	if !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(m.window)
	}

	w, ok := m.buckets[key]
	if !ok && len(m.buckets) >= m.maxBuckets {
		key = overflowKey
		w, ok = m.buckets[key]
	}
	if !ok || !now.Before(w.resetAt) {
		w = &bucket{resetAt: now.Add(m.window)}
		m.buckets[key] = w
	}

	resetIn := w.resetAt.Sub(now)
	if w.count >= m.limit {
		return &Result{Allowed: false, Remaining: 0, ResetIn: resetIn, Limit: m.limit}, nil
	}

	w.count++
	return &Result{
		Allowed:   true,
		Remaining: m.limit - w.count,
		ResetIn:   resetIn,
		Limit:     m.limit,
	}, nil
}

func (m *Memory) sweep(now time.Time) {
	for key, w := range m.buckets {
		if !now.Before(w.resetAt) {
			delete(m.buckets, key)
		}
	}
}
