// Package ratelimit provides the in-memory rate limiter guarding the control surface.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/bnema/faultline/internal/boundaries/out"
)

// DefaultIdleTTL is how long an unused per-key limiter is kept.
const DefaultIdleTTL = 10 * time.Minute

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore is an in-memory rate limiter implementation using golang.org/x/time/rate.
// Each unique key gets its own independent rate limiter.
type MemoryStore struct {
	limiters map[string]*entry
	mu       sync.Mutex
	rps      float64
	burst    int
	now      func() time.Time
	log      *log.Logger
}

// NewMemoryStore creates a new in-memory rate limiter store.
func NewMemoryStore(rps float64, burst int, logger *log.Logger) *MemoryStore {
	return &MemoryStore{
		limiters: make(map[string]*entry),
		rps:      rps,
		burst:    burst,
		now:      time.Now,
		log:      logger.With("adapter", "ratelimit"),
	}
}

// Allow checks if a request identified by key is allowed.
func (s *MemoryStore) Allow(_ context.Context, key string) bool {
	allowed := s.getLimiter(key).AllowN(s.now(), 1)
	if !allowed {
		s.log.Debug("request rate limited", "key", key)
	}
	return allowed
}

// AllowN checks if n requests identified by key are allowed.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	return s.getLimiter(key).AllowN(s.now(), n)
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

// Evict drops limiters not used within ttl and returns how many were removed.
func (s *MemoryStore) Evict(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	removed := 0
	for key, e := range s.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(s.limiters, key)
			removed++
		}
	}
	return removed
}

// RunEviction evicts idle limiters every interval until ctx is done.
func (s *MemoryStore) RunEviction(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Evict(ttl); n > 0 {
				s.log.Debug("evicted idle limiters", "count", n)
			}
		}
	}
}

// getLimiter returns the rate limiter for the given key, creating one if it doesn't exist.
func (s *MemoryStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.limiters[key]
	if !exists {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.limiters[key] = e
	}
	e.lastSeen = s.now()
	return e.limiter
}
