// Package cache stores the most recent statistics summary so repeated reads
// do not rescan every post.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"
)

type Stats interface {
	Get(ctx context.Context) (model.BlogStats, bool, error)
	Set(ctx context.Context, stats model.BlogStats) error
	Invalidate(ctx context.Context) error
}

type MemoryStats struct {
	mu        sync.Mutex
	ttl       time.Duration
	value     model.BlogStats
	expiresAt time.Time
	valid     bool
	now       func() time.Time
}

// NewMemory returns an in-process cache. A ttl <= 0 keeps entries until
// they are invalidated.
func NewMemory(ttl time.Duration) *MemoryStats {
	return &MemoryStats{ttl: ttl, now: time.Now}
}

func (m *MemoryStats) Get(ctx context.Context) (model.BlogStats, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid {
		return model.BlogStats{}, false, nil
	}
	if m.ttl > 0 && m.now().After(m.expiresAt) {
		m.valid = false
		return model.BlogStats{}, false, nil
	}
	return m.value, true, nil
}

func (m *MemoryStats) Set(ctx context.Context, stats model.BlogStats) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value = stats
	m.valid = true
	m.expiresAt = m.now().Add(m.ttl)
	return nil
}

func (m *MemoryStats) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.valid = false
	m.value = model.BlogStats{}
	return nil
}
