package stats

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/alphabot-ai/bloglist/internal/cache"
	"github.com/alphabot-ai/bloglist/internal/model"
)

type BlogLister interface {
	ListAllBlogs(ctx context.Context) ([]model.Blog, error)
}

// Service serves summaries of the stored posts, recomputing them only after
// a write or once the cached value expires.
type Service struct {
	blogs BlogLister
	cache cache.Stats

	// gen is bumped by every Invalidate. A summary computed under an older
	// generation is returned but never cached.
	mu  sync.Mutex
	gen atomic.Uint64
}

func NewService(blogs BlogLister, c cache.Stats) *Service {
	if c == nil {
		c = cache.NewMemory(0)
	}
	return &Service{blogs: blogs, cache: c}
}

func (s *Service) Summary(ctx context.Context) (model.BlogStats, error) {
	cached, ok, err := s.cache.Get(ctx)
	if err != nil {
		log.Printf("stats cache get: %v", err)
	} else if ok {
		return cached, nil
	}

	gen := s.gen.Load()
	blogs, err := s.blogs.ListAllBlogs(ctx)
	if err != nil {
		return model.BlogStats{}, err
	}
	summary := Summarize(blogs)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen {
		return summary, nil
	}
	if err := s.cache.Set(ctx, summary); err != nil {
		log.Printf("stats cache set: %v", err)
	}
	return summary, nil
}

// Invalidate drops the cached summary. Call after any post write.
func (s *Service) Invalidate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Add(1)
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("stats cache invalidate: %v", err)
	}
}
