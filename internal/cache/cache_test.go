package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alphabot-ai/bloglist/internal/model"
)

func TestMemoryStats(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute)

	if _, ok, err := c.Get(ctx); ok || err != nil {
		t.Fatalf("expected empty cache, ok=%v err=%v", ok, err)
	}

	want := model.BlogStats{Blogs: 2, TotalLikes: 5}
	if err := c.Set(ctx, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := c.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got.Blogs != 2 || got.TotalLikes != 5 {
		t.Fatalf("unexpected value: %+v", got)
	}

	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestMemoryStatsExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	c := NewMemory(time.Second)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, model.BlogStats{Blogs: 1})
	if _, ok, _ := c.Get(ctx); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Second)
	if _, ok, _ := c.Get(ctx); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestMemoryStatsNoTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	c := NewMemory(0)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, model.BlogStats{Blogs: 1})
	now = now.Add(24 * time.Hour)
	if _, ok, _ := c.Get(ctx); !ok {
		t.Fatalf("expected entry to persist without ttl")
	}
}
