package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BLOGLIST_ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("BLOGLIST_TOKEN_TTL", "")

	cfg := Load()
	if cfg.Addr != ":3003" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected 1h token ttl, got %s", cfg.TokenTTL)
	}
	if cfg.Telemetry.ServiceName == "" {
		t.Fatalf("expected a service name")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOGLIST_ADDR", "")
	t.Setenv("PORT", "9000")
	t.Setenv("BLOGLIST_TOKEN_TTL", "15m")
	t.Setenv("BLOGLIST_RL_BLOG_PER_MIN", "3")
	t.Setenv("BLOGLIST_STATS_TTL", "not-a-duration")

	cfg := Load()
	if cfg.Addr != ":9000" {
		t.Fatalf("expected :9000, got %q", cfg.Addr)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m, got %s", cfg.TokenTTL)
	}
	if cfg.RateLimits.BlogPerMinute != 3 {
		t.Fatalf("expected 3, got %d", cfg.RateLimits.BlogPerMinute)
	}
	if cfg.StatsTTL != 5*time.Minute {
		t.Fatalf("expected fallback stats ttl, got %s", cfg.StatsTTL)
	}
}
