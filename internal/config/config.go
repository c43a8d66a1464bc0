package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr       string
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	StatsTTL   time.Duration
	RedisAddr  string
	Telemetry  Telemetry
	RateLimits RateLimits
	Version    string
	Commit     string
	BuildTime  string
}

type RateLimits struct {
	BlogPerMinute  int
	UserPerMinute  int
	LoginPerMinute int
}

type Telemetry struct {
	OTLPEndpoint string
	ServiceName  string
}

// Set at build time with -ldflags "-X github.com/alphabot-ai/bloglist/internal/config.version=..."
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func Load() Config {
	addr := envString("BLOGLIST_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":3003"
		}
	}
	cfg := Config{
		Addr:      addr,
		DBPath:    envString("BLOGLIST_DB", "bloglist.db"),
		JWTSecret: envString("BLOGLIST_JWT_SECRET", "dev-jwt-secret"),
		TokenTTL:  envDuration("BLOGLIST_TOKEN_TTL", time.Hour),
		StatsTTL:  envDuration("BLOGLIST_STATS_TTL", 5*time.Minute),
		RedisAddr: envString("BLOGLIST_REDIS_ADDR", ""),
		Telemetry: Telemetry{
			OTLPEndpoint: envString("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName:  envString("OTEL_SERVICE_NAME", "bloglist"),
		},
		RateLimits: RateLimits{
			BlogPerMinute:  envInt("BLOGLIST_RL_BLOG_PER_MIN", 20),
			UserPerMinute:  envInt("BLOGLIST_RL_USER_PER_MIN", 5),
			LoginPerMinute: envInt("BLOGLIST_RL_LOGIN_PER_MIN", 10),
		},
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
	}

	return cfg
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
