package redis

import (
	"testing"
	"time"

	"github.com/freshkart/freshkart-backend/pkg/config"
)

func TestBuildKeyNamespacing(t *testing.T) {
	c := &Client{}

	if got := c.IdempotencyKey("user|POST|/api/v1/checkout", "abc"); got != "fk:idempotency:user|POST|/api/v1/checkout:abc" {
		t.Fatalf("unexpected idempotency key %q", got)
	}
	if got := c.RateLimitKey("login:ip:1.2.3.4"); got != "fk:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("unexpected rate limit key %q", got)
	}
	if got := c.AccessSessionKey("jti-123"); got != "fk:session:access:jti-123" {
		t.Fatalf("unexpected session key %q", got)
	}
}

func TestOptionsFromConfigPrefersURL(t *testing.T) {
	cfg := config.RedisConfig{
		URL:         "redis://:pass@localhost:6380/2",
		Address:     "ignored:6379",
		PoolSize:    7,
		DialTimeout: 3 * time.Second,
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" {
		t.Fatalf("expected URL address to win, got %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2 from URL, got %d", opts.DB)
	}
	if opts.PoolSize != 7 {
		t.Fatalf("expected pool size fallback from config, got %d", opts.PoolSize)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address set")
	}
}
