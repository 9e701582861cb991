//go:build integration

package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Masc20/CSO-Clearance-Payment-List/config"
	"github.com/Masc20/CSO-Clearance-Payment-List/pkg/kv"
)

func setupClient(t *testing.T) *Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	c, err := NewClient(&config.RedisConfig{Addr: addr}, zap.NewNop())
	if err != nil {
		t.Fatalf("cannot connect to test redis: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCheckRateLimit_FixedWindow(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()
	key := fmt.Sprintf("test:%d", time.Now().UnixNano())
	t.Cleanup(func() { c.rdb.Del(ctx, rateLimitPrefix+key) })

	for i := 0; i < 2; i++ {
		ok, err := c.CheckRateLimit(ctx, key, 2, time.Second)
		if err != nil || !ok {
			t.Fatalf("request %d: expected allowed, got %v %v", i+1, ok, err)
		}
	}
	if ok, _ := c.CheckRateLimit(ctx, key, 2, time.Second); ok {
		t.Fatal("third request in the window must be rejected")
	}

	time.Sleep(1100 * time.Millisecond)

	if ok, err := c.CheckRateLimit(ctx, key, 2, time.Second); err != nil || !ok {
		t.Errorf("expected a new window, got %v %v", ok, err)
	}
}

func TestRedisStore_RoundTrip(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()
	prefix := fmt.Sprintf("test-%d:", time.Now().UnixNano())
	s := kv.NewRedisStore(c.Cmdable(), prefix)
	t.Cleanup(func() { c.rdb.Del(ctx, prefix+"cso_settings") })

	if _, err := s.Get(ctx, "cso_settings"); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first write, got %v", err)
	}
	if err := s.Set(ctx, "cso_settings", []byte(`{"sections":[],"amount":10}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if n, _ := c.rdb.Exists(ctx, prefix+"cso_settings").Result(); n != 1 {
		t.Error("expected the prefixed key in redis")
	}
	if ttl, _ := c.rdb.TTL(ctx, prefix+"cso_settings").Result(); ttl >= 0 {
		t.Errorf("documents must not expire, got ttl %v", ttl)
	}
}
