package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/balamt/bagmytrip/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	t.Cleanup(func() {
		mr.Close()
	})

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestInsightCacheImpl_SetAndGet(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewInsightCache(client, time.Hour)
	ctx := context.Background()

	if err := cache.Set(ctx, "Goa", "Best time to visit: November to February."); err != nil {
		t.Fatalf("set insights: %v", err)
	}

	got, err := cache.Get(ctx, "Goa")
	if err != nil {
		t.Fatalf("get insights: %v", err)
	}
	if got != "Best time to visit: November to February." {
		t.Errorf("unexpected cached value: %q", got)
	}

	// Keys are case- and whitespace-insensitive on destination.
	got, err = cache.Get(ctx, "  goa ")
	if err != nil {
		t.Fatalf("get insights with normalized key: %v", err)
	}
	if got == "" {
		t.Error("expected cache hit for normalized destination")
	}
}

func TestInsightCacheImpl_Miss(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := NewInsightCache(client, time.Hour)

	if _, err := cache.Get(context.Background(), "Nowhere"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}

func TestInsightCacheImpl_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := NewInsightCache(client, time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, "Goa", "insights"); err != nil {
		t.Fatalf("set insights: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(ctx, "Goa"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after TTL, got %v", err)
	}
}
