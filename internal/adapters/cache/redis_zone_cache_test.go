package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"order-pricing-service/internal/ports"
)

func newRedisCache(t *testing.T) (*RedisZoneCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisZoneCache(client), srv
}

func TestRedisZoneCacheRoundTrip(t *testing.T) {
	c, _ := newRedisCache(t)
	ctx := context.Background()

	addr := "4005 E Broadway Rd, Phoenix, AZ, 85040"
	info := ports.ZoneInfo{
		Zone:            3,
		DistanceMiles:   21.4,
		StandardFee:     125,
		HeavyFee:        216.3,
		TaxJurisdiction: "Phoenix, AZ",
		TaxRate:         0.086,
	}

	if err := c.Put(ctx, addr, info); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := c.Get(ctx, addr)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned miss after Put")
	}
	if *got != info {
		t.Errorf("got %+v, want %+v", *got, info)
	}
}

func TestRedisZoneCacheMiss(t *testing.T) {
	c, _ := newRedisCache(t)

	got, err := c.Get(context.Background(), "unknown address")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss, got %+v", *got)
	}
}

func TestRedisZoneCacheEntriesExpire(t *testing.T) {
	c, srv := newRedisCache(t)
	ctx := context.Background()

	addr := "somewhere far"
	if err := c.Put(ctx, addr, ports.ZoneInfo{Zone: 9, StandardFee: 215}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	srv.FastForward(redisZoneTTL + time.Minute)

	got, err := c.Get(ctx, addr)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("entry survived past TTL: %+v", *got)
	}
}

func TestRedisZoneCacheRejectsEmptyAddress(t *testing.T) {
	c, _ := newRedisCache(t)

	if _, err := c.Get(context.Background(), ""); err == nil {
		t.Error("Get with empty address should fail")
	}
	if err := c.Put(context.Background(), "", ports.ZoneInfo{}); err == nil {
		t.Error("Put with empty address should fail")
	}
}
