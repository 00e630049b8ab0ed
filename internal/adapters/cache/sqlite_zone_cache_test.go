package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"order-pricing-service/internal/ports"
)

func newSqliteCache(t *testing.T) *SqliteZoneCache {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	return NewSqliteZoneCache(db)
}

func TestSqliteZoneCacheRoundTrip(t *testing.T) {
	c := newSqliteCache(t)
	ctx := context.Background()

	addr := "4005 E Broadway Rd, Phoenix, AZ, 85040"
	info := ports.ZoneInfo{
		Zone:            7,
		DistanceMiles:   44.2,
		StandardFee:     185,
		HeavyFee:        240,
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

func TestSqliteZoneCacheMissReturnsNil(t *testing.T) {
	c := newSqliteCache(t)

	got, err := c.Get(context.Background(), "never cached")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss, got %+v", *got)
	}
}

func TestSqliteZoneCachePutOverwrites(t *testing.T) {
	c := newSqliteCache(t)
	ctx := context.Background()

	addr := "123 Main St, Tempe, AZ"
	if err := c.Put(ctx, addr, ports.ZoneInfo{Zone: 2, StandardFee: 110}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put(ctx, addr, ports.ZoneInfo{Zone: 3, StandardFee: 125}); err != nil {
		t.Fatalf("Put (overwrite): %v", err)
	}

	got, err := c.Get(ctx, addr)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Zone != 3 || got.StandardFee != 125 {
		t.Errorf("got %+v, want refreshed zone 3", got)
	}
}

func TestSqliteZoneCacheRejectsEmptyAddress(t *testing.T) {
	c := newSqliteCache(t)

	if _, err := c.Get(context.Background(), ""); err == nil {
		t.Error("Get with empty address should fail")
	}
	if err := c.Put(context.Background(), "", ports.ZoneInfo{}); err == nil {
		t.Error("Put with empty address should fail")
	}
}
