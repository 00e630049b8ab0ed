package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"order-pricing-service/internal/ports"
)

// SQLite backed cache of zone-lookup results. Keys are expected to be
// consistent (already normalized addresses) by the caller.
type SqliteZoneCache struct {
	DB *sql.DB
}

func NewSqliteZoneCache(db *sql.DB) *SqliteZoneCache {
	return &SqliteZoneCache{DB: db}
}

// InitSchema creates the cache table when it does not exist yet.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
	CREATE TABLE IF NOT EXISTS zone_cache (
		address          TEXT PRIMARY KEY,
		zone             INTEGER NOT NULL,
		distance_miles   REAL NOT NULL,
		standard_fee     REAL NOT NULL,
		heavy_fee        REAL NOT NULL,
		tax_jurisdiction TEXT NOT NULL DEFAULT '',
		tax_rate         REAL NOT NULL DEFAULT 0
	);
	`)
	if err != nil {
		return fmt.Errorf("init zone cache schema: %w", err)
	}
	return nil
}

// Get returns the cached zone info for an address, or nil on a miss.
func (s *SqliteZoneCache) Get(ctx context.Context, address string) (*ports.ZoneInfo, error) {
	if s.DB == nil {
		return nil, errors.New("zone cache: db is nil")
	}
	if address == "" {
		return nil, errors.New("get zone cache: address must not be empty")
	}

	q := `
	SELECT zone, distance_miles, standard_fee, heavy_fee, tax_jurisdiction, tax_rate
	FROM zone_cache
	WHERE address = ?;
	`

	var info ports.ZoneInfo
	err := s.DB.QueryRowContext(ctx, q, address).Scan(
		&info.Zone,
		&info.DistanceMiles,
		&info.StandardFee,
		&info.HeavyFee,
		&info.TaxJurisdiction,
		&info.TaxRate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get zone cache: query zone_cache table: %w", err)
	}

	return &info, nil
}

// Put stores or refreshes the cached zone info for an address.
func (s *SqliteZoneCache) Put(ctx context.Context, address string, info ports.ZoneInfo) error {
	if s.DB == nil {
		return errors.New("zone cache: db is nil")
	}
	if address == "" {
		return errors.New("insert zone cache: address must not be empty")
	}

	q := `
	INSERT INTO zone_cache (address, zone, distance_miles, standard_fee, heavy_fee, tax_jurisdiction, tax_rate)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (address) DO UPDATE
	SET zone = EXCLUDED.zone,
		distance_miles = EXCLUDED.distance_miles,
		standard_fee = EXCLUDED.standard_fee,
		heavy_fee = EXCLUDED.heavy_fee,
		tax_jurisdiction = EXCLUDED.tax_jurisdiction,
		tax_rate = EXCLUDED.tax_rate;
	`

	_, err := s.DB.ExecContext(ctx, q,
		address,
		info.Zone,
		info.DistanceMiles,
		info.StandardFee,
		info.HeavyFee,
		info.TaxJurisdiction,
		info.TaxRate,
	)
	if err != nil {
		return fmt.Errorf("insert zone cache address=%q: %w", address, err)
	}

	return nil
}
