package services

import (
	"context"
	"log"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/ports"
)

// zoneSource fronts the zone-lookup provider with the persistent
// per-address cache. Cache failures are logged and treated as misses;
// only the remote call's error is surfaced.
type zoneSource struct {
	provider ports.ZoneLookupProvider
	cache    ports.ZoneCache
}

func (z zoneSource) lookup(ctx context.Context, dest domain.Address) (ports.ZoneInfo, error) {
	key := dest.Format()

	if z.cache != nil {
		hit, err := z.cache.Get(ctx, key)
		if err != nil {
			log.Printf("op=zone-lookup cache read failed: %v", err)
		} else if hit != nil {
			return *hit, nil
		}
	}

	info, err := z.provider.LookupZone(ctx, dest)
	if err != nil {
		return ports.ZoneInfo{}, err
	}

	if z.cache != nil {
		if err := z.cache.Put(ctx, key, info); err != nil {
			log.Printf("op=zone-lookup cache write failed: %v", err)
		}
	}

	return info, nil
}
