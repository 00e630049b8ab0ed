package ports

import "context"

// Port: a persistent cache of zone-lookup results keyed by normalized
// address. A miss is (nil, nil); errors are reserved for storage
// failures.
type ZoneCache interface {
	Get(ctx context.Context, address string) (*ZoneInfo, error)
	Put(ctx context.Context, address string, info ZoneInfo) error
}
