package services

import (
	"context"
	"log"
)

// Tier is one candidate computation in a fallback chain, ordered from
// most to least precise.
type Tier[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// DefaultTier is the name reported when every tier failed and the
// static terminal value was applied.
const DefaultTier = "default"

// ResolveFallback evaluates tiers strictly in order and returns the
// first success together with the name of the tier that produced it.
// Tier failures are logged for diagnostics and swallowed; they never
// reach the caller. When every tier fails the terminal value is
// returned under DefaultTier, so callers always receive a usable
// result: pricing must never block checkout.
func ResolveFallback[T any](ctx context.Context, op string, tiers []Tier[T], terminal T) (T, string) {
	for _, tier := range tiers {
		v, err := tier.Run(ctx)
		if err != nil {
			log.Printf("op=%s tier=%s degraded: %v", op, tier.Name, err)
			continue
		}
		return v, tier.Name
	}

	log.Printf("op=%s exhausted all tiers, applying static default", op)
	return terminal, DefaultTier
}
