package ports

import (
	"context"

	"order-pricing-service/internal/domain"
)

// QuoteResult is a full delivery-fee quote from the primary pricing
// service.
type QuoteResult struct {
	Fee             float64
	Zone            int
	DistanceMiles   float64
	DurationMinutes float64
}

// ZoneInfo is what the zone-lookup service knows about one address:
// the zone with both candidate fees plus the tax jurisdiction.
type ZoneInfo struct {
	Zone            int
	DistanceMiles   float64
	StandardFee     float64
	HeavyFee        float64
	TaxJurisdiction string
	TaxRate         float64
}

// TravelResult is distance and travel time between two locations.
type TravelResult struct {
	DistanceMiles   float64
	DurationMinutes float64
}

// TaxQuote is a jurisdiction-precise tax computation for an amount.
type TaxQuote struct {
	TaxAmount    float64
	TaxRate      float64
	Total        float64
	Jurisdiction string
}

// Port: the primary quote-calculation service.
type QuoteProvider interface {
	GetQuote(ctx context.Context, origin string, dest domain.Address, weightTons float64) (QuoteResult, error)
}

// Port: the zone-lookup service (secondary pricing tier).
type ZoneLookupProvider interface {
	LookupZone(ctx context.Context, dest domain.Address) (ZoneInfo, error)
}

// Port: bare distance/duration lookup, used to feed the local rating
// engine when both pricing tiers are down.
type TravelProvider interface {
	GetTravel(ctx context.Context, origin string, dest domain.Address) (TravelResult, error)
}

// Port: the dedicated tax-lookup service.
type TaxProvider interface {
	LookupTax(ctx context.Context, dest domain.Address, amount float64) (TaxQuote, error)
}
