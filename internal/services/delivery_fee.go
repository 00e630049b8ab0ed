package services

import (
	"context"
	"log"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/ports"
)

// DeliveryFeeConfig carries the orchestrator's fixed inputs: the
// dispatch origin every distance is measured from and the conservative
// static fee applied when every tier has failed.
type DeliveryFeeConfig struct {
	Origin     string
	DefaultFee float64
}

// DeliveryFeeService computes the delivery fee for an order by driving
// the fallback chain: quote-calculation remote, zone-lookup remote,
// local rating from a bare distance, then the static default. Any of
// the providers may be nil; a nil provider simply contributes no tier.
type DeliveryFeeService struct {
	cfg    DeliveryFeeConfig
	quotes ports.QuoteProvider
	zones  zoneSource
	travel ports.TravelProvider
	audit  ports.QuoteAudit
}

func NewDeliveryFeeService(
	cfg DeliveryFeeConfig,
	quotes ports.QuoteProvider,
	zones ports.ZoneLookupProvider,
	travel ports.TravelProvider,
	cache ports.ZoneCache,
	audit ports.QuoteAudit,
) *DeliveryFeeService {
	return &DeliveryFeeService{
		cfg:    cfg,
		quotes: quotes,
		zones:  zoneSource{provider: zones, cache: cache},
		travel: travel,
		audit:  audit,
	}
}

// Quote prices delivery of the given order lines to dest. It always
// returns a fully populated result; remote failures only degrade
// precision, never the call.
func (s *DeliveryFeeService) Quote(
	ctx context.Context,
	dest domain.Address,
	items []domain.LineItem,
) domain.DeliveryFeeResult {
	vehicle := domain.ClassifyVehicle(items)
	weight := totalWeightTons(items)

	var tiers []Tier[domain.DeliveryFeeResult]

	if s.quotes != nil {
		tiers = append(tiers, Tier[domain.DeliveryFeeResult]{
			Name: "quote-calculation",
			Run: func(ctx context.Context) (domain.DeliveryFeeResult, error) {
				q, err := s.quotes.GetQuote(ctx, s.cfg.Origin, dest, weight)
				if err != nil {
					return domain.DeliveryFeeResult{}, err
				}
				return feeResult(q.Fee, q.Zone, q.DistanceMiles, q.DurationMinutes, vehicle), nil
			},
		})
	}

	if s.zones.provider != nil {
		tiers = append(tiers, Tier[domain.DeliveryFeeResult]{
			Name: "zone-lookup",
			Run: func(ctx context.Context) (domain.DeliveryFeeResult, error) {
				info, err := s.zones.lookup(ctx, dest)
				if err != nil {
					return domain.DeliveryFeeResult{}, err
				}

				fee := info.StandardFee
				if vehicle == domain.VehicleHeavy {
					fee = info.HeavyFee
					if fee <= 0 {
						// Older zone-lookup deployments omit the heavy
						// fee; rate it locally from the distance.
						fee = domain.HeavyFee(info.DistanceMiles)
					}
				}
				return feeResult(fee, info.Zone, info.DistanceMiles, 0, vehicle), nil
			},
		})
	}

	if s.travel != nil {
		tiers = append(tiers, Tier[domain.DeliveryFeeResult]{
			Name: "local-rating",
			Run: func(ctx context.Context) (domain.DeliveryFeeResult, error) {
				tr, err := s.travel.GetTravel(ctx, s.cfg.Origin, dest)
				if err != nil {
					return domain.DeliveryFeeResult{}, err
				}

				rate := domain.Rate(tr.DistanceMiles)
				fee := rate.StandardFee
				if vehicle == domain.VehicleHeavy {
					fee = rate.HeavyFee
				}
				return feeResult(fee, rate.Zone, tr.DistanceMiles, tr.DurationMinutes, vehicle), nil
			},
		})
	}

	terminal := feeResult(s.cfg.DefaultFee, 0, 0, 0, vehicle)

	res, tier := ResolveFallback(ctx, "delivery-fee", tiers, terminal)

	if s.audit != nil {
		rec := ports.QuoteRecord{
			QuoteType: "delivery_fee",
			Address:   dest.Format(),
			Amount:    res.Fee,
			Tier:      tier,
		}
		if err := s.audit.Record(ctx, rec); err != nil {
			log.Printf("op=delivery-fee audit write failed: %v", err)
		}
	}

	return res
}

// feeResult assembles the display breakdown around a total. The base
// fee is the vehicle's minimum callout; the remainder is attributed to
// the zone bracket for the standard vehicle and to distance for the
// heavy vehicle, whose fee is continuous in distance.
func feeResult(fee float64, zone int, miles, minutes float64, vehicle domain.VehicleType) domain.DeliveryFeeResult {
	base := domain.StandardFee(0)
	if vehicle == domain.VehicleHeavy {
		base = domain.HeavyFee(0)
	}
	if base > fee {
		base = fee
	}

	breakdown := domain.FeeBreakdown{BaseFee: base, Total: fee}
	if vehicle == domain.VehicleHeavy {
		breakdown.DistanceFee = fee - base
	} else {
		breakdown.ZoneFee = fee - base
	}

	return domain.DeliveryFeeResult{
		Fee:             fee,
		Zone:            zone,
		DistanceMiles:   miles,
		DurationMinutes: minutes,
		VehicleType:     vehicle,
		Breakdown:       breakdown,
	}
}

// totalWeightTons sums the weight-denominated lines for the quote
// service's weight parameter. Volume lines do not contribute.
func totalWeightTons(items []domain.LineItem) float64 {
	var tons float64
	for _, item := range items {
		switch item.Unit {
		case domain.UnitTon:
			tons += item.Quantity
		case domain.UnitPound:
			tons += item.Quantity / 2000
		}
	}
	return tons
}
