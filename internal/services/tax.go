package services

import (
	"context"
	"errors"
	"log"
	"math"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/ports"
)

var errMissingRate = errors.New("zone lookup returned no tax rate")

// TaxConfig carries the flat rate applied when no remote tier can
// answer. Precision degrades to this rate rather than blocking the
// order.
type TaxConfig struct {
	DefaultRate float64
}

// TaxService computes sales tax for an order subtotal through the
// fallback chain: tax-lookup remote, zone-lookup jurisdiction rate,
// then the flat default rate. Exempt customers short-circuit the chain
// entirely.
type TaxService struct {
	cfg   TaxConfig
	taxes ports.TaxProvider
	zones zoneSource
	audit ports.QuoteAudit
}

func NewTaxService(
	cfg TaxConfig,
	taxes ports.TaxProvider,
	zones ports.ZoneLookupProvider,
	cache ports.ZoneCache,
	audit ports.QuoteAudit,
) *TaxService {
	return &TaxService{
		cfg:   cfg,
		taxes: taxes,
		zones: zoneSource{provider: zones, cache: cache},
		audit: audit,
	}
}

// Quote computes the tax on subtotal for a delivery to dest. The
// result is always fully populated; exemptReason is only consulted
// when exempt is true.
func (s *TaxService) Quote(
	ctx context.Context,
	dest domain.Address,
	subtotal float64,
	exempt bool,
	exemptReason string,
) domain.TaxResult {
	if exempt {
		if exemptReason == "" {
			exemptReason = "customer is tax exempt"
		}
		res := domain.TaxResult{
			Subtotal:     subtotal,
			Total:        subtotal,
			IsExempt:     true,
			ExemptReason: exemptReason,
		}
		s.record(ctx, dest, res, "exempt")
		return res
	}

	var tiers []Tier[domain.TaxResult]

	if s.taxes != nil {
		tiers = append(tiers, Tier[domain.TaxResult]{
			Name: "tax-lookup",
			Run: func(ctx context.Context) (domain.TaxResult, error) {
				q, err := s.taxes.LookupTax(ctx, dest, subtotal)
				if err != nil {
					return domain.TaxResult{}, err
				}
				return domain.TaxResult{
					Subtotal:     subtotal,
					TaxAmount:    q.TaxAmount,
					TaxRate:      q.TaxRate,
					Total:        q.Total,
					Jurisdiction: q.Jurisdiction,
				}, nil
			},
		})
	}

	if s.zones.provider != nil {
		tiers = append(tiers, Tier[domain.TaxResult]{
			Name: "zone-lookup",
			Run: func(ctx context.Context) (domain.TaxResult, error) {
				info, err := s.zones.lookup(ctx, dest)
				if err != nil {
					return domain.TaxResult{}, err
				}
				if info.TaxRate <= 0 {
					return domain.TaxResult{}, errMissingRate
				}
				return taxAtRate(subtotal, info.TaxRate, info.TaxJurisdiction), nil
			},
		})
	}

	terminal := taxAtRate(subtotal, s.cfg.DefaultRate, "")

	res, tier := ResolveFallback(ctx, "tax", tiers, terminal)
	s.record(ctx, dest, res, tier)
	return res
}

func (s *TaxService) record(ctx context.Context, dest domain.Address, res domain.TaxResult, tier string) {
	if s.audit == nil {
		return
	}
	rec := ports.QuoteRecord{
		QuoteType: "tax",
		Address:   dest.Format(),
		Amount:    res.TaxAmount,
		Tier:      tier,
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		log.Printf("op=tax audit write failed: %v", err)
	}
}

func taxAtRate(subtotal, rate float64, jurisdiction string) domain.TaxResult {
	tax := roundCents(subtotal * rate)
	return domain.TaxResult{
		Subtotal:     subtotal,
		TaxAmount:    tax,
		TaxRate:      rate,
		Total:        subtotal + tax,
		Jurisdiction: jurisdiction,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
