package services

import (
	"context"
	"testing"

	"order-pricing-service/internal/ports"
)

func taxService(
	taxes ports.TaxProvider,
	zones ports.ZoneLookupProvider,
	cache ports.ZoneCache,
	audit ports.QuoteAudit,
) *TaxService {
	return NewTaxService(TaxConfig{DefaultRate: 0.086}, taxes, zones, cache, audit)
}

func TestTaxExemptSkipsAllRemoteTiers(t *testing.T) {
	taxes := &fakeTaxProvider{err: errDown}
	zones := &fakeZoneProvider{err: errDown}
	audit := &recordingAudit{}

	svc := taxService(taxes, zones, nil, audit)
	res := svc.Quote(context.Background(), testDest, 500.00, true, "resale certificate")

	if !res.IsExempt || res.ExemptReason != "resale certificate" {
		t.Errorf("exempt result = %+v", res)
	}
	if res.TaxAmount != 0 || res.Total != 500.00 {
		t.Errorf("tax/total = %.2f/%.2f, want 0/500", res.TaxAmount, res.Total)
	}
	if taxes.calls != 0 || zones.calls != 0 {
		t.Errorf("remote tiers ran for exempt customer: tax=%d zone=%d", taxes.calls, zones.calls)
	}
	if len(audit.records) != 1 || audit.records[0].Tier != "exempt" {
		t.Errorf("audit = %+v", audit.records)
	}
}

func TestTaxLookupTierWins(t *testing.T) {
	taxes := &fakeTaxProvider{quote: ports.TaxQuote{
		TaxAmount: 43.00, TaxRate: 0.086, Total: 543.00, Jurisdiction: "Phoenix, AZ",
	}}
	zones := &fakeZoneProvider{err: errDown}

	svc := taxService(taxes, zones, nil, nil)
	res := svc.Quote(context.Background(), testDest, 500.00, false, "")

	if res.TaxAmount != 43.00 || res.TaxRate != 0.086 || res.Total != 543.00 {
		t.Errorf("result = %+v", res)
	}
	if res.Jurisdiction != "Phoenix, AZ" {
		t.Errorf("jurisdiction = %q", res.Jurisdiction)
	}
	if zones.calls != 0 {
		t.Errorf("zone tier ran after tax lookup succeeded")
	}
}

func TestTaxFallsBackToZoneJurisdictionRate(t *testing.T) {
	taxes := &fakeTaxProvider{err: errDown}
	zones := &fakeZoneProvider{info: ports.ZoneInfo{
		Zone: 2, StandardFee: 110, TaxJurisdiction: "Maricopa County, AZ", TaxRate: 0.083,
	}}

	svc := taxService(taxes, zones, nil, nil)
	res := svc.Quote(context.Background(), testDest, 200.00, false, "")

	if res.TaxAmount != 16.60 {
		t.Errorf("tax = %.2f, want 16.60", res.TaxAmount)
	}
	if res.Total != 216.60 {
		t.Errorf("total = %.2f, want 216.60", res.Total)
	}
	if res.Jurisdiction != "Maricopa County, AZ" {
		t.Errorf("jurisdiction = %q", res.Jurisdiction)
	}
}

func TestTaxZoneWithoutRateFallsThrough(t *testing.T) {
	zones := &fakeZoneProvider{info: ports.ZoneInfo{Zone: 2, StandardFee: 110}}

	svc := taxService(nil, zones, nil, nil)
	res := svc.Quote(context.Background(), testDest, 100.00, false, "")

	// No usable rate from any tier: the flat default applies.
	if res.TaxRate != 0.086 {
		t.Errorf("rate = %.4f, want default 0.086", res.TaxRate)
	}
	if res.TaxAmount != 8.60 {
		t.Errorf("tax = %.2f, want 8.60", res.TaxAmount)
	}
}

func TestTaxFullDegradationAppliesFlatRate(t *testing.T) {
	taxes := &fakeTaxProvider{err: errDown}
	zones := &fakeZoneProvider{err: errDown}
	audit := &recordingAudit{}

	svc := taxService(taxes, zones, nil, audit)
	res := svc.Quote(context.Background(), testDest, 350.00, false, "")

	if res.TaxRate != 0.086 {
		t.Errorf("rate = %.4f, want 0.086", res.TaxRate)
	}
	if res.TaxAmount != 30.10 {
		t.Errorf("tax = %.2f, want 30.10", res.TaxAmount)
	}
	if res.Total != 380.10 {
		t.Errorf("total = %.2f, want 380.10", res.Total)
	}
	if len(audit.records) != 1 || audit.records[0].Tier != DefaultTier {
		t.Errorf("audit = %+v", audit.records)
	}
}
