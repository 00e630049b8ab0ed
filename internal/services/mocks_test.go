package services

import (
	"context"
	"errors"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/ports"
)

var errDown = errors.New("service unavailable")

type fakeQuoteProvider struct {
	result ports.QuoteResult
	err    error
	calls  int
}

func (f *fakeQuoteProvider) GetQuote(ctx context.Context, origin string, dest domain.Address, weightTons float64) (ports.QuoteResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeZoneProvider struct {
	info  ports.ZoneInfo
	err   error
	calls int
}

func (f *fakeZoneProvider) LookupZone(ctx context.Context, dest domain.Address) (ports.ZoneInfo, error) {
	f.calls++
	return f.info, f.err
}

type fakeTravelProvider struct {
	result ports.TravelResult
	err    error
	calls  int
}

func (f *fakeTravelProvider) GetTravel(ctx context.Context, origin string, dest domain.Address) (ports.TravelResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeTaxProvider struct {
	quote ports.TaxQuote
	err   error
	calls int
}

func (f *fakeTaxProvider) LookupTax(ctx context.Context, dest domain.Address, amount float64) (ports.TaxQuote, error) {
	f.calls++
	return f.quote, f.err
}

type memoryZoneCache struct {
	entries map[string]ports.ZoneInfo
	getErr  error
}

func newMemoryZoneCache() *memoryZoneCache {
	return &memoryZoneCache{entries: map[string]ports.ZoneInfo{}}
}

func (c *memoryZoneCache) Get(ctx context.Context, address string) (*ports.ZoneInfo, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if info, ok := c.entries[address]; ok {
		return &info, nil
	}
	return nil, nil
}

func (c *memoryZoneCache) Put(ctx context.Context, address string, info ports.ZoneInfo) error {
	c.entries[address] = info
	return nil
}

type recordingAudit struct {
	records []ports.QuoteRecord
	err     error
}

func (a *recordingAudit) Record(ctx context.Context, rec ports.QuoteRecord) error {
	a.records = append(a.records, rec)
	return a.err
}
