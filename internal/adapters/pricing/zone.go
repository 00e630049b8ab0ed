package pricing

import (
	"context"
	"fmt"
	"net/http"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/platform/obs"
	"order-pricing-service/internal/ports"
)

// ZoneLookupService calls the zone-lookup endpoint, which rates an
// address into a delivery zone and also knows its tax jurisdiction.
type ZoneLookupService struct {
	client *Client
}

func NewZoneLookupService(client *Client) *ZoneLookupService {
	return &ZoneLookupService{client: client}
}

type zoneLookupRequest struct {
	Address string `json:"address"`
}

type zoneLookupResponse struct {
	Zone          int     `json:"zone"`
	DistanceMiles float64 `json:"distance_miles"`
	Fees          struct {
		Standard float64 `json:"standard"`
		Heavy    float64 `json:"heavy"`
	} `json:"fees"`
	Tax struct {
		Jurisdiction string  `json:"jurisdiction"`
		Rate         float64 `json:"rate"`
	} `json:"tax"`
}

func (s *ZoneLookupService) LookupZone(
	ctx context.Context,
	dest domain.Address,
) (_ ports.ZoneInfo, err error) {
	defer obs.Time(ctx, "pricing.LookupZone")(&err)

	var resp zoneLookupResponse
	err = s.client.execute(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/v1/zone-lookup",
		body:   zoneLookupRequest{Address: dest.Format()},
	}, &resp)
	if err != nil {
		return ports.ZoneInfo{}, fmt.Errorf("zone lookup: %w", err)
	}

	if resp.Zone <= 0 || resp.Fees.Standard <= 0 {
		return ports.ZoneInfo{}, fmt.Errorf(
			"zone lookup: implausible zone=%d standard_fee=%.2f",
			resp.Zone, resp.Fees.Standard,
		)
	}

	return ports.ZoneInfo{
		Zone:            resp.Zone,
		DistanceMiles:   resp.DistanceMiles,
		StandardFee:     resp.Fees.Standard,
		HeavyFee:        resp.Fees.Heavy,
		TaxJurisdiction: resp.Tax.Jurisdiction,
		TaxRate:         resp.Tax.Rate,
	}, nil
}
