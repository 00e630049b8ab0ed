package pricing

import (
	"context"
	"fmt"
	"net/http"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/platform/obs"
	"order-pricing-service/internal/ports"
)

// QuoteService calls the primary quote-calculation endpoint: the most
// precise pricing tier, owning its own rate logic server-side.
type QuoteService struct {
	client *Client
}

func NewQuoteService(client *Client) *QuoteService {
	return &QuoteService{client: client}
}

type quoteRequest struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightTons  float64 `json:"weight_tons"`
}

type quoteResponse struct {
	Price           float64 `json:"price"`
	Zone            int     `json:"zone"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationMinutes float64 `json:"duration_minutes"`
}

func (s *QuoteService) GetQuote(
	ctx context.Context,
	origin string,
	dest domain.Address,
	weightTons float64,
) (_ ports.QuoteResult, err error) {
	defer obs.Time(ctx, "pricing.GetQuote")(&err)

	var resp quoteResponse
	err = s.client.execute(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/v1/quote-calculation",
		body: quoteRequest{
			Origin:      origin,
			Destination: dest.Format(),
			WeightTons:  weightTons,
		},
	}, &resp)
	if err != nil {
		return ports.QuoteResult{}, fmt.Errorf("quote calculation: %w", err)
	}

	if resp.Price <= 0 || resp.DistanceMiles < 0 {
		return ports.QuoteResult{}, fmt.Errorf(
			"quote calculation: implausible quote price=%.2f distance=%.2f",
			resp.Price, resp.DistanceMiles,
		)
	}

	return ports.QuoteResult{
		Fee:             resp.Price,
		Zone:            resp.Zone,
		DistanceMiles:   resp.DistanceMiles,
		DurationMinutes: resp.DurationMinutes,
	}, nil
}
