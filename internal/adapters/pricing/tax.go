package pricing

import (
	"context"
	"fmt"
	"net/http"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/platform/obs"
	"order-pricing-service/internal/ports"
)

// TaxLookupService calls the dedicated tax-lookup endpoint, the most
// jurisdiction-precise tax tier.
type TaxLookupService struct {
	client *Client
}

func NewTaxLookupService(client *Client) *TaxLookupService {
	return &TaxLookupService{client: client}
}

type taxLookupRequest struct {
	Address string  `json:"address"`
	Amount  float64 `json:"amount"`
}

type taxLookupResponse struct {
	TaxAmount    float64 `json:"tax_amount"`
	TaxRate      float64 `json:"tax_rate"`
	Total        float64 `json:"total"`
	Jurisdiction string  `json:"jurisdiction"`
}

func (s *TaxLookupService) LookupTax(
	ctx context.Context,
	dest domain.Address,
	amount float64,
) (_ ports.TaxQuote, err error) {
	defer obs.Time(ctx, "pricing.LookupTax")(&err)

	var resp taxLookupResponse
	err = s.client.execute(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/v1/tax-lookup",
		body:   taxLookupRequest{Address: dest.Format(), Amount: amount},
	}, &resp)
	if err != nil {
		return ports.TaxQuote{}, fmt.Errorf("tax lookup: %w", err)
	}

	if resp.TaxRate < 0 || resp.TaxAmount < 0 {
		return ports.TaxQuote{}, fmt.Errorf(
			"tax lookup: negative result rate=%.4f amount=%.2f",
			resp.TaxRate, resp.TaxAmount,
		)
	}

	return ports.TaxQuote{
		TaxAmount:    resp.TaxAmount,
		TaxRate:      resp.TaxRate,
		Total:        resp.Total,
		Jurisdiction: resp.Jurisdiction,
	}, nil
}
