package pricing

import (
	"context"
	"fmt"
	"net/http"

	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/platform/obs"
	"order-pricing-service/internal/ports"
)

// TravelService calls the distance-calculation endpoint. It knows
// nothing about pricing; the local rating engine turns its answer into
// a fee when both remote pricing tiers are down.
type TravelService struct {
	client *Client
}

func NewTravelService(client *Client) *TravelService {
	return &TravelService{client: client}
}

type travelRequest struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

type travelResponse struct {
	DistanceMiles   float64 `json:"distance_miles"`
	DurationMinutes float64 `json:"duration_minutes"`
}

func (s *TravelService) GetTravel(
	ctx context.Context,
	origin string,
	dest domain.Address,
) (_ ports.TravelResult, err error) {
	defer obs.Time(ctx, "pricing.GetTravel")(&err)

	req := travelRequest{
		Origin:      origin,
		Destination: dest.Format(),
	}
	// Skip server-side geocoding when the caller already has coordinates.
	if dest.Geocode != nil {
		req.Coordinates = dest.Geocode.CoordsToList()
	}

	var resp travelResponse
	err = s.client.execute(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/v1/distance-calculation",
		body:   req,
	}, &resp)
	if err != nil {
		return ports.TravelResult{}, fmt.Errorf("distance calculation: %w", err)
	}

	if resp.DistanceMiles < 0 || resp.DurationMinutes < 0 {
		return ports.TravelResult{}, fmt.Errorf(
			"distance calculation: negative metrics distance=%.2f duration=%.2f",
			resp.DistanceMiles, resp.DurationMinutes,
		)
	}

	return ports.TravelResult{
		DistanceMiles:   resp.DistanceMiles,
		DurationMinutes: resp.DurationMinutes,
	}, nil
}
