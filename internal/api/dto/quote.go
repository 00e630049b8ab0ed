package dto

type AddressPayload struct {
	Street     string   `json:"street"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postal_code"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
}

type LineItemPayload struct {
	MaterialCategory string  `json:"material_category"`
	Unit             string  `json:"unit"`
	Quantity         float64 `json:"quantity"`
}

type DeliveryFeeRequest struct {
	Address AddressPayload    `json:"address"`
	Items   []LineItemPayload `json:"items"`
}

type FeeBreakdownResponse struct {
	BaseFee     float64 `json:"base_fee"`
	DistanceFee float64 `json:"distance_fee"`
	ZoneFee     float64 `json:"zone_fee"`
	Total       float64 `json:"total"`
}

type DeliveryFeeResponse struct {
	Fee             float64              `json:"fee"`
	Zone            int                  `json:"zone,omitempty"`
	DistanceMiles   float64              `json:"distance_miles,omitempty"`
	DurationMinutes float64              `json:"duration_minutes,omitempty"`
	VehicleType     string               `json:"vehicle_type"`
	Breakdown       FeeBreakdownResponse `json:"breakdown"`
}

type TaxRequest struct {
	Address      AddressPayload `json:"address"`
	Subtotal     float64        `json:"subtotal"`
	Exempt       bool           `json:"exempt"`
	ExemptReason string         `json:"exempt_reason"`
}

type TaxResponse struct {
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"tax_amount"`
	TaxRate      float64 `json:"tax_rate"`
	Total        float64 `json:"total"`
	IsExempt     bool    `json:"is_exempt"`
	ExemptReason string  `json:"exempt_reason,omitempty"`
	Jurisdiction string  `json:"jurisdiction,omitempty"`
}

type ZoneResponse struct {
	ZoneNumber  int     `json:"zone_number"`
	MinMiles    float64 `json:"min_miles"`
	MaxMiles    float64 `json:"max_miles"`
	StandardFee float64 `json:"standard_fee"`
}

type ListZoneResponse struct {
	Zones []ZoneResponse `json:"zones"`
}

type UpstreamHealthResponse struct {
	Upstreams map[string]bool `json:"upstreams"`
}
