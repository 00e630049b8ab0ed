package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"

	"order-pricing-service/internal/api/dto"
	"order-pricing-service/internal/domain"
	"order-pricing-service/internal/services"
)

type QuoteHandler struct {
	Fees  *services.DeliveryFeeService
	Taxes *services.TaxService
}

// DeliveryFee prices delivery of an order to an address. The pricing
// chain degrades internally, so this handler only fails on bad input,
// never on upstream unavailability.
func (h *QuoteHandler) DeliveryFee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DeliveryFeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	addr, err := toAddress(req.Address)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	items, err := toLineItems(req.Items)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res := h.Fees.Quote(r.Context(), addr, items)

	writeJSON(w, r, http.StatusOK, dto.DeliveryFeeResponse{
		Fee:             res.Fee,
		Zone:            res.Zone,
		DistanceMiles:   res.DistanceMiles,
		DurationMinutes: res.DurationMinutes,
		VehicleType:     string(res.VehicleType),
		Breakdown: dto.FeeBreakdownResponse{
			BaseFee:     res.Breakdown.BaseFee,
			DistanceFee: res.Breakdown.DistanceFee,
			ZoneFee:     res.Breakdown.ZoneFee,
			Total:       res.Breakdown.Total,
		},
	})
}

// Tax computes sales tax for an order subtotal.
func (h *QuoteHandler) Tax(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TaxRequest
	if !decodeBody(w, r, &req) {
		return
	}

	addr, err := toAddress(req.Address)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.Subtotal < 0 || math.IsNaN(req.Subtotal) || math.IsInf(req.Subtotal, 0) {
		writeError(w, r, http.StatusBadRequest, "subtotal must be a non-negative number")
		return
	}

	res := h.Taxes.Quote(r.Context(), addr, req.Subtotal, req.Exempt, req.ExemptReason)

	writeJSON(w, r, http.StatusOK, dto.TaxResponse{
		Subtotal:     res.Subtotal,
		TaxAmount:    res.TaxAmount,
		TaxRate:      res.TaxRate,
		Total:        res.Total,
		IsExempt:     res.IsExempt,
		ExemptReason: res.ExemptReason,
		Jurisdiction: res.Jurisdiction,
	})
}

// decodeBody enforces a single strict JSON object; both quote
// endpoints share the same 400-on-garbage policy.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func toAddress(p dto.AddressPayload) (domain.Address, error) {
	addr := domain.Address{
		Street:     strings.TrimSpace(p.Street),
		City:       strings.TrimSpace(p.City),
		State:      strings.TrimSpace(p.State),
		PostalCode: strings.TrimSpace(p.PostalCode),
	}
	if addr.Format() == "" {
		return domain.Address{}, fmt.Errorf("address is required")
	}
	if p.Lat != nil && p.Lon != nil {
		addr.Geocode = &domain.Coordinates{Lat: *p.Lat, Lon: *p.Lon}
	}
	return addr, nil
}

func toLineItems(payloads []dto.LineItemPayload) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(payloads))
	for i, p := range payloads {
		unit, err := toUnit(p.Unit)
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		if p.Quantity < 0 || math.IsNaN(p.Quantity) || math.IsInf(p.Quantity, 0) {
			return nil, fmt.Errorf("items[%d]: quantity must be a non-negative number", i)
		}

		items = append(items, domain.LineItem{
			Category: domain.MaterialCategory(strings.ToLower(strings.TrimSpace(p.MaterialCategory))),
			Unit:     unit,
			Quantity: p.Quantity,
		})
	}
	return items, nil
}

func toUnit(s string) (domain.UnitOfMeasure, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ton", "tons":
		return domain.UnitTon, nil
	case "pound", "pounds", "lb", "lbs":
		return domain.UnitPound, nil
	case "cubic_yard", "cubic_yards", "yard", "yards":
		return domain.UnitCubicYard, nil
	}
	return "", fmt.Errorf("unknown unit of measure %q", s)
}
