package handlers

import (
	"net/http"

	"order-pricing-service/internal/api/dto"
	"order-pricing-service/internal/domain"
)

// Zones serves the local rating table so operators can eyeball what
// the degraded-mode calculation will charge.
func Zones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	zones := domain.Zones()
	res := dto.ListZoneResponse{Zones: make([]dto.ZoneResponse, 0, len(zones))}
	for _, z := range zones {
		res.Zones = append(res.Zones, dto.ZoneResponse{
			ZoneNumber:  z.ZoneNumber,
			MinMiles:    z.MinMiles,
			MaxMiles:    z.MaxMiles,
			StandardFee: z.StandardFee,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
