package api

import (
	"net/http"

	"order-pricing-service/internal/api/handlers"
	"order-pricing-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	fees *services.DeliveryFeeService,
	taxes *services.TaxService,
	upstreams map[string]handlers.HealthChecker,
) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := &handlers.QuoteHandler{Fees: fees, Taxes: taxes}
	upstreamHandler := &handlers.UpstreamHealthHandler{Upstreams: upstreams}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/health/upstreams", upstreamHandler.HandleUpstreams)
	mux.HandleFunc("/zones", handlers.Zones)
	mux.HandleFunc("/quotes/delivery-fee", quoteHandler.DeliveryFee)
	mux.HandleFunc("/quotes/tax", quoteHandler.Tax)

	return requestIDMiddleware(loggingMiddleware(mux))
}
