package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"order-pricing-service/internal/adapters/cache"
	"order-pricing-service/internal/adapters/pricing"
	"order-pricing-service/internal/adapters/repositories"
	"order-pricing-service/internal/api"
	"order-pricing-service/internal/api/handlers"
	"order-pricing-service/internal/config"
	"order-pricing-service/internal/platform/db"
	"order-pricing-service/internal/ports"
	"order-pricing-service/internal/services"
)

// main is the application composition root.
// It constructs one client per remote endpoint family and passes them
// into the orchestrators explicitly; nothing below main reads the
// environment.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	origin := config.Get("DISPATCH_ORIGIN", "1901 W Madison St, Phoenix, AZ 85009")

	feeCfg := services.DeliveryFeeConfig{
		Origin:     origin,
		DefaultFee: config.GetFloat("DEFAULT_DELIVERY_FEE", 95),
	}
	taxCfg := services.TaxConfig{
		DefaultRate: config.GetFloat("DEFAULT_TAX_RATE", 0.086),
	}

	// Two endpoint families: the primary pricing service (quotes and
	// distance) and the rates service (zone and tax lookup). Either may
	// be absent; the fallback chain just gets shorter.
	pricingClient := buildClient("PRICING")
	ratesClient := buildClient("RATES")
	if pricingClient == nil && ratesClient == nil {
		log.Println("no remote pricing services configured; running in local-rating mode")
	}

	var (
		quotes ports.QuoteProvider
		travel ports.TravelProvider
		zones  ports.ZoneLookupProvider
		taxes  ports.TaxProvider
	)
	upstreams := map[string]handlers.HealthChecker{}

	if pricingClient != nil {
		quotes = pricing.NewQuoteService(pricingClient)
		travel = pricing.NewTravelService(pricingClient)
		upstreams["pricing"] = pricingClient
	}
	if ratesClient != nil {
		zones = pricing.NewZoneLookupService(ratesClient)
		taxes = pricing.NewTaxLookupService(ratesClient)
		upstreams["rates"] = ratesClient
	}

	zoneCache, closeCache, err := buildZoneCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	var audit ports.QuoteAudit
	if databaseURL := config.Get("DATABASE_URL", ""); strings.TrimSpace(databaseURL) != "" {
		auditDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer auditDB.Close()
		audit = repositories.NewPgQuoteAudit(auditDB)
	}

	fees := services.NewDeliveryFeeService(feeCfg, quotes, zones, travel, zoneCache, audit)
	taxSvc := services.NewTaxService(taxCfg, taxes, zones, zoneCache, audit)

	router := api.NewRouter(fees, taxSvc, upstreams)

	// WriteTimeout leaves room for a full retry cascade across tiers.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildClient constructs the resilient client for one endpoint family
// from PREFIX_BASE_URL and friends, or returns nil when the family is
// not configured.
func buildClient(prefix string) *pricing.Client {
	baseURL := config.Get(prefix+"_BASE_URL", "")
	if strings.TrimSpace(baseURL) == "" {
		log.Printf("%s_BASE_URL not set; family disabled", prefix)
		return nil
	}

	cfg := pricing.ClientConfig{
		BaseURL:    baseURL,
		APIKey:     config.Get(prefix+"_API_KEY", ""),
		Timeout:    time.Duration(config.GetInt(prefix+"_TIMEOUT_MS", 30000)) * time.Millisecond,
		MaxRetries: config.GetInt(prefix+"_MAX_RETRIES", 3),
	}

	client, err := pricing.NewClient(cfg)
	if err != nil {
		log.Fatalf("configure %s client: %v", prefix, err)
	}
	return client
}

// buildZoneCache prefers Redis when an address is configured and falls
// back to the local SQLite file otherwise.
func buildZoneCache() (ports.ZoneCache, func() error, error) {
	if addr := config.Get("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		return cache.NewRedisZoneCache(client), client.Close, nil
	}

	cacheDB, err := sql.Open("sqlite", config.Get("CACHE_DB_PATH", "data/cache.db"))
	if err != nil {
		return nil, nil, fmt.Errorf("open zone cache db: %w", err)
	}
	if err := cache.InitSchema(cacheDB); err != nil {
		cacheDB.Close()
		return nil, nil, err
	}
	return cache.NewSqliteZoneCache(cacheDB), cacheDB.Close, nil
}
