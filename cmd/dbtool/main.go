package main

import (
	"database/sql"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"order-pricing-service/internal/adapters/cache"
	"order-pricing-service/internal/adapters/repositories"
	"order-pricing-service/internal/config"
	"order-pricing-service/internal/platform/db"
)

// dbtool prepares the storage the pricing service depends on: the
// postgres quote audit schema and the local SQLite zone cache.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) != "" {
		auditDB, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer auditDB.Close()

		log.Println("Initializing quote audit schema...")
		if err := repositories.InitSchema(auditDB); err != nil {
			log.Fatalf("audit schema initialization failed: %v", err)
		}
		log.Println("Audit schema ready.")
	} else {
		log.Println("DATABASE_URL not set; skipping audit schema")
	}

	cachePath := config.Get("CACHE_DB_PATH", "data/cache.db")
	cacheDB, err := sql.Open("sqlite", cachePath)
	if err != nil {
		log.Fatalf("open zone cache db %q: %v", cachePath, err)
	}
	defer cacheDB.Close()

	log.Println("Initializing zone cache schema...")
	if err := cache.InitSchema(cacheDB); err != nil {
		log.Fatalf("zone cache schema initialization failed: %v", err)
	}
	log.Println("Zone cache ready.")
}
