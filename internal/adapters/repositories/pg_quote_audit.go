package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"order-pricing-service/internal/ports"
)

// Postgres backed append-only audit log of resolved quotes. One row per
// pricing decision, including which fallback tier produced it, so
// invoicing can be reconciled and tier health watched over time.
type PgQuoteAudit struct {
	DB *sql.DB
}

func NewPgQuoteAudit(db *sql.DB) *PgQuoteAudit {
	return &PgQuoteAudit{DB: db}
}

// InitSchema creates the audit table when it does not exist yet.
func InitSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quote_audit (
			id         BIGSERIAL PRIMARY KEY,
			quote_type TEXT NOT NULL,
			address    TEXT NOT NULL,
			amount     NUMERIC(12, 2) NOT NULL,
			tier       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE INDEX IF NOT EXISTS quote_audit_created_at_idx ON quote_audit (created_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init quote audit schema: %w", err)
		}
	}
	return nil
}

// Record appends one resolved quote.
func (p *PgQuoteAudit) Record(ctx context.Context, rec ports.QuoteRecord) error {
	if p.DB == nil {
		return errors.New("quote audit: db is nil")
	}
	if rec.QuoteType == "" || rec.Tier == "" {
		return fmt.Errorf("record quote audit: incomplete record %+v", rec)
	}

	q := `
	INSERT INTO quote_audit (quote_type, address, amount, tier)
	VALUES ($1, $2, $3, $4);
	`

	if _, err := p.DB.ExecContext(ctx, q, rec.QuoteType, rec.Address, rec.Amount, rec.Tier); err != nil {
		return fmt.Errorf("record quote audit type=%q tier=%q: %w", rec.QuoteType, rec.Tier, err)
	}

	return nil
}
