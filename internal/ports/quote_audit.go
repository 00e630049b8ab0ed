package ports

import "context"

// QuoteRecord is one resolved pricing decision, kept for invoicing
// reconciliation and for watching how often the fallback tiers fire.
type QuoteRecord struct {
	QuoteType string
	Address   string
	Amount    float64
	Tier      string
}

// Port: append-only audit log of resolved quotes. Writes are
// best-effort; pricing never fails because auditing did.
type QuoteAudit interface {
	Record(ctx context.Context, rec QuoteRecord) error
}
