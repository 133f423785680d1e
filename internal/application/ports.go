package application

import (
	"context"
	"time"

	"stockmon-service/internal/domain"
)

// QuoteProvider fetches one quote from the upstream source.
type QuoteProvider interface {
	Get(ctx context.Context, symbol domain.Symbol) (domain.QuoteRecord, error)
}

// HistoryStore keeps the per-symbol, append-only fetch history.
type HistoryStore interface {
	Append(rec domain.QuoteRecord)
	// Get returns the stored records in insertion order. Unknown symbols
	// yield an empty slice, not an error.
	Get(symbol domain.Symbol) []domain.QuoteRecord
}

// MonitorRegistry schedules recurring fetches, at most one per symbol.
// Starting a symbol that is already monitored replaces the old job.
type MonitorRegistry interface {
	Start(symbol domain.Symbol, every time.Duration)
	Active(symbol domain.Symbol) bool
}
