package provider

import (
	"context"
	"time"

	"stockmon-service/internal/application"
	"stockmon-service/internal/domain"
)

// Ensure Fake implements application.QuoteProvider.
var _ application.QuoteProvider = (*Fake)(nil)

// Fake returns a fixed price for every symbol; useful for dev and tests
// when no upstream credential is configured.
type Fake struct {
	price float64
}

func NewFake(price float64) *Fake { return &Fake{price: price} }

func (f *Fake) Get(_ context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	price := f.price
	return domain.QuoteRecord{
		Symbol:        symbol,
		Open:          &price,
		High:          &price,
		Low:           &price,
		Current:       &price,
		PreviousClose: &price,
		Timestamp:     time.Now().UTC(),
	}, nil
}
