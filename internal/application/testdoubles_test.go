package application

import (
	"context"
	"time"

	"stockmon-service/internal/domain"
)

type fakeProvider struct {
	out domain.QuoteRecord
	err error
}

func (f *fakeProvider) Get(_ context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	if f.err != nil {
		return domain.QuoteRecord{}, f.err
	}
	rec := f.out
	rec.Symbol = symbol
	return rec, nil
}

type fakeStore struct {
	recs map[domain.Symbol][]domain.QuoteRecord
}

func (f *fakeStore) Append(rec domain.QuoteRecord) {
	if f.recs == nil {
		f.recs = map[domain.Symbol][]domain.QuoteRecord{}
	}
	f.recs[rec.Symbol] = append(f.recs[rec.Symbol], rec)
}

func (f *fakeStore) Get(symbol domain.Symbol) []domain.QuoteRecord {
	return f.recs[symbol]
}

type fakeRegistry struct {
	started  []domain.Symbol
	interval time.Duration
}

func (f *fakeRegistry) Start(symbol domain.Symbol, every time.Duration) {
	f.started = append(f.started, symbol)
	f.interval = every
}

func (f *fakeRegistry) Active(symbol domain.Symbol) bool {
	for _, s := range f.started {
		if s == symbol {
			return true
		}
	}
	return false
}

func f64(v float64) *float64 { return &v }
