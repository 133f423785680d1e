package httpserver

import (
	"context"
	"time"

	"stockmon-service/internal/application"
	"stockmon-service/internal/domain"
)

var _ application.QuoteProvider = (*fakeProvider)(nil)
var _ application.HistoryStore = (*fakeStore)(nil)
var _ application.MonitorRegistry = (*fakeRegistry)(nil)

type fakeProvider struct {
	price float64
	err   error
}

func (f *fakeProvider) Get(_ context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	if f.err != nil {
		return domain.QuoteRecord{}, f.err
	}
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

type startCall struct {
	symbol   domain.Symbol
	interval time.Duration
}

type fakeRegistry struct {
	calls []startCall
}

func (f *fakeRegistry) Start(symbol domain.Symbol, every time.Duration) {
	f.calls = append(f.calls, startCall{symbol: symbol, interval: every})
}

func (f *fakeRegistry) Active(symbol domain.Symbol) bool {
	for _, c := range f.calls {
		if c.symbol == symbol {
			return true
		}
	}
	return false
}

// NewInMemoryService wires the service against in-memory fakes for tests.
func NewInMemoryService() (*application.MonitorService, *fakeProvider, *fakeStore, *fakeRegistry) {
	p := &fakeProvider{price: 150.25}
	st := &fakeStore{recs: map[domain.Symbol][]domain.QuoteRecord{}}
	reg := &fakeRegistry{}
	return application.NewMonitorService(p, st, reg), p, st, reg
}
