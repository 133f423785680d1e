package memstore

import (
	"sync"

	"stockmon-service/internal/application"
	"stockmon-service/internal/domain"
)

var _ application.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps per-symbol quote history in process memory.
// Entries are created lazily on first append and never evicted.
type HistoryStore struct {
	mu   sync.RWMutex
	recs map[domain.Symbol][]domain.QuoteRecord
}

func New() *HistoryStore {
	return &HistoryStore{recs: map[domain.Symbol][]domain.QuoteRecord{}}
}

func (s *HistoryStore) Append(rec domain.QuoteRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.Symbol] = append(s.recs[rec.Symbol], rec)
}

// Get returns a snapshot of the stored records in insertion order.
// Unknown symbols yield an empty slice.
func (s *HistoryStore) Get(symbol domain.Symbol) []domain.QuoteRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := s.recs[symbol]
	out := make([]domain.QuoteRecord, len(recs))
	copy(out, recs)
	return out
}

// Len reports the number of records stored for a symbol.
func (s *HistoryStore) Len(symbol domain.Symbol) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs[symbol])
}
