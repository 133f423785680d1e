package memstore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockmon-service/internal/domain"
)

func rec(symbol domain.Symbol, price float64) domain.QuoteRecord {
	return domain.QuoteRecord{Symbol: symbol, Current: &price, Timestamp: time.Now().UTC()}
}

func TestGet_UnknownSymbol(t *testing.T) {
	t.Parallel()
	s := New()
	require.Empty(t, s.Get("ZZZ"))
}

func TestAppend_InsertionOrder(t *testing.T) {
	t.Parallel()
	s := New()
	for _, price := range []float64{1, 2, 3} {
		s.Append(rec("MSFT", price))
	}

	got := s.Get("MSFT")
	require.Len(t, got, 3)
	for i, want := range []float64{1, 2, 3} {
		require.Equal(t, want, *got[i].Current)
	}
}

func TestGet_ReturnsSnapshot(t *testing.T) {
	t.Parallel()
	s := New()
	s.Append(rec("AAPL", 1))

	got := s.Get("AAPL")
	got[0] = rec("AAPL", 99)

	require.Equal(t, 1.0, *s.Get("AAPL")[0].Current)
}

func TestAppend_Concurrent(t *testing.T) {
	t.Parallel()
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Append(rec("AAPL", 1))
			s.Append(rec("MSFT", 2))
		}()
	}
	wg.Wait()

	require.Equal(t, 50, s.Len("AAPL"))
	require.Equal(t, 50, s.Len("MSFT"))
}
