package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockmon-service/internal/domain"
	"stockmon-service/internal/infrastructure/memstore"
)

type countingProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingProvider) Get(_ context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return domain.QuoteRecord{}, p.err
	}
	price := float64(p.calls)
	return domain.QuoteRecord{Symbol: symbol, Current: &price, Timestamp: time.Now().UTC()}, nil
}

func (p *countingProvider) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func newTestRegistry() (*Registry, *countingProvider, *memstore.HistoryStore) {
	p := &countingProvider{}
	st := memstore.New()
	return NewRegistry(p, st, time.Second, nil), p, st
}

func TestStart_TicksAppend(t *testing.T) {
	t.Parallel()
	r, _, st := newTestRegistry()
	defer r.Close()

	r.Start("AAPL", 10*time.Millisecond)
	require.True(t, r.Active("AAPL"))

	require.Eventually(t, func() bool {
		return st.Len("AAPL") >= 3
	}, 2*time.Second, 5*time.Millisecond)

	recs := st.Get("AAPL")
	for i := 1; i < len(recs); i++ {
		require.Less(t, *recs[i-1].Current, *recs[i].Current, "records must keep fetch order")
	}
}

func TestStart_ReplacesExistingJob(t *testing.T) {
	t.Parallel()
	r, _, st := newTestRegistry()
	defer r.Close()

	r.Start("AAPL", 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return st.Len("AAPL") >= 1
	}, 2*time.Second, 5*time.Millisecond)

	// Replacement with a long interval must stop the old ticker.
	r.Start("AAPL", time.Hour)
	require.Equal(t, time.Hour, r.Interval("AAPL"))

	time.Sleep(50 * time.Millisecond) // let any in-flight tick settle
	n := st.Len("AAPL")
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, n, st.Len("AAPL"), "no tick of the old job may fire after replacement")
}

func TestTick_FailureDoesNotStopJob(t *testing.T) {
	t.Parallel()
	r, p, st := newTestRegistry()
	defer r.Close()

	p.setErr(&domain.UpstreamError{Op: "finnhub: status 500"})
	r.Start("AAPL", 10*time.Millisecond)

	require.Eventually(t, func() bool {
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.calls >= 2
	}, 2*time.Second, 5*time.Millisecond)
	require.Zero(t, st.Len("AAPL"))

	p.setErr(nil)
	require.Eventually(t, func() bool {
		return st.Len("AAPL") >= 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestClose_StopsAllJobs(t *testing.T) {
	t.Parallel()
	r, _, st := newTestRegistry()

	r.Start("AAPL", 10*time.Millisecond)
	r.Start("MSFT", 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return st.Len("AAPL") >= 1 && st.Len("MSFT") >= 1
	}, 2*time.Second, 5*time.Millisecond)

	r.Close()
	require.False(t, r.Active("AAPL"))

	time.Sleep(50 * time.Millisecond)
	a, m := st.Len("AAPL"), st.Len("MSFT")
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, a, st.Len("AAPL"))
	require.Equal(t, m, st.Len("MSFT"))
}

func TestJobs_AreIndependentPerSymbol(t *testing.T) {
	t.Parallel()
	r, p, st := newTestRegistry()
	defer r.Close()

	p.setErr(&domain.UpstreamError{Op: "finnhub: status 500"})
	r.Start("AAPL", 10*time.Millisecond)
	r.Start("MSFT", 10*time.Millisecond)

	p.setErr(nil)
	require.Eventually(t, func() bool {
		return st.Len("AAPL") >= 1 && st.Len("MSFT") >= 1
	}, 2*time.Second, 5*time.Millisecond)
}
