package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"stockmon-service/internal/application"
	"stockmon-service/internal/domain"
)

var _ application.MonitorRegistry = (*Registry)(nil)

// Registry owns the recurring fetch jobs, at most one per symbol.
// Replacing a job cancels the old ticker before the new one exists, so no
// old tick can fire once the replacement is installed.
type Registry struct {
	provider     application.QuoteProvider
	history      application.HistoryStore
	fetchTimeout time.Duration
	log          *zap.Logger

	mu   sync.Mutex
	base context.Context
	stop context.CancelFunc
	jobs map[domain.Symbol]*job
}

type job struct {
	cancel   context.CancelFunc
	interval time.Duration
}

func NewRegistry(provider application.QuoteProvider, history application.HistoryStore, fetchTimeout time.Duration, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 3 * time.Second
	}
	base, stop := context.WithCancel(context.Background())
	return &Registry{
		provider:     provider,
		history:      history,
		fetchTimeout: fetchTimeout,
		log:          log,
		base:         base,
		stop:         stop,
		jobs:         map[domain.Symbol]*job{},
	}
}

// Start installs a recurring fetch for the symbol, cancelling any job that
// already exists for it. Cancel and install happen under one lock.
func (r *Registry) Start(symbol domain.Symbol, every time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.jobs[symbol]; ok {
		old.cancel()
		r.log.Info("monitor_replaced",
			zap.String("symbol", string(symbol)),
			zap.Duration("old_interval", old.interval),
			zap.Duration("interval", every),
		)
	}

	ctx, cancel := context.WithCancel(r.base)
	r.jobs[symbol] = &job{cancel: cancel, interval: every}
	go r.run(ctx, symbol, every)
}

// Active reports whether a job is installed for the symbol.
func (r *Registry) Active(symbol domain.Symbol) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[symbol]
	return ok
}

// Interval returns the installed job's interval, or zero when none exists.
func (r *Registry) Interval(symbol domain.Symbol) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[symbol]; ok {
		return j.interval
	}
	return 0
}

// Close cancels every job. Used at process shutdown only; the HTTP surface
// has no stop operation.
func (r *Registry) Close() {
	r.stop()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = map[domain.Symbol]*job{}
}

func (r *Registry) run(ctx context.Context, symbol domain.Symbol, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.tick(ctx, symbol)
		}
	}
}

// tick performs one fetch-and-append. Failures are logged and swallowed so
// monitoring continues past transient upstream errors.
func (r *Registry) tick(ctx context.Context, symbol domain.Symbol) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn("tick_panic", zap.String("symbol", string(symbol)), zap.Any("error", rec))
		}
	}()

	c, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	rec, err := r.provider.Get(c, symbol)
	if err != nil {
		r.log.Warn("tick_fetch_failed", zap.String("symbol", string(symbol)), zap.Error(err))
		return
	}
	// The job may have been replaced while the fetch was in flight; its
	// successor owns the history from that point on.
	if ctx.Err() != nil {
		return
	}
	r.history.Append(rec)
}
