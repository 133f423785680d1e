package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"stockmon-service/internal/domain"
)

// MonitorService orchestrates the provider, the history store and the
// monitor registry behind the HTTP handlers.
type MonitorService struct {
	provider QuoteProvider
	history  HistoryStore
	registry MonitorRegistry
	log      *zap.Logger
}

type Option func(*MonitorService)

func WithLogger(l *zap.Logger) Option { return func(s *MonitorService) { s.log = l } }

func NewMonitorService(provider QuoteProvider, history HistoryStore, registry MonitorRegistry, opts ...Option) *MonitorService {
	s := &MonitorService{
		provider: provider,
		history:  history,
		registry: registry,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// StartMonitoring validates the request, normalizes the symbol and installs
// (or replaces) the recurring fetch job. It returns the confirmation message
// shown to the caller.
func (s *MonitorService) StartMonitoring(symbol string, minutes, seconds int) (string, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return "", err
	}
	if minutes < 0 {
		return "", validationErr("minutes", "must be a non-negative integer")
	}
	if seconds < 0 {
		return "", validationErr("seconds", "must be a non-negative integer")
	}
	interval := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if interval <= 0 {
		return "", validationErr("interval", "minutes and seconds must add up to a positive duration")
	}

	s.registry.Start(sym, interval)
	s.log.Info("monitoring_started",
		zap.String("symbol", string(sym)),
		zap.Duration("interval", interval),
	)
	return fmt.Sprintf("monitoring %s every %s", sym, interval), nil
}

// Refresh performs one synchronous fetch and appends the result before
// returning it. Provider failures are surfaced to the caller unchanged.
func (s *MonitorService) Refresh(ctx context.Context, symbol string) (domain.QuoteRecord, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return domain.QuoteRecord{}, err
	}
	rec, err := s.provider.Get(ctx, sym)
	if err != nil {
		return domain.QuoteRecord{}, err
	}
	s.history.Append(rec)
	return rec, nil
}

// History returns the stored records for a symbol in fetch order.
func (s *MonitorService) History(symbol string) ([]domain.QuoteRecord, error) {
	sym, err := domain.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	return s.history.Get(sym), nil
}
