package bootstrap

import (
	"fmt"
	"net/http"

	"stockmon-service/internal/application"
	"stockmon-service/internal/config"
	"stockmon-service/internal/infrastructure/logx"
	"stockmon-service/internal/infrastructure/memstore"
	"stockmon-service/internal/infrastructure/provider"
	"stockmon-service/internal/infrastructure/scheduler"
)

// BuildQuoteProvider returns the provider selected by PROVIDER.
func BuildQuoteProvider(cfg config.Config) (application.QuoteProvider, error) {
	switch cfg.Provider {
	case "finnhub":
		if cfg.FinnhubAPIKey == "" {
			return nil, fmt.Errorf("FINNHUB_API_KEY is required for PROVIDER=finnhub")
		}
		return &provider.FinnhubProvider{
			BaseURL: cfg.FinnhubAPIBase,
			APIKey:  cfg.FinnhubAPIKey,
			Client:  &http.Client{Timeout: cfg.RequestTimeout},
		}, nil
	default:
		return provider.NewFake(150.25), nil
	}
}

// BuildMonitorService wires the provider, store and registry into the
// application service. The returned registry must be closed at shutdown.
func BuildMonitorService(cfg config.Config) (*application.MonitorService, *scheduler.Registry, error) {
	log := logx.L()

	prov, err := BuildQuoteProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	store := memstore.New()
	registry := scheduler.NewRegistry(prov, store, cfg.RequestTimeout, log)
	svc := application.NewMonitorService(prov, store, registry, application.WithLogger(log))
	return svc, registry, nil
}
