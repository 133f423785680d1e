package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"stockmon-service/internal/application"
	"stockmon-service/internal/domain"
)

const finnhubQuotePath = "/api/v1/quote"

// FinnhubProvider fetches quotes from the Finnhub REST API.
type FinnhubProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

var _ application.QuoteProvider = (*FinnhubProvider)(nil)

// Upstream price fields are pointers so an omitted key stays nil and
// passes through as JSON null instead of a fabricated zero.
type finnhubQuoteResp struct {
	Open          *float64 `json:"o"`
	High          *float64 `json:"h"`
	Low           *float64 `json:"l"`
	Current       *float64 `json:"c"`
	PreviousClose *float64 `json:"pc"`
}

func (p *FinnhubProvider) Get(ctx context.Context, symbol domain.Symbol) (domain.QuoteRecord, error) {
	if p.BaseURL == "" || p.APIKey == "" {
		return domain.QuoteRecord{}, &domain.UpstreamError{Op: "finnhub: missing configuration"}
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.QuoteRecord{}, &domain.UpstreamError{Op: "finnhub: invalid base url", Err: err}
	}
	u.Path = finnhubQuotePath
	q := u.Query()
	q.Set("symbol", string(symbol))
	q.Set("token", p.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.QuoteRecord{}, &domain.UpstreamError{Op: "finnhub: create request", Err: err}
	}

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.QuoteRecord{}, &domain.UpstreamError{Op: "finnhub: do request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.QuoteRecord{}, &domain.UpstreamError{
			Op:  fmt.Sprintf("finnhub: status %d", resp.StatusCode),
			Err: errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	var body finnhubQuoteResp
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.QuoteRecord{}, &domain.UpstreamError{Op: "finnhub: decode response", Err: err}
	}

	return domain.QuoteRecord{
		Symbol:        symbol,
		Open:          body.Open,
		High:          body.High,
		Low:           body.Low,
		Current:       body.Current,
		PreviousClose: body.PreviousClose,
		Timestamp:     time.Now().UTC(),
	}, nil
}
