package domain

import "time"

// QuoteRecord is one captured upstream quote. Price fields are pointers
// because the upstream may omit any of them; Timestamp is the capture
// instant, not the upstream quote time.
type QuoteRecord struct {
	Symbol        Symbol
	Open          *float64
	High          *float64
	Low           *float64
	Current       *float64
	PreviousClose *float64
	Timestamp     time.Time
}
