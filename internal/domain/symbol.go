package domain

import "strings"

// Symbol is a ticker identifier, always stored uppercase.
type Symbol string

// NormalizeSymbol trims surrounding whitespace and uppercases the input.
// An input that is blank after trimming is invalid.
func NormalizeSymbol(raw string) (Symbol, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", &ValidationError{Field: "symbol", Reason: "must be a non-empty string"}
	}
	return Symbol(s), nil
}
