package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port string
	// Provider
	Provider       string
	FinnhubAPIBase string
	FinnhubAPIKey  string
	RequestTimeout time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", "8080"),
		Provider:       getEnv("PROVIDER", "fake"),
		FinnhubAPIBase: getEnv("FINNHUB_API_BASE", "https://finnhub.io"),
		FinnhubAPIKey:  getEnv("FINNHUB_API_KEY", ""),
		RequestTimeout: time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", "3000"), 3000)) * time.Millisecond,
	}
}
