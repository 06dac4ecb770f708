package gateway

import (
	"os"
	"strconv"
)

// Config holds the gateway endpoint settings.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// DefaultConfig returns the hosted gateway defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://api.discovery-gateway.example/v1/leads",
		TimeoutMs: 15000,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("DISCOVERY_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DISCOVERY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	return cfg
}
