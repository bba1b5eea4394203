package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:       enabled,
		DefaultLimit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow: getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		Endpoints:     DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Batch evaluation is the most expensive operation
		{Path: "/evaluate/batch", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Single-door evaluation
		{Path: "/evaluate", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Login attempts are limited to slow down credential guessing
		{Path: "/auth/login", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Health and metrics are unlimited - handled by special case in matcher
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
