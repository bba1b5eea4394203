// Package ratelimit provides rate limiting functionality using token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket represents a token bucket rate limiter.
// It allows a certain number of requests (tokens) per time window,
// with tokens refilling at a steady rate.
type TokenBucket struct {
	capacity   int        // Maximum tokens (burst capacity)
	refillRate float64    // Tokens per second
	tokens     float64    // Current tokens available
	lastRefill time.Time  // Last time tokens were refilled
	mu         sync.Mutex // Mutex for thread safety
}

// newTokenBucket creates a new token bucket with the specified capacity and refill rate.
func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity), // Start with full bucket
		lastRefill: time.Now(),
	}
}

// allow checks if a token is available and consumes it if so.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients using token buckets.
type Limiter struct {
	buckets map[string]*TokenBucket // client+endpoint key -> bucket
	mu      sync.Mutex
	config  *Config
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Endpoints     []EndpointConfig
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:       true,
			DefaultLimit:  600,
			DefaultWindow: time.Minute,
		}
	}
	return &Limiter{
		buckets: make(map[string]*TokenBucket),
		config:  config,
	}
}

// Allow checks if a request from the given client is allowed for the specified
// endpoint. Returns true if allowed, along with rate limit information.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.Endpoints)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (health, metrics)
	if endpointConfig.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.getBucket(clientID+":"+endpoint+":"+method, endpointConfig)
	if bucket.allow() {
		return true, Info{Allowed: true, Limit: endpointConfig.Limit}
	}

	return false, Info{
		Allowed:    false,
		Limit:      endpointConfig.Limit,
		RetryAfter: time.Duration(float64(time.Second) / rate(endpointConfig)),
	}
}

func (l *Limiter) getBucket(key string, cfg *EndpointConfig) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bucket, ok := l.buckets[key]; ok {
		return bucket
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Limit
	}
	bucket := newTokenBucket(burst, rate(cfg))
	l.buckets[key] = bucket
	return bucket
}

// rate converts an endpoint limit/window to tokens per second.
func rate(cfg *EndpointConfig) float64 {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	return float64(cfg.Limit) / window.Seconds()
}
