package core

import (
	"errors"
	"time"
)

// Defaults applied by Config.withDefaults.
const (
	DefaultTimeout     = 60 * time.Second
	DefaultRetries     = 3
	DefaultMinimumWait = 1 * time.Second
	DefaultMaximumWait = 30 * time.Second
)

// Configuration errors raised by Transport initialization. Definition-time
// problems are always fatal; they fail before any I/O.
var (
	ErrBaseURLRequired = errors.New("config: base_url is required")
	ErrAPIKeyRequired  = errors.New("config: api_key is required")
)

// Config holds the Transport settings. A Config value is passed explicitly to
// NewTransport / Transport.Initialize and retained as owned state; there is
// no ambient global configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.nexos.ai" (required).
	BaseURL string

	// APIKey authenticates every request (required).
	APIKey Secret

	// Version is an optional API version path segment joined onto BaseURL,
	// e.g. "v1". It is also sent in the X-Api-Version header.
	Version string

	// Timeout bounds each individual HTTP attempt. Defaults to 60s.
	Timeout time.Duration

	// Retries is the total number of attempts per request, including the
	// first. Values below 1 mean a single attempt. Defaults to 3.
	Retries int

	// ExponentialBackoff selects exponential growth between retry waits.
	// When false, every wait is MinimumWait.
	ExponentialBackoff bool

	// MinimumWait and MaximumWait bound the backoff delay between attempts.
	MinimumWait time.Duration
	MaximumWait time.Duration

	// ReraiseExceptions propagates terminal request failures to the caller
	// as errors. When false, Send soft-fails into a null response and the
	// failure is retained on the request manager.
	ReraiseExceptions bool

	// RateLimit is the maximum request issuance rate in requests per second,
	// enforced process-wide across all controllers sharing the transport.
	// Zero means unlimited. Requests are delayed, never dropped, and retried
	// attempts count against the limit.
	RateLimit float64

	// FollowRedirects controls whether 3xx responses are followed.
	FollowRedirects bool
}

// Validate checks the required fields. It is called by Transport.Initialize,
// so a malformed configuration fails fast before the first request.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	if c.APIKey.IsEmpty() {
		return ErrAPIKeyRequired
	}
	return nil
}

// withDefaults fills zero-valued optional fields.
func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Retries < 1 {
		c.Retries = 1
	}
	if c.MinimumWait <= 0 {
		c.MinimumWait = DefaultMinimumWait
	}
	if c.MaximumWait <= 0 {
		c.MaximumWait = DefaultMaximumWait
	}
	if c.MaximumWait < c.MinimumWait {
		c.MaximumWait = c.MinimumWait
	}
	return c
}
