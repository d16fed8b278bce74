package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

// Wire-level constants. The auth header is a fixed name with a fixed prefix;
// the value is always "<prefix> <api_key>".
const (
	AuthHeaderName    = "Authorization"
	AuthHeaderPrefix  = "Bearer"
	VersionHeaderName = "X-Api-Version"
	RequestIDHeader   = "X-Request-ID"
)

// SDKVersion identifies this client in the User-Agent header.
const SDKVersion = "0.1.0"

// AuthScheme applies an authentication strategy to an outgoing request.
type AuthScheme interface {
	Apply(req *http.Request)
}

// BearerAuth is the key-based authentication scheme used by the Nexos API.
type BearerAuth struct {
	key Secret
}

// Apply sets the fixed auth header to "<prefix> <api_key>".
func (b BearerAuth) Apply(req *http.Request) {
	req.Header.Set(AuthHeaderName, AuthHeaderPrefix+" "+b.key.Expose())
}

// Response is a fully-read HTTP outcome handed back to the request manager.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string

	// Err holds the terminal transport failure when no HTTP response could
	// be obtained and ReraiseExceptions is disabled. StatusCode is 0 in that
	// case.
	Err error
}

// IsError reports whether the outcome is a non-2xx status or a transport
// failure.
func (r *Response) IsError() bool {
	return r.StatusCode == 0 || r.StatusCode >= 400
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return decodeJSON(r.Body, v)
}

// requestOptions collects per-call settings for Transport.Request.
type requestOptions struct {
	body         []byte
	query        url.Values
	header       http.Header
	overrideBase bool
}

// RequestOption customizes a single Transport.Request call.
type RequestOption func(*requestOptions)

// WithJSONBody attaches a JSON request body.
func WithJSONBody(body []byte) RequestOption {
	return func(o *requestOptions) { o.body = body }
}

// WithQuery appends query parameters to the request URL.
func WithQuery(values url.Values) RequestOption {
	return func(o *requestOptions) { o.query = values }
}

// WithRequestHeader adds a header to this request only.
func WithRequestHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.header == nil {
			o.header = make(http.Header)
		}
		o.header.Set(key, value)
	}
}

// WithOverrideBase uses the given URL verbatim instead of joining it to the
// configured base URL. For absolute URLs returned by the API itself.
func WithOverrideBase() RequestOption {
	return func(o *requestOptions) { o.overrideBase = true }
}

// Transport owns the reusable HTTP client behind every controller. It builds
// auth headers, applies the retry policy, enforces the optional process-wide
// rate limit, and supports graceful shutdown via Disconnect.
//
// Transport is safe for concurrent use; it is the only component in this
// package designed to be shared across goroutines.
type Transport struct {
	mu          sync.RWMutex
	cfg         Config
	baseURL     string
	client      *http.Client
	limiter     *rateLimiter
	telemetry   TelemetryHook
	initialized bool
}

// TransportOption configures a Transport at construction time.
type TransportOption func(*Transport)

// WithTelemetry sets the telemetry hook for the transport.
func WithTelemetry(h TelemetryHook) TransportOption {
	return func(t *Transport) {
		if h != nil {
			t.telemetry = h
		}
	}
}

// NewTransport creates a Transport bound to cfg. The configuration is
// validated immediately; a malformed one fails here, before any request.
func NewTransport(cfg Config, opts ...TransportOption) (*Transport, error) {
	t := &Transport{telemetry: NoopTelemetryHook{}}
	for _, opt := range opts {
		opt(t)
	}
	if err := t.Initialize(cfg); err != nil {
		return nil, err
	}
	return t, nil
}

// Initialize binds base URL, timeout, auth, retry policy and rate limit from
// cfg. It is idempotent: re-initializing replaces the prior settings and
// revives a disconnected transport.
func (t *Transport) Initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	client := &http.Client{Timeout: cfg.Timeout}
	if !cfg.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.cfg = cfg
	t.baseURL = joinURL(cfg.BaseURL, cfg.Version)
	t.client = client
	t.limiter = newRateLimiter(cfg.RateLimit)
	t.initialized = true
	return nil
}

// Config returns a copy of the active configuration.
func (t *Transport) Config() Config {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cfg
}

// BaseURL returns the configured base URL joined with the version segment.
func (t *Transport) BaseURL() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.baseURL
}

// ConstructHeaders builds the header set for cfg: auth, version, content
// type and user agent. Pure function of the configuration.
func (t *Transport) ConstructHeaders(cfg Config) http.Header {
	headers := make(http.Header)
	if !cfg.APIKey.IsEmpty() {
		headers.Set(AuthHeaderName, AuthHeaderPrefix+" "+cfg.APIKey.Expose())
	}
	if cfg.Version != "" {
		headers.Set(VersionHeaderName, cfg.Version)
	}
	headers.Set("Content-Type", "application/json")
	headers.Set("User-Agent", "nexos-go/"+SDKVersion)
	return headers
}

// ConstructAuth returns the authentication scheme for cfg, or nil when no
// key-based auth is configured.
func (t *Transport) ConstructAuth(cfg Config) AuthScheme {
	if cfg.APIKey.IsEmpty() {
		return nil
	}
	return BearerAuth{key: cfg.APIKey}
}

// Request performs an HTTP call with the configured retry policy. Transient
// failures (network errors, 429, 5xx) are retried up to cfg.Retries total
// attempts with backoff bounded by MinimumWait/MaximumWait; each attempt,
// retries included, is gated by the rate limiter. Non-retryable statuses are
// returned after a single attempt.
//
// When every attempt fails at the transport level, the terminal error is
// returned if ReraiseExceptions is set; otherwise a best-effort Response with
// StatusCode 0 and the failure recorded in Err is produced instead.
func (t *Transport) Request(ctx context.Context, verb, requestURL string, opts ...RequestOption) (*Response, error) {
	t.mu.RLock()
	if !t.initialized {
		t.mu.RUnlock()
		return nil, ErrTransportClosed
	}
	cfg := t.cfg
	client := t.client
	limiter := t.limiter
	baseURL := t.baseURL
	t.mu.RUnlock()

	var ro requestOptions
	for _, opt := range opts {
		opt(&ro)
	}

	fullURL := requestURL
	if !ro.overrideBase {
		fullURL = joinURL(baseURL, strings.TrimPrefix(requestURL, "/"))
	}
	if len(ro.query) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + ro.query.Encode()
	}

	start := time.Now()
	t.telemetry.OnRequestStart(RequestStartEvent{Verb: verb, Path: requestURL, Start: start})

	attempts := 0
	operation := func() (*Response, error) {
		if err := limiter.wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}
		attempts++

		resp, err := t.do(ctx, client, cfg, verb, fullURL, &ro)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, backoff.Permanent(err)
			}
			return nil, err // network-level failure, retryable
		}
		if retryableStatus(resp.StatusCode) {
			return resp, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
		}
		return resp, nil
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(t.backoffPolicy(cfg)),
		backoff.WithMaxTries(uint(cfg.Retries)),
	)

	// Retry exhaustion on a retryable status still produced a response; the
	// caller maps it through its error hook rather than seeing a raw error.
	if err != nil && resp != nil {
		err = nil
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.telemetry.OnRequestEnd(RequestEndEvent{
		Verb: verb, Path: requestURL, Status: status,
		Attempts: attempts, Start: start, End: time.Now(), Err: err,
	})

	if err != nil {
		if cfg.ReraiseExceptions {
			return nil, err
		}
		return &Response{StatusCode: 0, Err: err}, nil
	}
	return resp, nil
}

// do performs one HTTP attempt with a fresh request ID.
func (t *Transport) do(ctx context.Context, client *http.Client, cfg Config, verb, fullURL string, ro *requestOptions) (*Response, error) {
	var body io.Reader
	if len(ro.body) > 0 {
		body = bytes.NewReader(ro.body)
	}

	req, err := http.NewRequestWithContext(ctx, verb, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	for key, values := range t.ConstructHeaders(cfg) {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	for key, values := range ro.header {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if auth := t.ConstructAuth(cfg); auth != nil {
		auth.Apply(req)
	}

	httpResp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
		RequestID:  httpResp.Header.Get("x-request-id"),
	}, nil
}

// backoffPolicy builds the wait strategy between attempts: exponential growth
// bounded by MinimumWait/MaximumWait with jitter, or a constant MinimumWait.
func (t *Transport) backoffPolicy(cfg Config) backoff.BackOff {
	if cfg.ExponentialBackoff {
		exp := backoff.NewExponentialBackOff()
		exp.InitialInterval = cfg.MinimumWait
		exp.MaxInterval = cfg.MaximumWait
		return exp
	}
	return backoff.NewConstantBackOff(cfg.MinimumWait)
}

// Disconnect releases the underlying connection pool. It is safe to call
// repeatedly; subsequent Request calls fail with ErrTransportClosed until
// Initialize is called again.
func (t *Transport) Disconnect() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client != nil {
		t.client.CloseIdleConnections()
	}
	t.initialized = false
}

// joinURL joins base and segment with exactly one slash. An empty segment
// returns base unchanged.
func joinURL(base, segment string) string {
	if segment == "" {
		return strings.TrimSuffix(base, "/")
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(segment, "/")
}
