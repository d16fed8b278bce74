package core

import (
	"log/slog"
	"time"
)

// TelemetryHook receives notifications about request lifecycle events.
// Implementations can use this for logging, metrics, or tracing.
//
// Event types intentionally exclude sensitive data: API keys, request
// payloads, and response bodies are never included. Only operational metadata
// (verb, path, timing, status, attempt count) is exposed, so telemetry can be
// logged or shipped to monitoring systems without credential exposure.
type TelemetryHook interface {
	// OnRequestStart is called when a request is about to be dispatched.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called when a request completes, after all retries.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Verb  string
	Path  string
	Start time.Time
}

// RequestEndEvent contains metadata about a completed request.
type RequestEndEvent struct {
	Verb     string
	Path     string
	Status   int // final HTTP status, 0 when no response was obtained
	Attempts int // total attempts made, including the first
	Start    time.Time
	End      time.Time
	Err      error // nil when a response (of any status) was obtained
}

// Duration returns the elapsed time across all attempts.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Compile-time interface checks.
var (
	_ TelemetryHook = NoopTelemetryHook{}
	_ TelemetryHook = SlogTelemetryHook{}
)

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// It is the default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

// SlogTelemetryHook emits request lifecycle events through a *slog.Logger.
type SlogTelemetryHook struct {
	Logger *slog.Logger
}

// NewSlogTelemetryHook creates a hook logging to the given logger, or
// slog.Default() when nil.
func NewSlogTelemetryHook(logger *slog.Logger) SlogTelemetryHook {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogTelemetryHook{Logger: logger}
}

// OnRequestStart logs the outgoing request at debug level.
func (h SlogTelemetryHook) OnRequestStart(e RequestStartEvent) {
	h.Logger.Debug("request start", "verb", e.Verb, "path", e.Path)
}

// OnRequestEnd logs the outcome; failures log at error level.
func (h SlogTelemetryHook) OnRequestEnd(e RequestEndEvent) {
	if e.Err != nil {
		h.Logger.Error("request failed",
			"verb", e.Verb, "path", e.Path,
			"attempts", e.Attempts, "duration", e.Duration(), "error", e.Err)
		return
	}
	h.Logger.Debug("request end",
		"verb", e.Verb, "path", e.Path, "status", e.Status,
		"attempts", e.Attempts, "duration", e.Duration())
}
