// Package core provides the endpoint-controller framework the Nexos AI SDK is
// built on.
//
// # Controllers and the Request Manager
//
// Every API endpoint is bound by a [Controller]: an immutable pairing of an
// endpoint descriptor ("POST: /chat/completions"), a request schema type, a
// response schema type, and an operations registry. The controller owns a
// [RequestManager], a reusable fluent builder for constructing and dispatching
// requests:
//
//	resp, err := chat.Request().
//	    Prepare(domain.ChatCompletionsRequest{Model: "gpt-4o", Messages: msgs}).
//	    Apply("with_temperature", core.Args{"temperature": 0.2}).
//	    Send(ctx)
//
// Prepare validates its input against the request schema and replaces any
// previously pending payload. Each Apply call looks the operation up in the
// controller's registry and mutates the pending request in place; unknown
// names surface an [*UnknownOperationError] naming the operation and the
// controller. Send serializes the pending request (JSON body for write verbs,
// query string for read verbs), dispatches it through the shared [Transport],
// and decodes the result into the bound response type. The pending request is
// retained after Send, so the payload can be dumped, tweaked, and re-sent; a
// fresh Prepare discards it.
//
// RequestManager is NOT safe for concurrent use. Callers needing parallel
// in-flight requests must use distinct controller instances; the shared
// [Transport] is the only component designed for concurrent use.
//
// # Null responses
//
// When [Config].ReraiseExceptions is false, a failed Send returns the zero
// value of the response type instead of an error, so callers can read fields
// without branching on presence. The suppressed failure stays inspectable
// through [RequestManager.LastError]. With ReraiseExceptions set, the typed
// error ([*APIError] or a transport error) is returned instead.
//
// # Transport
//
// [Transport] owns the HTTP client: auth headers, retries with exponential
// backoff and jitter (bounded by MinimumWait/MaximumWait), and an optional
// process-wide rate limiter that delays issuance rather than dropping
// requests. Retried attempts count against the rate limit.
//
// # Errors
//
// Definition-time problems (malformed descriptors, duplicate operation names)
// fail at controller construction, before any I/O. Runtime errors are typed:
// [*ValidationError], [*UnknownOperationError], [*APIError],
// [ErrNothingPrepared], [ErrTransportClosed]. Use errors.Is / errors.As to
// classify them.
package core
