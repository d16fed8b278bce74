package core

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// validate is the shared struct validator for request and response schemas.
var validate = validator.New()

// queryEncoder turns pending requests into query strings for read verbs,
// reusing the json tags so wire field names stay consistent.
var queryEncoder = func() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("json")
	return enc
}()

// RequestManager is the stateful fluent builder owned by a controller. It
// holds the pending request between Prepare and Send and applies registry
// operations to it.
//
// Failures inside a chain (validation, unknown operation) are recorded and
// surfaced by Err, Dump and Send, so a chain never has to be broken mid-way.
// A fresh Prepare clears the recorded failure along with the pending state.
//
// RequestManager is NOT safe for concurrent use: every operation reads and
// replaces the pending request without synchronization, and at most one Send
// may be in flight at a time.
type RequestManager[Req, Resp any] struct {
	controller   *Controller[Req, Resp]
	pending      *Req
	err          error
	lastResponse *Resp
	lastError    error
}

// Prepare validates data against the request schema and installs it as the
// pending request, replacing any prior pending state. It returns the manager
// for chaining; a validation failure (with the offending fields enumerated)
// is recorded and surfaced by Err, Dump and Send.
func (m *RequestManager[Req, Resp]) Prepare(data Req) *RequestManager[Req, Resp] {
	m.err = nil
	m.pending = nil
	if err := validate.Struct(data); err != nil {
		m.err = newValidationError(fmt.Sprintf("%T", data), err)
		return m
	}
	m.pending = &data
	return m
}

// Apply invokes the named operation from the controller's registry against
// the pending request and returns the manager for chaining. An unknown name
// records an *UnknownOperationError naming the operation and the controller.
func (m *RequestManager[Req, Resp]) Apply(name string, args Args) *RequestManager[Req, Resp] {
	if m.err != nil {
		return m
	}
	op, ok := m.controller.ops.Get(name)
	if !ok {
		m.err = &UnknownOperationError{Controller: m.controller.name, Operation: name}
		return m
	}
	if m.pending == nil {
		m.err = fmt.Errorf("operation %q: %w", name, ErrNothingPrepared)
		return m
	}
	if err := op(m.pending, args); err != nil {
		m.err = fmt.Errorf("operation %q: %w", name, err)
	}
	return m
}

// Err returns the failure recorded by the current chain, if any.
func (m *RequestManager[Req, Resp]) Err() error {
	return m.err
}

// Pending returns the pending request, or nil when nothing is prepared.
func (m *RequestManager[Req, Resp]) Pending() *Req {
	return m.pending
}

// Dump returns the pending request's current field values as a plain
// key/value mapping. It has no side effects: dumping twice without an
// intervening mutation yields identical output. Calling Dump before Prepare
// fails with ErrNothingPrepared.
func (m *RequestManager[Req, Resp]) Dump() (map[string]any, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.pending == nil {
		return nil, ErrNothingPrepared
	}
	raw, err := json.Marshal(m.pending)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	dump := make(map[string]any)
	if err := json.Unmarshal(raw, &dump); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return dump, nil
}

// Send dispatches the pending request through the transport and maps the
// outcome onto the bound response type. The pending request is retained
// afterwards, so it can be dumped, adjusted with further operations, and
// re-sent; only a fresh Prepare discards it.
//
// Write verbs (POST/PUT/PATCH) serialize the pending request as a JSON body;
// read verbs (GET/DELETE) encode it as query parameters. A 2xx body is
// decoded into the response schema, validated, and passed through the
// controller's response hook. A non-2xx outcome goes through the error hook,
// which by default yields the zero-valued null response: the suppressed
// failure stays available via LastError, or is returned directly when the
// transport is configured with ReraiseExceptions.
func (m *RequestManager[Req, Resp]) Send(ctx context.Context) (Resp, error) {
	var zero Resp
	if m.err != nil {
		return zero, m.err
	}
	if m.pending == nil {
		return zero, ErrNothingPrepared
	}

	endpoint := m.controller.endpoint
	var opts []RequestOption
	if endpoint.IsWrite() {
		body, err := json.Marshal(m.pending)
		if err != nil {
			return zero, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		opts = append(opts, WithJSONBody(body))
	} else {
		values := make(url.Values)
		if err := queryEncoder.Encode(*m.pending, values); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		if len(values) > 0 {
			opts = append(opts, WithQuery(values))
		}
	}

	resp, err := m.controller.transport.Request(ctx, endpoint.Verb(), endpoint.Path(), opts...)
	if err != nil {
		m.lastError = err
		return zero, err
	}

	if resp.IsError() {
		failure := resp.Err
		if failure == nil {
			failure = apiErrorFromResponse(resp)
		}
		m.lastError = failure
		m.lastResponse = nil
		result := m.controller.onError(resp)
		if m.controller.transport.Config().ReraiseExceptions {
			return result, failure
		}
		return result, nil
	}

	decoded, err := decodeResponse[Resp](resp)
	if err != nil {
		m.lastError = err
		m.lastResponse = nil
		return zero, err
	}
	m.controller.onResponse(decoded)
	m.lastResponse = decoded
	m.lastError = nil
	return *decoded, nil
}

// LastResponse returns the most recently decoded successful response, or nil.
func (m *RequestManager[Req, Resp]) LastResponse() *Resp {
	return m.lastResponse
}

// LastError returns the failure behind the most recent null response. It is
// how callers on the soft-fail path distinguish "got nothing" from an actual
// empty payload.
func (m *RequestManager[Req, Resp]) LastError() error {
	return m.lastError
}

// decodeResponse unmarshals and schema-validates a 2xx body. Both failure
// modes are surfaced as a *ValidationError before the response hook runs.
func decodeResponse[Resp any](resp *Response) (*Resp, error) {
	decoded := new(Resp)
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, decoded); err != nil {
			return nil, &ValidationError{
				Schema: fmt.Sprintf("%T", *decoded),
				Err:    fmt.Errorf("%w: %v", ErrDecode, err),
			}
		}
	}
	if err := validate.Struct(*decoded); err != nil {
		return nil, newValidationError(fmt.Sprintf("%T", *decoded), err)
	}
	return decoded, nil
}

// decodeJSON unmarshals body into v, wrapping failures in ErrDecode.
func decodeJSON(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// wireError is the error envelope the API returns on failures.
type wireError struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// apiErrorFromResponse builds an *APIError from a non-2xx response,
// extracting the server's error envelope when one is present.
func apiErrorFromResponse(resp *Response) *APIError {
	apiErr := &APIError{
		Status:    resp.StatusCode,
		Message:   "request failed",
		RequestID: resp.RequestID,
	}
	var we wireError
	if json.Unmarshal(resp.Body, &we) == nil && we.Error.Message != "" {
		apiErr.Message = we.Error.Message
		apiErr.Code = we.Error.Code
	}
	return apiErr
}
