package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRateLimited     = errors.New("rate limited")
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrServer          = errors.New("server error")
	ErrNetwork         = errors.New("network error")
	ErrDecode          = errors.New("decode error")
	ErrNothingPrepared = errors.New("nothing prepared: call Prepare before Dump or Send")
	ErrTransportClosed = errors.New("transport disconnected: re-initialize before issuing requests")
)

// EndpointFormatError reports a malformed endpoint descriptor. It is raised
// at controller construction time, before any request is attempted.
type EndpointFormatError struct {
	Descriptor string
	Reason     string
}

func (e *EndpointFormatError) Error() string {
	return fmt.Sprintf("invalid endpoint descriptor %q: %s (expected \"<VERB>: /<path>\")", e.Descriptor, e.Reason)
}

// ValidationError reports that a payload failed request- or response-schema
// validation. Fields enumerates the offending struct fields.
type ValidationError struct {
	Schema string
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s failed validation on fields [%s]: %v", e.Schema, strings.Join(e.Fields, ", "), e.Err)
	}
	return fmt.Sprintf("%s failed validation: %v", e.Schema, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// newValidationError adapts a validator/v10 failure, pulling out the field
// names so callers see exactly what was rejected.
func newValidationError(schema string, err error) *ValidationError {
	ve := &ValidationError{Schema: schema, Err: err}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Fields = append(ve.Fields, fe.Field())
		}
	}
	return ve
}

// UnknownOperationError reports a chained operation name absent from the
// owning controller's registry.
type UnknownOperationError struct {
	Controller string
	Operation  string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("controller %q has no operation %q", e.Controller, e.Operation)
}

// APIError is a non-2xx HTTP outcome, carrying whatever diagnostic detail the
// server returned.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("api error: %s (status=%d, code=%s, request_id=%s)", e.Message, e.Status, e.Code, e.RequestID)
	}
	return fmt.Sprintf("api error: %s (status=%d, code=%s)", e.Message, e.Status, e.Code)
}

// Unwrap maps the HTTP status onto the matching sentinel so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 401 || e.Status == 403:
		return ErrUnauthorized
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 429:
		return ErrRateLimited
	case e.Status >= 500:
		return ErrServer
	case e.Status >= 400:
		return ErrBadRequest
	}
	return nil
}

// retryableStatus reports whether an HTTP status is worth retrying.
func retryableStatus(status int) bool {
	if status == 429 {
		return true
	}
	return status >= 500 && status < 600
}
