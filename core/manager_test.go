package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
)

func TestPrepareDumpRoundTrip(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	dump, err := c.Request().
		Prepare(mockRequest{Key: "k", Value: "v"}).
		Dump()
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	want := map[string]any{"key": "k", "value": "v"}
	if !reflect.DeepEqual(dump, want) {
		t.Errorf("Dump() = %v, want %v", dump, want)
	}

	// Idempotent: a second dump without intervening mutation is identical.
	again, err := c.Request().Dump()
	if err != nil {
		t.Fatalf("second Dump() error = %v", err)
	}
	if !reflect.DeepEqual(dump, again) {
		t.Errorf("second Dump() = %v, want %v", again, dump)
	}
}

func TestPrepareValidationFailure(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	// Key is required; an empty request must be rejected.
	m := c.Request().Prepare(mockRequest{Value: "v"})
	err := m.Err()
	if err == nil {
		t.Fatal("Prepare() with missing required field recorded no error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Prepare() error = %T, want *ValidationError", err)
	}
	if len(valErr.Fields) == 0 || valErr.Fields[0] != "Key" {
		t.Errorf("ValidationError.Fields = %v, want [Key]", valErr.Fields)
	}

	// The failure propagates to Dump and Send.
	if _, dumpErr := m.Dump(); !errors.As(dumpErr, &valErr) {
		t.Errorf("Dump() after failed Prepare error = %v, want *ValidationError", dumpErr)
	}
	if _, sendErr := m.Send(context.Background()); !errors.As(sendErr, &valErr) {
		t.Errorf("Send() after failed Prepare error = %v, want *ValidationError", sendErr)
	}

	// A subsequent valid Prepare clears the recorded failure.
	if err := m.Prepare(mockRequest{Key: "k"}).Err(); err != nil {
		t.Errorf("valid Prepare() after failure recorded error = %v", err)
	}
}

func TestPrepareReplacesPendingWholesale(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	m := c.Request().
		Prepare(mockRequest{Key: "first", Value: "a"}).
		Prepare(mockRequest{Key: "second"})

	dump, err := m.Dump()
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if dump["key"] != "second" || dump["value"] != "" {
		t.Errorf("Dump() after re-Prepare = %v, want key=second with empty value", dump)
	}
}

func TestDumpAndSendBeforePrepare(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	if _, err := c.Request().Dump(); !errors.Is(err, ErrNothingPrepared) {
		t.Errorf("Dump() before Prepare error = %v, want ErrNothingPrepared", err)
	}
	if _, err := c.Request().Send(context.Background()); !errors.Is(err, ErrNothingPrepared) {
		t.Errorf("Send() before Prepare error = %v, want ErrNothingPrepared", err)
	}
}

func TestApplyChaining(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	m := c.Request().
		Prepare(mockRequest{Key: "k", Value: "v"}).
		Apply("with_uppercase_value", nil).
		Apply("with_switched_field_values", nil).
		Apply("with_hardcoded_value", Args{"value": "fixed"}).
		Apply("with_uppercase_value", nil).
		Apply("with_switched_field_values", nil)
	if err := m.Err(); err != nil {
		t.Fatalf("chain recorded error = %v", err)
	}

	// v -> V (uppercase), swap -> key=V value=k, hardcode -> value=fixed,
	// uppercase -> FIXED, swap -> key=FIXED value=V.
	if got := m.Pending(); got.Key != "FIXED" || got.Value != "V" {
		t.Errorf("pending after chain = %+v, want key=FIXED value=V", got)
	}
}

func TestApplyMatchesManualApplication(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	chained := c.Request().
		Prepare(mockRequest{Key: "k", Value: "v"}).
		Apply("with_uppercase_value", nil).
		Apply("with_switched_field_values", nil).
		Pending()

	// Applying the same operations by hand to the same prepared state must
	// produce the same pending request.
	manual := mockRequest{Key: "k", Value: "v"}
	if err := withUppercaseValue(&manual, nil); err != nil {
		t.Fatal(err)
	}
	if err := withSwitchedFieldValues(&manual, nil); err != nil {
		t.Fatal(err)
	}

	if *chained != manual {
		t.Errorf("chained = %+v, manual = %+v", *chained, manual)
	}
}

func TestApplyUnknownOperation(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	err := c.Request().
		Prepare(mockRequest{Key: "k"}).
		Apply("with_nonexistent_twist", nil).
		Err()
	if err == nil {
		t.Fatal("Apply() of unregistered operation recorded no error")
	}

	var unknownErr *UnknownOperationError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("Apply() error = %T, want *UnknownOperationError", err)
	}
	if unknownErr.Operation != "with_nonexistent_twist" {
		t.Errorf("UnknownOperationError.Operation = %q, want %q", unknownErr.Operation, "with_nonexistent_twist")
	}
	if unknownErr.Controller != "mock" {
		t.Errorf("UnknownOperationError.Controller = %q, want %q", unknownErr.Controller, "mock")
	}
	if !strings.Contains(err.Error(), "with_nonexistent_twist") {
		t.Errorf("error text %q does not name the offending operation", err.Error())
	}
}

func TestApplyBeforePrepare(t *testing.T) {
	transport := newTestTransport(t, "http://mock-nexos-api")
	c := newMockController(t, transport)

	err := c.Request().Apply("with_uppercase_value", nil).Err()
	if !errors.Is(err, ErrNothingPrepared) {
		t.Errorf("Apply() before Prepare error = %v, want ErrNothingPrepared", err)
	}
}

func TestSendSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/mock_path" {
			t.Errorf("Path = %q, want /mock_path", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", r.Header.Get("Authorization"))
		}

		var body mockRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("request body decode error = %v", err)
		}
		if body.Key != "k" || body.Value != "HARD" {
			t.Errorf("request body = %+v, want key=k value=HARD", body)
		}

		json.NewEncoder(w).Encode(mockResponse{Key: "rk", Value: "rv"})
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL)
	c := newMockController(t, transport)

	resp, err := c.Request().
		Prepare(mockRequest{Key: "k", Value: "v"}).
		Apply("with_hardcoded_value", Args{"value": "HARD"}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Key != "rk" || resp.Value != "rv" {
		t.Errorf("Send() = %+v, want key=rk value=rv", resp)
	}

	if last := c.Request().LastResponse(); last == nil || last.Key != "rk" {
		t.Errorf("LastResponse() = %+v, want the decoded response", last)
	}
	if err := c.Request().LastError(); err != nil {
		t.Errorf("LastError() after success = %v, want nil", err)
	}
}

func TestSendRetainsPendingForResend(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(mockResponse{Key: "rk"})
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL)
	c := newMockController(t, transport)
	m := c.Request().Prepare(mockRequest{Key: "k", Value: "v"})

	if _, err := m.Send(context.Background()); err != nil {
		t.Fatalf("first Send() error = %v", err)
	}

	// The pending request survives Send: it can be dumped, mutated, and
	// re-sent without a fresh Prepare.
	dump, err := m.Dump()
	if err != nil {
		t.Fatalf("Dump() after Send error = %v", err)
	}
	if dump["key"] != "k" {
		t.Errorf("Dump() after Send = %v, want retained payload", dump)
	}

	if _, err := m.Apply("with_uppercase_value", nil).Send(context.Background()); err != nil {
		t.Fatalf("re-Send() error = %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2", got)
	}
}

func TestSendNullResponseOnHTTPError(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"boom","code":"err_boom"}}`))
		}))

		transport := newTestTransport(t, server.URL)
		c := newMockController(t, transport)

		resp, err := c.Request().
			Prepare(mockRequest{Key: "k"}).
			Send(context.Background())
		if err != nil {
			t.Errorf("status %d: Send() error = %v, want soft-fail null response", status, err)
		}
		if resp.Key != "" || resp.Value != "" {
			t.Errorf("status %d: Send() = %+v, want null response with zero fields", status, resp)
		}

		// The suppressed failure stays inspectable.
		lastErr := c.Request().LastError()
		var apiErr *APIError
		if !errors.As(lastErr, &apiErr) {
			t.Fatalf("status %d: LastError() = %v, want *APIError", status, lastErr)
		}
		if apiErr.Status != status {
			t.Errorf("APIError.Status = %d, want %d", apiErr.Status, status)
		}
		if apiErr.Message != "boom" || apiErr.Code != "err_boom" {
			t.Errorf("APIError = %+v, want server error envelope", apiErr)
		}

		server.Close()
	}
}

func TestSendRaisesOnHTTPErrorWhenReraising(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL, func(cfg *Config) {
		cfg.ReraiseExceptions = true
	})
	c := newMockController(t, transport)

	_, err := c.Request().
		Prepare(mockRequest{Key: "k"}).
		Send(context.Background())
	if err == nil {
		t.Fatal("Send() with ReraiseExceptions succeeded, want error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Send() error = %T, want *APIError", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Send() error does not classify as ErrNotFound: %v", err)
	}
}

func TestSendRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(mockResponse{Key: "rk", Value: "rv"})
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL, func(cfg *Config) {
		cfg.Retries = 3
	})
	c := newMockController(t, transport)

	resp, err := c.Request().
		Prepare(mockRequest{Key: "k"}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Key != "rk" {
		t.Errorf("Send() = %+v, want the eventual success", resp)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("transport attempts = %d, want exactly 3", got)
	}
}

func TestSendInvalidResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"key": 42}`)) // key must be a string
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL)
	c := newMockController(t, transport)

	_, err := c.Request().
		Prepare(mockRequest{Key: "k"}).
		Send(context.Background())
	if err == nil {
		t.Fatal("Send() with malformed response body succeeded, want validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("Send() error = %T, want *ValidationError", err)
	}
}

func TestSendEncodesQueryForReadVerbs(t *testing.T) {
	type listRequest struct {
		After string `json:"after,omitempty"`
		Limit int    `json:"limit,omitempty"`
	}
	type listResponse struct {
		Items []string `json:"items"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Method = %q, want GET", r.Method)
		}
		if got := r.URL.Query().Get("after"); got != "item-5" {
			t.Errorf("after = %q, want item-5", got)
		}
		if got := r.URL.Query().Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		if r.ContentLength > 0 {
			t.Error("GET request carried a body")
		}
		json.NewEncoder(w).Encode(listResponse{Items: []string{"item-6"}})
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL)
	c, err := NewController[listRequest, listResponse]("list", "GET: /items", transport)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	resp, err := c.Request().
		Prepare(listRequest{After: "item-5", Limit: 10}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0] != "item-6" {
		t.Errorf("Send() = %+v, want one item", resp)
	}
}

func TestSendUsesErrorHookOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL)
	c, err := NewController[mockRequest, mockResponse](
		"mock", "POST: /mock_path", transport,
		WithErrorHook[mockRequest](func(resp *Response) mockResponse {
			return mockResponse{Key: "fallback"}
		}),
	)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	resp, err := c.Request().
		Prepare(mockRequest{Key: "k"}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Key != "fallback" {
		t.Errorf("Send() = %+v, want the error hook's fallback", resp)
	}
}

func TestSendUsesResponseHookOverride(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(mockResponse{Key: "rk"})
	}))
	defer server.Close()

	transport := newTestTransport(t, server.URL)
	c, err := NewController[mockRequest, mockResponse](
		"mock", "POST: /mock_path", transport,
		WithResponseHook[mockRequest](func(resp *mockResponse) {
			resp.Value = "post-processed"
		}),
	)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}

	resp, err := c.Request().
		Prepare(mockRequest{Key: "k"}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.Value != "post-processed" {
		t.Errorf("Send() = %+v, want the response hook applied", resp)
	}
}
