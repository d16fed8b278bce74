package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSecretRedaction(t *testing.T) {
	s := NewSecret("sk-nexos-super-secret")

	if got := s.String(); got != "[REDACTED]" {
		t.Errorf("String() = %q, want %q", got, "[REDACTED]")
	}
	if got := fmt.Sprintf("%v", s); strings.Contains(got, "super-secret") {
		t.Errorf("%%v leaked the secret: %q", got)
	}
	if got := fmt.Sprintf("%#v", s); strings.Contains(got, "super-secret") {
		t.Errorf("%%#v leaked the secret: %q", got)
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"[REDACTED]"` {
		t.Errorf("json.Marshal() = %s, want %q", data, `"[REDACTED]"`)
	}

	text, err := s.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != "[REDACTED]" {
		t.Errorf("MarshalText() = %q, want %q", text, "[REDACTED]")
	}
}

func TestSecretExpose(t *testing.T) {
	s := NewSecret("sk-nexos-super-secret")
	if got := s.Expose(); got != "sk-nexos-super-secret" {
		t.Errorf("Expose() = %q, want the raw value", got)
	}
}

func TestSecretIsEmpty(t *testing.T) {
	if !NewSecret("").IsEmpty() {
		t.Error("IsEmpty() on empty secret = false, want true")
	}
	if (Secret{}).IsEmpty() != true {
		t.Error("IsEmpty() on zero value = false, want true")
	}
	if NewSecret("k").IsEmpty() {
		t.Error("IsEmpty() on non-empty secret = true, want false")
	}
}
