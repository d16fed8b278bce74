package nexos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(core.Config{
		BaseURL:     baseURL,
		APIKey:      core.NewSecret("test-key"),
		MinimumWait: time.Millisecond,
		MaximumWait: 2 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestNewClientValidatesConfig(t *testing.T) {
	if _, err := NewClient(core.Config{}); !errors.Is(err, core.ErrBaseURLRequired) {
		t.Errorf("NewClient() with empty config error = %v, want ErrBaseURLRequired", err)
	}
}

func TestClientWiresAllControllers(t *testing.T) {
	client := newTestClient(t, "http://mock-nexos-api")
	defer client.Close()

	if client.Chat == nil || client.Embeddings == nil || client.Models == nil {
		t.Fatal("client left core controllers nil")
	}
	if client.Speech == nil || client.Transcription == nil || client.Translation == nil {
		t.Fatal("client left audio controllers nil")
	}
	if client.ImageGenerate == nil || client.ImageEdit == nil || client.ImageVariation == nil {
		t.Fatal("client left image controllers nil")
	}
	if client.FileUpload == nil || client.FileList == nil {
		t.Fatal("client left storage controllers nil")
	}
	if client.TeamKeyCreate == nil || client.TeamKeyList == nil {
		t.Fatal("client left team key controllers nil")
	}
}

func TestControllersShareTransport(t *testing.T) {
	client := newTestClient(t, "http://mock-nexos-api")
	defer client.Close()

	if client.Chat.Transport() != client.Transport() {
		t.Error("chat controller uses a different transport than the client")
	}
	if client.FileList.Transport() != client.Transport() {
		t.Error("storage controller uses a different transport than the client")
	}
}

func TestClientEndToEndChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Path = %q, want /v1/chat/completions", r.URL.Path)
		}
		if got := r.Header.Get(core.VersionHeaderName); got != "v1" {
			t.Errorf("%s = %q, want v1", core.VersionHeaderName, got)
		}
		json.NewEncoder(w).Encode(domain.ChatCompletionsResponse{
			ID: "c1",
			Choices: []domain.ChatChoice{{
				Message: domain.ChatMessage{Role: "assistant", Content: "hello"},
			}},
		})
	}))
	defer server.Close()

	client, err := NewClient(core.Config{
		BaseURL:     server.URL,
		APIKey:      core.NewSecret("test-key"),
		Version:     "v1",
		MinimumWait: time.Millisecond,
		MaximumWait: 2 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	resp, err := client.Chat.Request().
		Prepare(domain.ChatCompletionsRequest{
			Model:    "gpt-4o",
			Messages: []domain.ChatMessage{{Role: "user", Content: "hi"}},
		}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if resp.FirstContent() != "hello" {
		t.Errorf("FirstContent() = %q, want hello", resp.FirstContent())
	}
}

func TestPerResourceControllers(t *testing.T) {
	client := newTestClient(t, "http://mock-nexos-api")
	defer client.Close()

	if _, err := client.File("file-abc"); err != nil {
		t.Errorf("File() error = %v", err)
	}
	if _, err := client.TeamKeyRegenerate("key-1"); err != nil {
		t.Errorf("TeamKeyRegenerate() error = %v", err)
	}
	if _, err := client.File("not a valid id"); err == nil {
		t.Error("File() with malformed ID succeeded, want error")
	}
}

func TestCloseDisconnectsTransport(t *testing.T) {
	client := newTestClient(t, "http://mock-nexos-api")
	client.Close()

	_, err := client.Transport().Request(context.Background(), http.MethodGet, "/ping")
	if !errors.Is(err, core.ErrTransportClosed) {
		t.Errorf("Request() after Close error = %v, want ErrTransportClosed", err)
	}
}

func TestNewClientWithTransport(t *testing.T) {
	transport, err := core.NewTransport(core.Config{
		BaseURL: "http://mock-nexos-api",
		APIKey:  core.NewSecret("test-key"),
	})
	if err != nil {
		t.Fatalf("NewTransport() error = %v", err)
	}

	client := NewClientWithTransport(transport)
	if client.Transport() != transport {
		t.Error("NewClientWithTransport() did not retain the given transport")
	}
}
