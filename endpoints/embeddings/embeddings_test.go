package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nexos-labs/nexos-go/core"
	"github.com/nexos-labs/nexos-go/domain"
)

func newTestTransport(t *testing.T, baseURL string) *core.Transport {
	t.Helper()
	transport, err := core.NewTransport(core.Config{
		BaseURL:     baseURL,
		APIKey:      core.NewSecret("test-key"),
		MinimumWait: time.Millisecond,
		MaximumWait: 2 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewTransport() error = %v", err)
	}
	return transport
}

func TestEmbeddingsEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/embeddings" {
			t.Errorf("%s %s, want POST /embeddings", r.Method, r.URL.Path)
		}
		var req domain.EmbeddingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("request decode error = %v", err)
		}
		if req.Model != "text-embedding-3-small" {
			t.Errorf("Model = %q, want text-embedding-3-small", req.Model)
		}
		if req.Dimensions == nil || *req.Dimensions != 256 {
			t.Errorf("Dimensions = %v, want 256", req.Dimensions)
		}
		json.NewEncoder(w).Encode(domain.EmbeddingsResponse{
			Object: "list",
			Model:  req.Model,
			Data:   []domain.Embedding{{Index: 0, Embedding: []float64{0.1, 0.2}}},
		})
	}))
	defer server.Close()

	emb := New(newTestTransport(t, server.URL))
	resp, err := emb.Request().
		Prepare(domain.EmbeddingsRequest{Model: "placeholder", Input: "hello"}).
		Apply(OpWithModel, core.Args{"model": "text-embedding-3-small"}).
		Apply(OpWithDimensions, core.Args{"dimensions": 256}).
		Send(context.Background())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if len(resp.Data) != 1 || len(resp.Data[0].Embedding) != 2 {
		t.Errorf("Data = %+v, want one vector of length 2", resp.Data)
	}
}

func TestEmbeddingsRequiresInput(t *testing.T) {
	emb := New(newTestTransport(t, "http://mock-nexos-api"))

	err := emb.Request().
		Prepare(domain.EmbeddingsRequest{Model: "text-embedding-3-small"}).
		Err()
	if err == nil {
		t.Error("Prepare() without input recorded no error")
	}
}
