package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"quill-server/internal/config"
	"quill-server/internal/domain/chat"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*CompletionClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		ChatAPIBaseURL:    server.URL + "/v1",
		ChatAPIKey:        "test-key",
		ChatModel:         "test-model",
		CompletionTimeout: 5 * time.Second,
	}
	return NewCompletionClient(cfg, zerolog.Nop()), server
}

func transcriptFixture() []chat.Message {
	return []chat.Message{
		chat.NewSystemMessage("reply using short and precise sentences"),
		chat.NewUserMessage("hello"),
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotRequest openai.ChatCompletionRequest
	var gotAuth string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		resp := openai.ChatCompletionResponse{
			Model: "test-model",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "hi there"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	reply, err := client.Complete(context.Background(), transcriptFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reply.Role != chat.RoleAssistant {
		t.Errorf("expected assistant role, got %s", reply.Role)
	}
	if reply.Content != "hi there" {
		t.Errorf("expected verbatim content, got %q", reply.Content)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if gotRequest.Model != "test-model" {
		t.Errorf("unexpected model %q", gotRequest.Model)
	}
	if len(gotRequest.Messages) != 2 {
		t.Fatalf("expected full transcript of 2 messages, got %d", len(gotRequest.Messages))
	}
	if gotRequest.Messages[0].Role != "system" {
		t.Error("system message must lead the request")
	}
	if gotRequest.Messages[1].Role != "user" || gotRequest.Messages[1].Content != "hello" {
		t.Errorf("unexpected final message %+v", gotRequest.Messages[1])
	}
}

func TestCompleteRemoteError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream unavailable"}`))
	})

	_, err := client.Complete(context.Background(), transcriptFixture())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("error should carry the response body: %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"test-model","choices":[]}`))
	})

	_, err := client.Complete(context.Background(), transcriptFixture())
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, transcriptFixture())
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestEndpointJoining(t *testing.T) {
	tests := []struct {
		baseURL string
		path    string
		want    string
	}{
		{"http://x/v1", "/chat/completions", "http://x/v1/chat/completions"},
		{"http://x/v1/", "/chat/completions", "http://x/v1/chat/completions"},
		{"http://x/v1", "chat/completions", "http://x/v1/chat/completions"},
		{"", "/chat/completions", "/chat/completions"},
	}

	for _, tt := range tests {
		c := &CompletionClient{baseURL: normalizeBaseURL(tt.baseURL)}
		if got := c.endpoint(tt.path); got != tt.want {
			t.Errorf("endpoint(%q, %q) = %q, want %q", tt.baseURL, tt.path, got, tt.want)
		}
	}
}
