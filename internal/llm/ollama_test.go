package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestOllamaProvider(t *testing.T, content string, gotBody *map[string]any) *OllamaProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotBody != nil {
			json.NewDecoder(r.Body).Decode(gotBody)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model":             "llama3.1",
			"created_at":        "2026-01-01T00:00:00Z",
			"message":           map[string]any{"role": "assistant", "content": content},
			"done":              true,
			"done_reason":       "stop",
			"prompt_eval_count": 12,
			"eval_count":        34,
		})
	}))
	t.Cleanup(server.Close)

	p, err := NewOllamaProvider(OllamaConfig{ServerURL: server.URL, Model: "llama3.1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestOllamaProvider_HappyPath(t *testing.T) {
	var body map[string]any
	p := newTestOllamaProvider(t, "<think>hmm</think>\n"+validSet, &body)

	resp, err := p.Generate(context.Background(), Request{
		System:   "You are an expert psychometrician.",
		Messages: []Message{{Role: RoleUser, Content: "Generate questions."}},
		Schema:   testSetSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != validSet {
		t.Fatalf("unexpected content %s", resp.Content)
	}
	if resp.Model != "llama3.1" {
		t.Fatalf("unexpected model %q", resp.Model)
	}

	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(msgs))
	}
	sys, _ := msgs[0].(map[string]any)
	if !strings.Contains(sys["content"].(string), "JSON Schema") {
		t.Fatalf("expected schema in system prompt, got %v", sys["content"])
	}
}

func TestOllamaProvider_InvalidJSON(t *testing.T) {
	p := newTestOllamaProvider(t, "I cannot do that.", nil)
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "x"}},
		Schema:   testSetSchema(),
	})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestNewOllamaProvider_RequiresModel(t *testing.T) {
	if _, err := NewOllamaProvider(OllamaConfig{ServerURL: "http://localhost:11434"}); err == nil {
		t.Fatal("expected error for empty model")
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"<think>x</think>{\"a\":1}", `{"a":1}`},
		{"no json here", "no json here"},
	}
	for _, tt := range tests {
		if got := extractJSONObject(tt.in); got != tt.want {
			t.Errorf("extractJSONObject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
