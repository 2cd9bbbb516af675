package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestPromptLoader_FromLangfuse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v2/prompts/report-system" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("label"); got != "production" {
			t.Errorf("label = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"text","prompt":"Remote prompt"}`))
	}))
	defer server.Close()

	cache := filepath.Join(t.TempDir(), "prompts", "report.txt")
	l := &PromptLoader{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk", CachePath: cache, Default: "default"}

	prompt, source, err := l.Load(context.Background(), "report-system", "production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "Remote prompt" || source != PromptFromLangfuse {
		t.Errorf("Load() = %q, %q", prompt, source)
	}

	data, err := os.ReadFile(cache)
	if err != nil {
		t.Fatalf("prompt was not cached: %v", err)
	}
	if string(data) != "Remote prompt" {
		t.Errorf("cached prompt = %q", data)
	}
}

func TestPromptLoader_ChatPromptKeepsSystemMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"chat","prompt":[
			{"role":"system","content":"Be kind."},
			{"type":"placeholder","name":"history"},
			{"role":"user","content":"{{entries}}"},
			{"role":"system","content":"Use bullets."}
		]}`))
	}))
	defer server.Close()

	l := &PromptLoader{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk"}
	prompt, _, err := l.Load(context.Background(), "chat", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "Be kind.\n\nUse bullets." {
		t.Errorf("Load() = %q", prompt)
	}
}

func TestPromptLoader_FallsBackToCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cache := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(cache, []byte("Cached prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	l := &PromptLoader{BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk", CachePath: cache, Default: "default"}
	prompt, source, err := l.Load(context.Background(), "missing", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "Cached prompt" || source != PromptFromCache {
		t.Errorf("Load() = %q, %q", prompt, source)
	}
}

func TestPromptLoader_Default(t *testing.T) {
	l := &PromptLoader{CachePath: filepath.Join(t.TempDir(), "absent.txt"), Default: "Built-in"}
	prompt, source, err := l.Load(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "Built-in" || source != PromptFromDefault {
		t.Errorf("Load() = %q, %q", prompt, source)
	}

	empty := &PromptLoader{}
	if _, _, err := empty.Load(context.Background(), "x", ""); err == nil {
		t.Error("expected error when no source has a prompt")
	}
}
