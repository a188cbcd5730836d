package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantNil  bool
		wantName string
		wantErr  error
	}{
		{name: "empty is rule", provider: "", wantNil: true},
		{name: "rule", provider: "rule", wantNil: true},
		{name: "gemini", provider: "gemini", wantName: ProviderGemini},
		{name: "openai mixed case", provider: " OpenAI ", wantName: ProviderOpenAI},
		{name: "ollama", provider: "ollama", wantName: ProviderOllama},
		{name: "qwen", provider: "qwen", wantName: ProviderQwen},
		{name: "huggingface", provider: "huggingface", wantName: ProviderHuggingFace},
		{name: "unknown", provider: "claude", wantNil: true, wantErr: ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(Options{Provider: tt.provider})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantNil {
				if p != nil {
					t.Errorf("New() = %v, want nil provider", p.Name())
				}
				return
			}
			if p == nil {
				t.Fatal("New() returned nil provider")
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
			if p.ContextCues() <= 0 {
				t.Errorf("ContextCues() = %d, want > 0", p.ContextCues())
			}
		})
	}
}

func TestProviders(t *testing.T) {
	for _, name := range Providers() {
		if _, err := New(Options{Provider: name}); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
}

func TestOpenAIGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"segments\":[\"00:00:30.000\"]}"}}]}`))
	}))
	defer srv.Close()

	p, err := New(Options{Provider: ProviderOpenAI, APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	out, err := p.Generate(context.Background(), "split this")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if want := `{"segments":["00:00:30.000"]}`; out != want {
		t.Errorf("Generate() = %q, want %q", out, want)
	}

	want := chatRequest{
		Model: "gpt-3.5-turbo",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "split this"},
		},
		Temperature: 0.3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestOllamaGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["model"] != "llama3.2" || body["stream"] != false {
			t.Errorf("unexpected body %v", body)
		}
		w.Write([]byte(`{"response":"00:01:00.000"}`))
	}))
	defer srv.Close()

	p, _ := New(Options{Provider: ProviderOllama, BaseURL: srv.URL + "/"})
	out, err := p.Generate(context.Background(), "p")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if out != "00:01:00.000" {
		t.Errorf("Generate() = %q", out)
	}
}

func TestQwenGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"output":{"text":"ok"}}`))
	}))
	defer srv.Close()

	p, _ := New(Options{Provider: ProviderQwen, APIKey: "k", BaseURL: srv.URL})
	out, err := p.Generate(context.Background(), "p")
	if err != nil || out != "ok" {
		t.Errorf("Generate() = %q, %v", out, err)
	}
}

func TestHuggingFaceGenerate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "generated text", body: `[{"generated_text":"hi"}]`, want: "hi"},
		{name: "empty list", body: `[]`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/models/org/model" {
					t.Errorf("path = %q", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p, _ := New(Options{Provider: ProviderHuggingFace, Model: "org/model", BaseURL: srv.URL + "/models"})
			out, err := p.Generate(context.Background(), "p")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if out != tt.want {
				t.Errorf("Generate() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p, _ := New(Options{Provider: ProviderOpenAI, BaseURL: srv.URL})
	_, err := p.Generate(context.Background(), "p")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Generate() error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d", statusErr.StatusCode)
	}
	if statusErr.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q", statusErr.Provider)
	}
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	p, _ := New(Options{Provider: ProviderQwen, BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if _, err := p.Generate(context.Background(), "p"); err == nil {
		t.Fatal("Generate() expected timeout error")
	}
}

func TestGeminiMissingKey(t *testing.T) {
	p, _ := New(Options{Provider: ProviderGemini})
	if _, err := p.Generate(context.Background(), "p"); err == nil {
		t.Fatal("Generate() expected error without API key")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate() = %q", got)
	}
}
