// Package llm talks to the optional hosted language models used for smarter
// video segmentation. Every provider is best effort: callers fall back to the
// local heuristic on any error.
package llm

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderRule        = "rule"
	ProviderGemini      = "gemini"
	ProviderOpenAI      = "openai"
	ProviderOllama      = "ollama"
	ProviderQwen        = "qwen"
	ProviderHuggingFace = "huggingface"
)

const defaultTimeout = 30 * time.Second

// ErrUnknownProvider is returned by New for unsupported provider names
var ErrUnknownProvider = errors.New("unknown llm provider")

// Options selects and configures a provider
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	// Timeout bounds each request; zero uses the provider default
	Timeout time.Duration
}

// Providers lists the accepted provider names
func Providers() []string {
	return []string{ProviderRule, ProviderGemini, ProviderOpenAI, ProviderOllama, ProviderQwen, ProviderHuggingFace}
}

// New builds the provider named in opts. The rule provider, or an empty
// name, returns a nil Provider meaning "use the local heuristic".
func New(opts Options) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Provider))

	switch name {
	case "", ProviderRule:
		return nil, nil
	case ProviderGemini:
		return newGemini(opts), nil
	case ProviderOpenAI:
		return newOpenAI(opts, httpClient(opts.Timeout, defaultTimeout)), nil
	case ProviderOllama:
		return newOllama(opts, httpClient(opts.Timeout, 60*time.Second)), nil
	case ProviderQwen:
		return newQwen(opts, httpClient(opts.Timeout, defaultTimeout)), nil
	case ProviderHuggingFace:
		return newHuggingFace(opts, httpClient(opts.Timeout, defaultTimeout)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
}

func httpClient(timeout, fallback time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = fallback
	}
	return &http.Client{Timeout: timeout}
}
