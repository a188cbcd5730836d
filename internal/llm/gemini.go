package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

type geminiProvider struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func newGemini(opts Options) *geminiProvider {
	model := opts.Model
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &geminiProvider{apiKey: opts.APIKey, model: model, timeout: timeout}
}

func (g *geminiProvider) Name() string     { return ProviderGemini }
func (g *geminiProvider) ContextCues() int { return 50 }

// Generate sends the prompt through the Gemini API
func (g *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: missing API key")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.3),
	}
	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
