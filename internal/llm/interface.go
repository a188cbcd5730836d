package llm

import "context"

// Provider is a hosted text-generation endpoint
type Provider interface {
	Name() string
	// Generate sends a single prompt and returns the raw completion text
	Generate(ctx context.Context, prompt string) (string, error)
	// ContextCues is how many subtitle cues fit into one prompt
	ContextCues() int
}
