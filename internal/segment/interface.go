package segment

import (
	"context"

	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

// Analyzer picks breakpoints for a subtitle track
type Analyzer interface {
	// Breakpoints returns sorted cut times. It never fails: any provider
	// problem falls back to RuleBased.
	Breakpoints(ctx context.Context, cues []vtt.Cue, target float64) []float64
	// Method names the strategy in use, e.g. "rule" or "gemini"
	Method() string
}
