// Package segment chooses where to cut a video into chunks of roughly equal
// length, using subtitle cues to land each cut on a natural pause.
package segment

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/transcript"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

const (
	// DefaultTarget is the preferred segment length in seconds
	DefaultTarget = 35.0
	// DefaultMinDuration drops trailing slivers shorter than this many seconds
	DefaultMinDuration = 10.0

	pauseGap = 1.0
)

var noiseCues = map[string]bool{
	"[music]":    true,
	"[applause]": true,
	"[laughter]": true,
}

// FilterNoise drops cues that carry no speech, such as "[Music]"
func FilterNoise(cues []vtt.Cue) []vtt.Cue {
	out := make([]vtt.Cue, 0, len(cues))
	for _, c := range cues {
		text := strings.TrimSpace(c.Text)
		if text == "" || noiseCues[strings.ToLower(text)] {
			continue
		}
		out = append(out, c)
	}
	return out
}

// RuleBased walks the cues once and emits a breakpoint at the first cue past
// the target length that either closes a sentence or is followed by a pause
// longer than a second. It never forces a cut, so a segment may run long.
func RuleBased(cues []vtt.Cue, target float64) []float64 {
	var breakpoints []float64
	currentStart := 0.0

	for i, cue := range cues {
		if cue.Start-currentStart < target {
			continue
		}

		pause := false
		if i+1 < len(cues) {
			pause = cues[i+1].Start-cue.End > pauseGap
		}

		if transcript.EndsSentence(cue.Text) || pause {
			breakpoints = append(breakpoints, cue.Start)
			currentStart = cue.Start
		}
	}
	return breakpoints
}

// Span is one planned output file
type Span struct {
	// Index is the 1-based position of the span in the partition
	Index int
	Start float64
	End   float64
}

// Duration returns the span length in seconds
func (s Span) Duration() float64 {
	return s.End - s.Start
}

// Plan partitions [0, total] at the breakpoints. Spans shorter than
// minDuration are dropped but the remaining spans keep their position number.
func Plan(breakpoints []float64, total, minDuration float64) []Span {
	bounds := make([]float64, 0, len(breakpoints)+2)
	bounds = append(bounds, 0)
	for _, bp := range breakpoints {
		if bp > bounds[len(bounds)-1] && bp < total {
			bounds = append(bounds, bp)
		}
	}
	bounds = append(bounds, total)

	var spans []Span
	for i := 0; i+1 < len(bounds); i++ {
		span := Span{Index: i + 1, Start: bounds[i], End: bounds[i+1]}
		if span.Duration() < minDuration {
			continue
		}
		spans = append(spans, span)
	}
	return spans
}

// FileName is the output name for a span, e.g. segment_003.mp4
func (s Span) FileName() string {
	return fmt.Sprintf("segment_%03d.mp4", s.Index)
}
