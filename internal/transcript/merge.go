// Package transcript turns parsed captions into a readable, timestamped
// plain-text transcript.
//
// Auto-generated captions repeat the trailing words of one cue at the head of
// the next. Merge coalesces those fragments into segments, Punctuate infers
// sentence punctuation from the pauses between segments and Render prints
// one "[mm:ss] text" line per segment.
package transcript

import (
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

const (
	// mergeGap is the pause below which consecutive cues always merge
	mergeGap = 1.0
	// overlapWindow is how many edge words are compared for caption repetition
	overlapWindow = 3
)

// Segment spans one or more source cues
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Merge coalesces consecutive cues. B merges into the accumulated segment A
// when B starts less than a second after A ends, or when A's last words and
// B's first words share a token. No two adjacent segments of the output could
// be merged again.
func Merge(cues []vtt.Cue) []Segment {
	var merged []Segment
	var current *Segment

	for _, cue := range cues {
		// cue text is already clean
		text := strings.Join(strings.Fields(cue.Text), " ")
		if text == "" {
			continue
		}

		if current == nil {
			current = &Segment{Start: cue.Start, End: cue.End, Text: text}
			continue
		}

		if shouldMerge(*current, cue.Start, text) {
			current.Text = joinText(current.Text, text)
			if cue.End > current.End {
				current.End = cue.End
			}
			continue
		}

		merged = append(merged, *current)
		current = &Segment{Start: cue.Start, End: cue.End, Text: text}
	}

	if current != nil {
		merged = append(merged, *current)
	}

	return merged
}

func shouldMerge(current Segment, nextStart float64, nextText string) bool {
	if nextStart-current.End < mergeGap {
		return true
	}
	return sharesEdgeWord(strings.Fields(current.Text), strings.Fields(nextText))
}

// sharesEdgeWord reports whether the last words of a and the first words of b
// have a token in common
func sharesEdgeWord(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	tail := a[max(0, len(a)-overlapWindow):]
	head := b[:min(len(b), overlapWindow)]

	seen := make(map[string]struct{}, len(tail))
	for _, w := range tail {
		seen[w] = struct{}{}
	}
	for _, w := range head {
		if _, ok := seen[w]; ok {
			return true
		}
	}
	return false
}

// joinText appends next to current without repeating words the captions
// already showed.
func joinText(current, next string) string {
	cw := strings.Fields(current)
	nw := strings.Fields(next)

	if containsRun(cw, nw) {
		return current
	}

	overlap := longestOverlap(cw, nw)
	if overlap == 0 {
		return current + " " + next
	}
	if overlap == len(nw) {
		return current
	}
	return current + " " + strings.Join(nw[overlap:], " ")
}

// longestOverlap returns the length of the longest suffix of a that is also a prefix of b
func longestOverlap(a, b []string) int {
	for n := min(len(a), len(b)); n > 0; n-- {
		if equalWords(a[len(a)-n:], b[:n]) {
			return n
		}
	}
	return 0
}

// containsRun reports whether needle appears as a contiguous word run in haystack
func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 {
		return true
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if equalWords(haystack[i:i+len(needle)], needle) {
			return true
		}
	}
	return false
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
