package transcript

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

const (
	sentencePause = 2.0
	clausePause   = 1.0
)

const (
	terminalMarks = ".!?。！？"
	commaMarks    = ",，"
)

// Punctuate appends sentence punctuation inferred from the pause before the
// next segment. Existing punctuation is never replaced.
func Punctuate(segments []Segment) []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)

	for i := range out {
		text := out[i].Text
		if text == "" {
			continue
		}

		if i == len(out)-1 {
			out[i].Text = appendTerminal(text)
			continue
		}

		gap := out[i+1].Start - out[i].End
		switch {
		case gap > sentencePause:
			out[i].Text = appendTerminal(text)
		case gap >= clausePause:
			if !EndsWith(text, terminalMarks+commaMarks) {
				out[i].Text = text + ","
			}
		default:
			out[i].Text = appendTerminal(text)
		}
	}

	return out
}

// EndsWith reports whether text ends with one of the runes in marks
func EndsWith(text, marks string) bool {
	text = strings.TrimRight(text, " ")
	if text == "" {
		return false
	}
	r := []rune(text)
	return strings.ContainsRune(marks, r[len(r)-1])
}

// EndsSentence reports whether text ends with a sentence terminator
func EndsSentence(text string) bool {
	return EndsWith(text, terminalMarks)
}

func appendTerminal(text string) string {
	if EndsSentence(text) {
		return text
	}
	return text + "."
}

// Render prints one "[mm:ss] text" line per segment
func Render(segments []Segment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		if strings.TrimSpace(s.Text) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", timecode.FormatClock(s.Start), s.Text))
	}
	return strings.Join(lines, "\n")
}

// Convert runs the full cue to transcript pipeline
func Convert(cues []vtt.Cue) string {
	return Render(Punctuate(Merge(cues)))
}
