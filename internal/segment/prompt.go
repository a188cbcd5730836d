package segment

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

// ErrNoTimestamps means a model reply carried no usable breakpoint
var ErrNoTimestamps = errors.New("no timestamps in response")

var (
	segmentsObjectRe = regexp.MustCompile(`\{[^{}]*"segments"[^{}]*\}`)
	timestampRe      = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3}`)
)

// BuildPrompt renders the first limit cues into a breakpoint request
func BuildPrompt(cues []vtt.Cue, target float64, limit int) string {
	if limit > 0 && len(cues) > limit {
		cues = cues[:limit]
	}

	var transcriptText strings.Builder
	for _, c := range cues {
		fmt.Fprintf(&transcriptText, "[%s] %s\n", timecode.Format(c.Start), c.Text)
	}

	low := target - 5
	if low < 1 {
		low = 1
	}

	return fmt.Sprintf(`Analyze the following timestamped video subtitles and choose split points. Each segment should last between %.0f and %.0f seconds.

Guidelines:
1. Split at natural topic changes
2. Split after a complete sentence
3. Never split in the middle of a sentence
4. Keep each segment logically coherent

Subtitles:
%s
Reply with JSON only, in this format:
{"segments": ["00:00:35.000", "00:01:10.000"]}
`, low, target+5, transcriptText.String())
}

// ParseResponse extracts breakpoint times from a model reply. A JSON object
// with a "segments" list is preferred; otherwise every HH:MM:SS.mmm token in
// the text is used.
func ParseResponse(content string) ([]float64, error) {
	if match := segmentsObjectRe.FindString(content); match != "" {
		var payload struct {
			Segments []string `json:"segments"`
		}
		if err := json.Unmarshal([]byte(match), &payload); err == nil {
			if times := parseAll(payload.Segments); len(times) > 0 {
				return times, nil
			}
		}
	}

	if times := parseAll(timestampRe.FindAllString(content, -1)); len(times) > 0 {
		return times, nil
	}
	return nil, ErrNoTimestamps
}

func parseAll(values []string) []float64 {
	var out []float64
	for _, v := range values {
		sec, err := timecode.Parse(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		out = append(out, sec)
	}
	return out
}
