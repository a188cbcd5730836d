// Package vtt extracts timed cues from WebVTT subtitle files, including the
// loosely structured auto-generated captions YouTube serves.
package vtt

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
)

// Cue is one timestamped subtitle entry
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// Duration returns the cue length in seconds
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// Result holds the parsed cues and the number of blocks dropped for malformed timestamps
type Result struct {
	Cues    []Cue
	Skipped int
}

var (
	timeLineRe  = regexp.MustCompile(`^\s*([\d:.,]+)\s*-->\s*([\d:.,]+)`)
	tagRe       = regexp.MustCompile(`</?[A-Za-z0-9][^<>]*>`)
	braceRe     = regexp.MustCompile(`\{[^}]*\}`)
	directiveRe = regexp.MustCompile(`\b(?:align:\w+|position:\d+%|line:-?\d+%?|size:\d+%)`)
)

var entityReplacer = strings.NewReplacer("&nbsp;", " ", "&lt;", "<", "&gt;", ">", "&amp;", "&")

// blocks that never carry cues
var skipPrefixes = []string{"NOTE", "STYLE", "REGION"}

// Parse reads WebVTT content. Blocks are separated by blank lines, the first
// line containing "-->" is the time line, anything before it is a cue id or
// header line and anything after it is text.
func Parse(content string) Result {
	var res Result

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	for _, block := range splitBlocks(content) {
		if isMetadata(block[0]) {
			continue
		}

		timeIdx := -1
		for i, line := range block {
			if strings.Contains(line, "-->") {
				timeIdx = i
				break
			}
		}
		if timeIdx < 0 {
			continue
		}

		m := timeLineRe.FindStringSubmatch(block[timeIdx])
		if m == nil {
			res.Skipped++
			continue
		}
		start, err := timecode.Parse(m[1])
		if err != nil {
			res.Skipped++
			continue
		}
		end, err := timecode.Parse(m[2])
		if err != nil || end < start {
			res.Skipped++
			continue
		}

		text := Clean(strings.Join(block[timeIdx+1:], " "))
		if text == "" {
			continue
		}

		res.Cues = append(res.Cues, Cue{Start: start, End: end, Text: text})
	}

	return res
}

// ParseFile reads and parses a .vtt file
func ParseFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read vtt: %w", err)
	}
	return Parse(string(data)), nil
}

// Clean strips markup, inline timing tags, style markers and positioning
// directives, and collapses whitespace. Entities are decoded last and a "<"
// followed by a space is not read as a tag.
func Clean(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	text = braceRe.ReplaceAllString(text, "")
	text = directiveRe.ReplaceAllString(text, "")
	text = entityReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}

func splitBlocks(content string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		// auto captions pad cues with whitespace-only lines that do not end the block
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			current = append(current, trimmed)
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func isMetadata(first string) bool {
	for _, p := range skipPrefixes {
		if strings.HasPrefix(first, p) {
			return true
		}
	}
	return false
}
