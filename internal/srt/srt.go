// Package srt writes SubRip subtitles from parsed WebVTT cues.
package srt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

// ErrNoCues is returned when a file holds no usable subtitle
var ErrNoCues = errors.New("no valid subtitle cues")

// Entry is one numbered SubRip block
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// FromCues numbers cues sequentially starting at 1
func FromCues(cues []vtt.Cue) []Entry {
	entries := make([]Entry, 0, len(cues))
	for _, c := range cues {
		if c.Text == "" {
			continue
		}
		entries = append(entries, Entry{
			Index: len(entries) + 1,
			Start: c.Start,
			End:   c.End,
			Text:  c.Text,
		})
	}
	return entries
}

// Write renders entries in SubRip format
func Write(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n",
			e.Index, timecode.FormatSRT(e.Start), timecode.FormatSRT(e.End), e.Text); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// OutputPath derives the .srt path for a .vtt input
func OutputPath(vttPath string) string {
	return strings.TrimSuffix(vttPath, filepath.Ext(vttPath)) + ".srt"
}

// Stats summarises one file conversion
type Stats struct {
	Output  string
	Entries int
	// Skipped counts malformed cue blocks in the input
	Skipped int
}

// ConvertFile converts a .vtt file to .srt. An empty srtPath writes next to
// the input.
func ConvertFile(vttPath, srtPath string) (Stats, error) {
	res, err := vtt.ParseFile(vttPath)
	if err != nil {
		return Stats{}, err
	}

	entries := FromCues(res.Cues)
	if len(entries) == 0 {
		return Stats{}, fmt.Errorf("%s: %w", vttPath, ErrNoCues)
	}

	if srtPath == "" {
		srtPath = OutputPath(vttPath)
	}

	f, err := os.Create(srtPath)
	if err != nil {
		return Stats{}, fmt.Errorf("create srt: %w", err)
	}
	defer f.Close()

	if err := Write(f, entries); err != nil {
		return Stats{}, fmt.Errorf("write srt: %w", err)
	}

	stats := Stats{Output: srtPath, Entries: len(entries), Skipped: res.Skipped}
	return stats, f.Close()
}
