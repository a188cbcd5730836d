package srt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

func TestWrite(t *testing.T) {
	cues := vtt.Parse("WEBVTT\n\n00:00:01.040 --> 00:00:02.000 align:start position:0%\nHello <c>there</c>\n\n" +
		"00:00:02.500 --> 00:00:04.000\nsecond\n").Cues

	var buf bytes.Buffer
	if err := Write(&buf, FromCues(cues)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "1\n00:00:01,040 --> 00:00:02,000\nHello there\n\n" +
		"2\n00:00:02,500 --> 00:00:04,000\nsecond\n\n"
	if got := buf.String(); got != want {
		t.Errorf("Write() =\n%q\nwant\n%q", got, want)
	}
}

func TestFromCuesIndicesStartAtOne(t *testing.T) {
	entries := FromCues([]vtt.Cue{
		{Start: 0, End: 1, Text: "a"},
		{Start: 1, End: 2, Text: ""},
		{Start: 2, End: 3, Text: "b"},
	})

	if len(entries) != 2 {
		t.Fatalf("FromCues() returned %d entries, want 2", len(entries))
	}
	for i, e := range entries {
		if e.Index != i+1 {
			t.Errorf("entry %d has index %d", i, e.Index)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"video.en.vtt", "video.en.srt"},
		{"dir/sub.vtt", "dir/sub.srt"},
		{"noext", "noext.srt"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "talk.vtt")
	content := "WEBVTT\nKind: captions\nLanguage: en\n\n00:00:00.000 --> 00:00:01.500\nhi\n"
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := ConvertFile(in, "")
	if err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}
	want := Stats{Output: filepath.Join(dir, "talk.srt"), Entries: 1}
	if stats != want {
		t.Errorf("ConvertFile() = %+v, want %+v", stats, want)
	}

	got, err := os.ReadFile(filepath.Join(dir, "talk.srt"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "1\n00:00:00,000 --> 00:00:01,500\nhi\n\n"; string(got) != want {
		t.Errorf("srt content = %q, want %q", got, want)
	}
}

func TestConvertFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertFile(filepath.Join(dir, "missing.vtt"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input error = %v, want os.ErrNotExist", err)
	}

	empty := filepath.Join(dir, "empty.vtt")
	if err := os.WriteFile(empty, []byte("WEBVTT\n\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = ConvertFile(empty, "")
	if !errors.Is(err, ErrNoCues) {
		t.Errorf("empty input error = %v, want ErrNoCues", err)
	}
}
