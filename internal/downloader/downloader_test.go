package downloader

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatSelector(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "audio only wins over quality", opts: Options{AudioOnly: true, Quality: "1080p"}, want: "bestaudio/best"},
		{name: "720p", opts: Options{Quality: "720p"}, want: "best[height<=720]/best"},
		{name: "1080p", opts: Options{Quality: "1080p"}, want: "best[height<=1080]/best"},
		{name: "best", opts: Options{Quality: "best"}, want: "best"},
		{name: "worst", opts: Options{Quality: "worst"}, want: "worst"},
		{name: "unknown falls back to 720p", opts: Options{Quality: "4k"}, want: "best[height<=720]/best"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.FormatSelector(); got != tt.want {
				t.Errorf("FormatSelector() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputTemplate(t *testing.T) {
	single := Options{OutputDir: "downloads"}
	if got, want := single.OutputTemplate(), filepath.Join("downloads", "%(title)s.%(ext)s"); got != want {
		t.Errorf("OutputTemplate() = %q, want %q", got, want)
	}

	playlist := Options{OutputDir: "downloads", Playlist: true}
	if got, want := playlist.OutputTemplate(), filepath.Join("downloads", "%(playlist)s/%(playlist_index)s - %(title)s.%(ext)s"); got != want {
		t.Errorf("OutputTemplate() = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	opts := Options{AudioOnly: true, ExtractAudio: true}
	if !opts.Normalize() {
		t.Error("Normalize() should report the audio flag conflict")
	}
	want := Options{
		OutputDir:   ".",
		Quality:     "720p",
		AudioOnly:   true,
		AudioFormat: "mp3",
		Browser:     "chrome",
		SubLangs:    []string{"en", "zh", "zh-CN"},
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}

	plain := Options{ExtractAudio: true, AudioFormat: "wav"}
	if plain.Normalize() {
		t.Error("Normalize() reported a conflict without one")
	}
	if !plain.ExtractAudio || plain.AudioFormat != "wav" {
		t.Errorf("Normalize() changed explicit values: %+v", plain)
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{Options{AudioOnly: true}, "audio only"},
		{Options{ExtractAudio: true, AudioFormat: "m4a"}, "video + audio extraction (m4a)"},
		{Options{}, "video + subtitles"},
	}
	for _, tt := range tests {
		if got := tt.opts.Mode(); got != tt.want {
			t.Errorf("Mode() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"youtube.com/playlist?list=PL123", true},
		{"https://m.youtube.com/watch?v=x", true},
		{"https://music.youtube.com/watch?v=x", true},
		{"https://vimeo.com/123", false},
		{"https://notyoutube.com/watch", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		if got := IsYouTubeURL(tt.url); got != tt.want {
			t.Errorf("IsYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestParseInfo(t *testing.T) {
	stdout := `{"title": "Cooking 101", "description": "Learn to cook", "uploader": "chef", "duration": 754,
		"formats": [
			{"format_id": "140", "ext": "m4a", "resolution": "audio only", "vcodec": "none", "acodec": "mp4a.40.2", "filesize": 1048576},
			{"format_id": "22", "ext": "mp4", "resolution": "1280x720", "vcodec": "avc1.64001F", "acodec": "mp4a.40.2", "format_note": "720p"}
		]}`

	info, err := parseInfo(stdout)
	if err != nil {
		t.Fatalf("parseInfo() error = %v", err)
	}
	if info.Title != "Cooking 101" || info.Duration != 754 || len(info.Formats) != 2 {
		t.Errorf("parseInfo() = %+v", info)
	}

	table := FormatTable(info.Formats)
	for _, want := range []string{"audio:mp4a.40.", "1.0 MB", "avc1.64001F", "720p", "N/A"} {
		if !strings.Contains(table, want) {
			t.Errorf("FormatTable() missing %q:\n%s", want, table)
		}
	}

	if _, err := parseInfo("not json"); err == nil {
		t.Error("parseInfo() should fail on invalid JSON")
	}

	untitled, _ := parseInfo(`{}`)
	if untitled.Title != "Unknown" {
		t.Errorf("Title = %q, want Unknown", untitled.Title)
	}
}
