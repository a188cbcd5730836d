// Package downloader fetches YouTube videos and their subtitles through yt-dlp.
package downloader

import (
	"net/url"
	"path/filepath"
	"strings"
)

// Qualities accepted by Options.Quality
const (
	Quality720p  = "720p"
	Quality1080p = "1080p"
	QualityBest  = "best"
	QualityWorst = "worst"
)

// Browsers cookies can be imported from
var Browsers = []string{"chrome", "firefox", "safari", "edge"}

// DefaultSubLangs are the subtitle languages requested when none are set
var DefaultSubLangs = []string{"en", "zh", "zh-CN"}

// Options is one download job
type Options struct {
	OutputDir string
	Quality   string
	// AudioOnly downloads the best audio stream only
	AudioOnly bool
	// ExtractAudio downloads the video and also converts its audio track
	ExtractAudio bool
	AudioFormat  string
	Playlist     bool
	UseCookies   bool
	Browser      string
	SubLangs     []string
}

// Normalize resolves conflicting flags and fills empty fields. It reports
// whether ExtractAudio was dropped in favour of AudioOnly.
func (o *Options) Normalize() (conflict bool) {
	if o.AudioOnly && o.ExtractAudio {
		o.ExtractAudio = false
		conflict = true
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.Quality == "" {
		o.Quality = Quality720p
	}
	if o.AudioFormat == "" {
		o.AudioFormat = "mp3"
	}
	if o.Browser == "" {
		o.Browser = "chrome"
	}
	if len(o.SubLangs) == 0 {
		o.SubLangs = DefaultSubLangs
	}
	return conflict
}

// FormatSelector maps the options onto a yt-dlp -f expression
func (o Options) FormatSelector() string {
	if o.AudioOnly {
		return "bestaudio/best"
	}
	switch o.Quality {
	case Quality1080p:
		return "best[height<=1080]/best"
	case QualityBest:
		return "best"
	case QualityWorst:
		return "worst"
	default:
		return "best[height<=720]/best"
	}
}

// OutputTemplate is the yt-dlp -o template under OutputDir
func (o Options) OutputTemplate() string {
	tmpl := "%(title)s.%(ext)s"
	if o.Playlist {
		tmpl = "%(playlist)s/%(playlist_index)s - %(title)s.%(ext)s"
	}
	return filepath.Join(o.OutputDir, tmpl)
}

// Mode describes the download mode for display
func (o Options) Mode() string {
	switch {
	case o.AudioOnly:
		return "audio only"
	case o.ExtractAudio:
		return "video + audio extraction (" + o.AudioFormat + ")"
	default:
		return "video + subtitles"
	}
}

// IsYouTubeURL reports whether raw points at youtube.com or youtu.be
func IsYouTubeURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "youtu.be" || host == "youtube.com" || strings.HasSuffix(host, ".youtube.com")
}
