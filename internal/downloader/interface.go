package downloader

import "context"

// Downloader wraps yt-dlp for one set of Options
type Downloader interface {
	// EnsureInstalled resolves a usable yt-dlp binary, downloading it if needed
	EnsureInstalled(ctx context.Context) error
	Info(ctx context.Context, url string) (VideoInfo, error)
	// ListFormats returns a table of the available formats
	ListFormats(ctx context.Context, url string) (string, error)
	// Download fetches url and returns the files yt-dlp reported as finished
	Download(ctx context.Context, url string) ([]string, error)
}

// VideoInfo is the subset of yt-dlp metadata the CLI shows
type VideoInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Uploader    string   `json:"uploader"`
	Duration    float64  `json:"duration"`
	Formats     []Format `json:"formats"`
}

// Format is one downloadable stream
type Format struct {
	ID         string `json:"format_id"`
	Ext        string `json:"ext"`
	Resolution string `json:"resolution"`
	Note       string `json:"format_note"`
	VCodec     string `json:"vcodec"`
	ACodec     string `json:"acodec"`
	FileSize   int64  `json:"filesize"`
}
