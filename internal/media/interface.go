package media

import (
	"context"

	"github.com/nguyentantai21042004/yt-subtools/internal/segment"
)

// Media wraps the ffmpeg and ffprobe operations the tools need
type Media interface {
	// CheckFFmpeg fails with ErrFFmpegNotFound when ffmpeg is not on PATH
	CheckFFmpeg() error
	Burn(ctx context.Context, req BurnRequest) (BurnResult, error)
	// Duration probes the container length in seconds
	Duration(ctx context.Context, videoPath string) (float64, error)
	// Split cuts one file per span into outDir and returns the files written.
	// A failed span is logged and skipped.
	Split(ctx context.Context, videoPath, outDir string, spans []segment.Span) ([]string, error)
}

// BurnRequest describes one hard-subtitle job
type BurnRequest struct {
	Video    string
	Subtitle string
	// Output defaults to <stem>_with_subtitles<ext> in the working directory
	Output    string
	FontSize  int
	FontColor string
}

// BurnResult reports the written file and the size change
type BurnResult struct {
	Output     string
	InputSize  int64
	OutputSize int64
}
