package downloader

import (
	"io"

	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
)

type implDownloader struct {
	opts     Options
	logger   logger.Logger
	progress io.Writer
}

// New creates a Downloader. Progress lines are written to progress; nil
// disables them.
func New(opts Options, log logger.Logger, progress io.Writer) Downloader {
	opts.Normalize()
	if progress == nil {
		progress = io.Discard
	}
	return &implDownloader{
		opts:     opts,
		logger:   log,
		progress: progress,
	}
}
