package converter

import (
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
)

// Target output formats
const (
	FormatSRT  = "srt"
	FormatText = "text"
)

// Options selects the output
type Options struct {
	Format string
	// Docx also writes a Word copy of text transcripts
	Docx bool
}

type implConverter struct {
	opts   Options
	logger logger.Logger
}

// New creates a new Converter instance
func New(opts Options, log logger.Logger) Converter {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &implConverter{
		opts:   opts,
		logger: log,
	}
}
