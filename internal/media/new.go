package media

import (
	"github.com/nguyentantai21042004/yt-subtools/internal/config"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
	"github.com/nguyentantai21042004/yt-subtools/pkg/executor"
)

type implMedia struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Media instance
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Media {
	return &implMedia{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
