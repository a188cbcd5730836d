package segment

import (
	"github.com/nguyentantai21042004/yt-subtools/internal/llm"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
)

type implAnalyzer struct {
	l        logger.Logger
	provider llm.Provider
}

// New creates an Analyzer. A nil provider uses the rule-based heuristic only.
func New(l logger.Logger, provider llm.Provider) Analyzer {
	return &implAnalyzer{
		l:        l,
		provider: provider,
	}
}
