package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
)

// settleDelay gives writers time to finish before a new file is read
const settleDelay = 500 * time.Millisecond

// New creates a Watcher on dir. Matching files are handled one at a time in
// arrival order.
func New(dir string, filter Filter, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		dir:     dir,
		filter:  filter,
		handler: handler,
		logger:  log,
		watcher: watcher,
		settle:  settleDelay,
	}, nil
}
