package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	// Start blocks until ctx is cancelled or the underlying watcher fails
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error

// Filter decides which created files are handed to the EventHandler
type Filter func(path string) bool
