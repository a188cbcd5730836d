package converter

import "context"

// Converter turns WebVTT files into SRT or timestamped plain text
type Converter interface {
	// Convert writes one file and returns the output path. An empty outPath
	// writes next to the input with the target extension.
	Convert(ctx context.Context, vttPath, outPath string) (string, error)
	// Batch converts every .vtt file directly inside dir. Failures are
	// logged and skipped.
	Batch(ctx context.Context, dir string) ([]string, error)
	// Process converts with default paths; it fits watcher.EventHandler
	Process(ctx context.Context, vttPath string) error
}
