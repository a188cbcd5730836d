package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/yt-subtools/internal/segment"
)

// ErrFFmpegNotFound is returned when the ffmpeg binary cannot be resolved
var ErrFFmpegNotFound = errors.New("ffmpeg not found")

const installHelp = `please install ffmpeg first:
  macOS: brew install ffmpeg
  Ubuntu/Debian: sudo apt install ffmpeg
  Windows: download from https://ffmpeg.org/download.html`

func (m *implMedia) CheckFFmpeg() error {
	if _, err := m.executor.LookPath(m.cfg.BinaryPath); err != nil {
		return fmt.Errorf("%w (%s)\n%s", ErrFFmpegNotFound, m.cfg.BinaryPath, installHelp)
	}
	return nil
}

func (m *implMedia) Duration(ctx context.Context, videoPath string) (float64, error) {
	out, err := m.executor.Execute(ctx, m.cfg.ProbePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		videoPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probe.Format.Duration, err)
	}
	return duration, nil
}

func (m *implMedia) Split(ctx context.Context, videoPath, outDir string, spans []segment.Span) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, span := range spans {
		outputPath := filepath.Join(outDir, span.FileName())
		m.logger.Info(ctx, "Creating segment %d: %.2fs - %.2fs (%.2fs)", span.Index, span.Start, span.End, span.Duration())

		if _, err := m.executor.Execute(ctx, m.cfg.BinaryPath, splitArgs(videoPath, span, outputPath)...); err != nil {
			m.logger.Error(ctx, "Failed to create segment %d: %v", span.Index, err)
			continue
		}
		written = append(written, outputPath)
	}

	if len(spans) > 0 && len(written) == 0 {
		return nil, fmt.Errorf("all %d segments failed", len(spans))
	}
	return written, nil
}

func splitArgs(videoPath string, span segment.Span, outputPath string) []string {
	return []string{
		"-y",
		"-i", videoPath,
		"-ss", strconv.FormatFloat(span.Start, 'f', 3, 64),
		"-t", strconv.FormatFloat(span.Duration(), 'f', 3, 64),
		"-c", "copy",
		outputPath,
	}
}
