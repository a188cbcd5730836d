package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/srt"
	"github.com/nguyentantai21042004/yt-subtools/internal/transcript"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
)

// OutputPath is the default output for vttPath in the given format
func OutputPath(vttPath, format string) string {
	if format == FormatSRT {
		return srt.OutputPath(vttPath)
	}
	return strings.TrimSuffix(vttPath, filepath.Ext(vttPath)) + ".txt"
}

func (c *implConverter) Convert(ctx context.Context, vttPath, outPath string) (string, error) {
	if outPath == "" {
		outPath = OutputPath(vttPath, c.opts.Format)
	}
	c.logger.Info(ctx, "Converting: %s -> %s", filepath.Base(vttPath), outPath)

	if c.opts.Format == FormatSRT {
		stats, err := srt.ConvertFile(vttPath, outPath)
		if err != nil {
			return "", err
		}
		c.logSkipped(ctx, vttPath, stats.Skipped)
		c.logger.Info(ctx, "Wrote %d subtitles to %s", stats.Entries, stats.Output)
		return stats.Output, nil
	}

	return c.toText(ctx, vttPath, outPath)
}

func (c *implConverter) toText(ctx context.Context, vttPath, outPath string) (string, error) {
	res, err := vtt.ParseFile(vttPath)
	if err != nil {
		return "", err
	}
	c.logSkipped(ctx, vttPath, res.Skipped)
	if len(res.Cues) == 0 {
		return "", fmt.Errorf("%s: %w", vttPath, srt.ErrNoCues)
	}

	segments := transcript.Punctuate(transcript.Merge(res.Cues))
	c.logger.Info(ctx, "Parsed %d cues into %d segments", len(res.Cues), len(segments))

	if err := os.WriteFile(outPath, []byte(transcript.Render(segments)), 0644); err != nil {
		return "", fmt.Errorf("write text: %w", err)
	}

	if c.opts.Docx {
		docxPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".docx"
		title := strings.TrimSuffix(filepath.Base(vttPath), filepath.Ext(vttPath))
		if err := transcript.WriteDocx(title, segments, docxPath); err != nil {
			// the text transcript is already written
			c.logger.Warn(ctx, "Failed to write Word copy %s: %v", docxPath, err)
		} else {
			c.logger.Info(ctx, "Word copy saved: %s", docxPath)
		}
	}

	c.logger.Info(ctx, "Conversion complete: %s", outPath)
	return outPath, nil
}

func (c *implConverter) Batch(ctx context.Context, dir string) ([]string, error) {
	files, err := FindVTT(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		c.logger.Warn(ctx, "No .vtt files found in %s", dir)
		return nil, nil
	}

	c.logger.Info(ctx, "Found %d .vtt files", len(files))

	var converted []string
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return converted, err
		}
		out, err := c.Convert(ctx, f, "")
		if err != nil {
			c.logger.Error(ctx, "Failed to convert %s: %v", filepath.Base(f), err)
			continue
		}
		converted = append(converted, out)
	}

	c.logger.Info(ctx, "Batch complete: %d/%d files converted", len(converted), len(files))
	return converted, nil
}

func (c *implConverter) Process(ctx context.Context, vttPath string) error {
	_, err := c.Convert(ctx, vttPath, "")
	return err
}

func (c *implConverter) logSkipped(ctx context.Context, path string, skipped int) {
	if skipped > 0 {
		c.logger.Warn(ctx, "%s: skipped %d malformed cue blocks", filepath.Base(path), skipped)
	}
}

// FindVTT lists the .vtt files directly inside dir, sorted by name
func FindVTT(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsVTT(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// IsVTT reports whether path has a .vtt extension
func IsVTT(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vtt")
}
