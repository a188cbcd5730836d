package downloader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lrstanley/go-ytdlp"
	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
)

const (
	retries      = "3"
	audioQuality = "192K"
)

const installHelp = `install yt-dlp manually:
  pip install yt-dlp
  or download a release from https://github.com/yt-dlp/yt-dlp/releases`

func (d *implDownloader) EnsureInstalled(ctx context.Context) error {
	d.logger.Info(ctx, "Checking yt-dlp installation...")
	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		return fmt.Errorf("install yt-dlp: %w\n%s", err, installHelp)
	}
	d.logger.Debug(ctx, "Using yt-dlp %s at %s", resolved.Version, resolved.Executable)
	return nil
}

// command applies the flags shared by every call
func (d *implDownloader) command() *ytdlp.Command {
	cmd := ytdlp.New().
		ExtractorRetries(retries).
		FragmentRetries(retries)

	if d.opts.UseCookies {
		cmd = cmd.CookiesFromBrowser(d.opts.Browser)
	}
	if d.opts.Playlist {
		cmd = cmd.YesPlaylist()
	} else {
		cmd = cmd.NoPlaylist()
	}
	return cmd
}

func (d *implDownloader) Info(ctx context.Context, url string) (VideoInfo, error) {
	res, err := d.command().
		DumpSingleJSON().
		SkipDownload().
		Run(ctx, url)
	if err != nil {
		return VideoInfo{}, fmt.Errorf("fetch video info: %w", err)
	}
	return parseInfo(res.Stdout)
}

func parseInfo(stdout string) (VideoInfo, error) {
	var info VideoInfo
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &info); err != nil {
		return VideoInfo{}, fmt.Errorf("decode video info: %w", err)
	}
	if info.Title == "" {
		info.Title = "Unknown"
	}
	return info, nil
}

func (d *implDownloader) ListFormats(ctx context.Context, url string) (string, error) {
	info, err := d.Info(ctx, url)
	if err != nil {
		return "", err
	}
	return FormatTable(info.Formats), nil
}

// FormatTable renders formats the way --list-formats shows them
func FormatTable(formats []Format) string {
	var b strings.Builder
	rule := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%-10s %-8s %-12s %-12s %-15s %s\n", "ID", "EXT", "RESOLUTION", "SIZE", "CODEC", "NOTE")
	b.WriteString(rule + "\n")
	for _, f := range formats {
		size := "N/A"
		if f.FileSize > 0 {
			size = humanize.Bytes(uint64(f.FileSize))
		}
		codec := truncate(f.VCodec, 12)
		if f.VCodec == "none" || f.VCodec == "" {
			codec = "audio:" + truncate(f.ACodec, 8)
		}
		fmt.Fprintf(&b, "%-10s %-8s %-12s %-12s %-15s %s\n",
			orNA(f.ID), orNA(f.Ext), orNA(f.Resolution), size, codec, f.Note)
	}
	return b.String()
}

func (d *implDownloader) Download(ctx context.Context, url string) ([]string, error) {
	if err := os.MkdirAll(d.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	d.logger.Info(ctx, "Downloading: %s", url)
	d.logger.Info(ctx, "Saving to: %s", d.opts.OutputDir)

	if info, err := d.Info(ctx, url); err != nil {
		d.logger.Warn(ctx, "Could not fetch video info: %v", err)
	} else {
		d.logger.Info(ctx, "Title: %s", info.Title)
		if info.Duration > 0 {
			d.logger.Info(ctx, "Duration: %s", timecode.FormatClock(info.Duration))
		}
	}

	cmd := d.command().
		Format(d.opts.FormatSelector()).
		Output(d.opts.OutputTemplate()).
		WriteSubs().
		WriteAutoSubs().
		SubLangs(strings.Join(d.opts.SubLangs, ","))

	if d.opts.ExtractAudio {
		cmd = cmd.
			ExtractAudio().
			AudioFormat(d.opts.AudioFormat).
			AudioQuality(audioQuality)
	}

	var files []string
	seen := make(map[string]bool)
	cmd = cmd.ProgressFunc(100*time.Millisecond, func(prog ytdlp.ProgressUpdate) {
		fmt.Fprintf(d.progress, "\r%s %s %.1f%%", string(prog.Status), prog.Filename, prog.Percent())

		if prog.Status == ytdlp.ProgressStatusFinished && prog.Filename != "" && !seen[prog.Filename] {
			seen[prog.Filename] = true
			files = append(files, prog.Filename)
		}
	})

	if _, err := cmd.Run(ctx, url); err != nil {
		return files, fmt.Errorf("download: %w", err)
	}
	fmt.Fprintln(d.progress)

	d.logger.Info(ctx, "Download complete (%d files)", len(files))
	return files, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
