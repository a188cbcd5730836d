package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asticode/go-astisub"
	"github.com/dustin/go-humanize"
)

const softwareEncoder = "libx264"

// BGR hex values as expected by the ASS PrimaryColour field
var colorHex = map[string]string{
	"white":   "FFFFFF",
	"black":   "000000",
	"red":     "0000FF",
	"green":   "00FF00",
	"blue":    "FF0000",
	"yellow":  "00FFFF",
	"cyan":    "FFFF00",
	"magenta": "FF00FF",
}

// ColorHex maps a color name to its BGR hex value; unknown names are white
func ColorHex(name string) string {
	if hex, ok := colorHex[strings.ToLower(strings.TrimSpace(name))]; ok {
		return hex
	}
	return colorHex["white"]
}

// Colors lists the accepted color names
func Colors() []string {
	return []string{"white", "black", "red", "green", "blue", "yellow", "cyan", "magenta"}
}

// DefaultBurnOutput is <stem>_with_subtitles<ext> in the working directory
func DefaultBurnOutput(videoPath string) string {
	base := filepath.Base(videoPath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_with_subtitles" + ext
}

// subtitleFilter builds the -vf value for a subtitle file in the working dir
func subtitleFilter(subFilename string, fontSize int, fontColor string) string {
	return fmt.Sprintf("subtitles=%s:force_style='FontSize=%d,PrimaryColour=&H%s&'",
		subFilename, fontSize, ColorHex(fontColor))
}

// Burn renders the subtitle into the video frames. ffmpeg runs inside an
// isolated temp dir so the filter only ever sees a plain relative file name.
func (m *implMedia) Burn(ctx context.Context, req BurnRequest) (BurnResult, error) {
	videoInfo, err := os.Stat(req.Video)
	if err != nil {
		return BurnResult{}, fmt.Errorf("video file: %w", err)
	}
	if _, err := os.Stat(req.Subtitle); err != nil {
		return BurnResult{}, fmt.Errorf("subtitle file: %w", err)
	}

	outputPath := req.Output
	if outputPath == "" {
		outputPath = DefaultBurnOutput(req.Video)
	}
	fontSize := req.FontSize
	if fontSize <= 0 {
		fontSize = 24
	}

	m.logger.Info(ctx, "Burning subtitle into video: %s + %s", req.Video, req.Subtitle)
	m.logger.Info(ctx, "Font: size %d, color %s", fontSize, req.FontColor)

	tempDir, err := os.MkdirTemp(m.cfg.TempDir, "burn-*")
	if err != nil {
		return BurnResult{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	subFilename, err := m.stageSubtitle(ctx, req.Subtitle, tempDir)
	if err != nil {
		return BurnResult{}, err
	}

	absVideoPath, err := filepath.Abs(req.Video)
	if err != nil {
		return BurnResult{}, fmt.Errorf("resolve video path: %w", err)
	}
	tempOutput := filepath.Join(tempDir, "output"+filepath.Ext(outputPath))
	filter := subtitleFilter(subFilename, fontSize, req.FontColor)

	args := m.burnArgs(absVideoPath, filter, m.cfg.Encoder, tempOutput)
	m.logger.Debug(ctx, "FFmpeg command in dir %s: ffmpeg %s", tempDir, strings.Join(args, " "))

	if _, err := m.executor.ExecuteInDir(ctx, tempDir, m.cfg.BinaryPath, args...); err != nil {
		if m.cfg.Encoder == softwareEncoder {
			return BurnResult{}, fmt.Errorf("ffmpeg burn subtitle: %w", err)
		}
		m.logger.Warn(ctx, "Encoder %s failed, trying %s...", m.cfg.Encoder, softwareEncoder)
		args = m.burnArgs(absVideoPath, filter, softwareEncoder, tempOutput)
		if _, err := m.executor.ExecuteInDir(ctx, tempDir, m.cfg.BinaryPath, args...); err != nil {
			return BurnResult{}, fmt.Errorf("both %s and %s encoders failed: %w", m.cfg.Encoder, softwareEncoder, err)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return BurnResult{}, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.Rename(tempOutput, outputPath); err != nil {
		// temp dir may sit on another device
		if err := copyFile(tempOutput, outputPath); err != nil {
			return BurnResult{}, fmt.Errorf("move output to final location: %w", err)
		}
	}

	result := BurnResult{Output: outputPath, InputSize: videoInfo.Size()}
	if info, err := os.Stat(outputPath); err == nil {
		result.OutputSize = info.Size()
	}

	m.logger.Info(ctx, "Subtitle burned successfully: %s", outputPath)
	m.logger.Debug(ctx, "Size: %s -> %s", humanize.Bytes(uint64(result.InputSize)), humanize.Bytes(uint64(result.OutputSize)))
	return result, nil
}

func (m *implMedia) burnArgs(videoPath, filter, encoder, outputPath string) []string {
	args := []string{
		"-y",
		"-i", videoPath,
		"-vf", filter,
		"-c:v", encoder,
	}
	if encoder == softwareEncoder {
		args = append(args, "-preset", m.cfg.Preset, "-crf", strconv.Itoa(m.cfg.CRF))
	}
	return append(args, "-c:a", m.cfg.AudioCodec, outputPath)
}

// stageSubtitle writes the subtitle into dir as SRT. Formats astisub cannot
// read are copied as is and left to ffmpeg.
func (m *implMedia) stageSubtitle(ctx context.Context, subtitlePath, dir string) (string, error) {
	const name = "subtitle.srt"

	subs, err := astisub.OpenFile(subtitlePath)
	if err == nil {
		err = subs.Write(filepath.Join(dir, name))
	}
	if err == nil {
		m.logger.Debug(ctx, "Normalised %s to SRT (%d items)", subtitlePath, len(subs.Items))
		return name, nil
	}

	m.logger.Warn(ctx, "Failed to convert %s to SRT, using it unchanged: %v", subtitlePath, err)
	raw := "subtitle" + strings.ToLower(filepath.Ext(subtitlePath))
	if err := copyFile(subtitlePath, filepath.Join(dir, raw)); err != nil {
		return "", fmt.Errorf("copy subtitle to temp: %w", err)
	}
	return raw, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
