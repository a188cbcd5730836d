package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Burn     BurnConfig     `yaml:"burn"`
	Segment  SegmentConfig  `yaml:"segment"`
	Download DownloadConfig `yaml:"download"`
	LLM      LLMConfig      `yaml:"llm"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
	Encoder    string `yaml:"encoder"`
	Preset     string `yaml:"preset"`
	CRF        int    `yaml:"crf"`
	AudioCodec string `yaml:"audio_codec"`
	TempDir    string `yaml:"temp_dir"`
}

type BurnConfig struct {
	FontSize  int    `yaml:"font_size"`
	FontColor string `yaml:"font_color"`
}

type SegmentConfig struct {
	OutputDir   string        `yaml:"output_dir"`
	Target      float64       `yaml:"target"`
	MinDuration float64       `yaml:"min_duration"`
	// Timeout bounds each provider request; zero keeps the provider default
	Timeout     time.Duration `yaml:"timeout"`
}

type DownloadConfig struct {
	OutputDir   string   `yaml:"output_dir"`
	Quality     string   `yaml:"quality"`
	AudioFormat string   `yaml:"audio_format"`
	Browser     string   `yaml:"browser"`
	UseCookies  *bool    `yaml:"use_cookies"`
	SubLangs    []string `yaml:"sub_langs"`
}

type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

var (
	validLevels    = []string{"debug", "info", "warn", "error"}
	validQualities = []string{"best", "worst", "720p", "1080p"}
)

// Default returns a validated configuration with every default filled in
func Default() *Config {
	cfg := &Config{}
	// Validate cannot fail on the zero value.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of %s", strings.Join(validLevels, ", "))
	}

	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "medium"
	}
	if c.FFmpeg.CRF == 0 {
		c.FFmpeg.CRF = 23
	}
	if c.FFmpeg.CRF < 0 || c.FFmpeg.CRF > 51 {
		return fmt.Errorf("ffmpeg.crf must be between 0 and 51")
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "copy"
	}

	if c.Burn.FontSize == 0 {
		c.Burn.FontSize = 24
	}
	if c.Burn.FontSize < 0 {
		return fmt.Errorf("burn.font_size must be positive")
	}
	if c.Burn.FontColor == "" {
		c.Burn.FontColor = "white"
	}

	if c.Segment.OutputDir == "" {
		c.Segment.OutputDir = "segments"
	}
	if c.Segment.Target == 0 {
		c.Segment.Target = 35
	}
	if c.Segment.Target < 0 {
		return fmt.Errorf("segment.target must be positive")
	}
	if c.Segment.MinDuration == 0 {
		c.Segment.MinDuration = 10
	}
	if c.Segment.Timeout < 0 {
		return fmt.Errorf("segment.timeout must not be negative")
	}

	if c.Download.OutputDir == "" {
		c.Download.OutputDir = "downloads"
	}
	if c.Download.Quality == "" {
		c.Download.Quality = "720p"
	}
	if !contains(validQualities, c.Download.Quality) {
		return fmt.Errorf("download.quality must be one of %s", strings.Join(validQualities, ", "))
	}
	if c.Download.AudioFormat == "" {
		c.Download.AudioFormat = "mp3"
	}
	if c.Download.Browser == "" {
		c.Download.Browser = "chrome"
	}
	if c.Download.UseCookies == nil {
		enabled := true
		c.Download.UseCookies = &enabled
	}
	if len(c.Download.SubLangs) == 0 {
		c.Download.SubLangs = []string{"en", "zh", "zh-CN"}
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = "rule"
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
