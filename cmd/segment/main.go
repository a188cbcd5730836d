package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/cli"
	"github.com/nguyentantai21042004/yt-subtools/internal/config"
	"github.com/nguyentantai21042004/yt-subtools/internal/llm"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
	"github.com/nguyentantai21042004/yt-subtools/internal/media"
	"github.com/nguyentantai21042004/yt-subtools/internal/segment"
	"github.com/nguyentantai21042004/yt-subtools/internal/timecode"
	"github.com/nguyentantai21042004/yt-subtools/internal/vtt"
	"github.com/nguyentantai21042004/yt-subtools/pkg/executor"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

type flags struct {
	output      string
	duration    float64
	minDuration float64
	provider    string
	apiKey      string
	model       string
	baseURL     string
	dryRun      bool
}

func newRootCmd() *cobra.Command {
	var (
		globals cli.Globals
		f       flags
	)

	cmd := &cobra.Command{
		Use:   "segment <video> <subtitle.vtt>",
		Short: "Split a video into segments at natural pauses in its subtitles",
		Long: `Chooses breakpoints near the target duration where a sentence ends or the
speaker pauses, then cuts the video with ffmpeg without re-encoding.

A hosted language model can pick the breakpoints instead (--provider). Any
provider failure falls back to the rule-based heuristic.`,
		Example: `  segment video.mp4 video.en.vtt
  segment video.mp4 video.en.vtt -d 60 -o clips
  segment video.mp4 video.en.vtt --provider ollama --model llama3.2
  segment video.mp4 video.en.vtt --provider gemini --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := globals.Setup()
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &f)
			return run(cmd.Context(), cfg, log, f, args[0], args[1])
		},
	}

	globals.Register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "segments", "output directory")
	cmd.Flags().Float64VarP(&f.duration, "duration", "d", segment.DefaultTarget, "target segment length in seconds")
	cmd.Flags().Float64Var(&f.minDuration, "min-duration", segment.DefaultMinDuration, "skip segments shorter than this many seconds")
	cmd.Flags().StringVar(&f.provider, "provider", llm.ProviderRule, "breakpoint strategy: "+strings.Join(llm.Providers(), ", "))
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "provider API key (default from the environment)")
	cmd.Flags().StringVar(&f.model, "model", "", "provider model name")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "provider endpoint override")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "only print the breakpoints, do not cut the video")

	return cmd
}

// applyConfig fills flags the user did not set from the config file
func applyConfig(cmd *cobra.Command, cfg *config.Config, f *flags) {
	if !cmd.Flags().Changed("output") {
		f.output = cfg.Segment.OutputDir
	}
	if !cmd.Flags().Changed("duration") {
		f.duration = cfg.Segment.Target
	}
	if !cmd.Flags().Changed("min-duration") {
		f.minDuration = cfg.Segment.MinDuration
	}
	if !cmd.Flags().Changed("provider") {
		f.provider = cfg.LLM.Provider
	}
	if !cmd.Flags().Changed("model") {
		f.model = cfg.LLM.Model
	}
	if !cmd.Flags().Changed("base-url") {
		f.baseURL = cfg.LLM.BaseURL
	}
	if f.apiKey == "" {
		f.apiKey = config.APIKey(f.provider)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger, f flags, videoPath, vttPath string) error {
	for _, path := range []string{videoPath, vttPath} {
		if err := cli.RequireFile(path); err != nil {
			return err
		}
	}
	if f.duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}

	m := media.New(cfg.FFmpeg, executor.New(), log)
	if !f.dryRun {
		if err := m.CheckFFmpeg(); err != nil {
			return err
		}
	}

	res, err := vtt.ParseFile(vttPath)
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		log.Warn(ctx, "Skipped %d malformed cue blocks", res.Skipped)
	}
	if len(res.Cues) == 0 {
		return fmt.Errorf("%s: no subtitle cues found", vttPath)
	}
	log.Info(ctx, "Parsed %d subtitle cues", len(res.Cues))

	analyzer := segment.New(log, newProvider(ctx, log, f, cfg))
	log.Info(ctx, "Analysing breakpoints with %s (target %.0fs)", analyzer.Method(), f.duration)

	breakpoints := analyzer.Breakpoints(ctx, res.Cues, f.duration)
	fmt.Printf("Found %d breakpoints:\n", len(breakpoints))
	for i, bp := range breakpoints {
		fmt.Printf("  %d. %s\n", i+1, timecode.Format(bp))
	}

	total, err := m.Duration(ctx, videoPath)
	if err != nil {
		total = res.Cues[len(res.Cues)-1].End
		log.Warn(ctx, "Could not probe video duration, using last subtitle end %s: %v", timecode.Format(total), err)
	}

	spans := segment.Plan(breakpoints, total, f.minDuration)
	fmt.Printf("Planned %d segments:\n", len(spans))
	for _, s := range spans {
		fmt.Printf("  %s  %s - %s (%.1fs)\n", s.FileName(), timecode.Format(s.Start), timecode.Format(s.End), s.Duration())
	}

	if f.dryRun {
		fmt.Println("Dry run: no video was cut")
		return nil
	}

	written, err := m.Split(ctx, videoPath, f.output, spans)
	if err != nil {
		return err
	}
	fmt.Printf("Done: %d/%d segments written to %s\n", len(written), len(spans), f.output)
	return nil
}

// newProvider returns nil, meaning rule-based, whenever the requested
// provider cannot be used
func newProvider(ctx context.Context, log logger.Logger, f flags, cfg *config.Config) llm.Provider {
	name := strings.ToLower(strings.TrimSpace(f.provider))
	if name == "" || name == llm.ProviderRule {
		return nil
	}
	provider, err := llm.New(llm.Options{
		Provider: name,
		APIKey:   f.apiKey,
		Model:    f.model,
		BaseURL:  f.baseURL,
		Timeout:  cfg.Segment.Timeout,
	})
	if err != nil {
		log.Warn(ctx, "%v, using rule-based segmentation", err)
		return nil
	}
	if f.apiKey == "" && name != llm.ProviderOllama {
		log.Warn(ctx, "No API key for %s, using rule-based segmentation", name)
		return nil
	}
	return provider
}
