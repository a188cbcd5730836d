package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nguyentantai21042004/yt-subtools/internal/cli"
	"github.com/nguyentantai21042004/yt-subtools/internal/media"
	"github.com/nguyentantai21042004/yt-subtools/pkg/executor"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	var (
		globals   cli.Globals
		output    string
		fontSize  int
		fontColor string
	)

	cmd := &cobra.Command{
		Use:   "burnsub <video> <subtitle>",
		Short: "Burn subtitles into a video with ffmpeg",
		Example: `  burnsub video.mp4 subtitles.vtt
  burnsub video.mp4 subtitles.srt -o output.mp4
  burnsub video.mp4 subtitles.vtt --font-size 28 --font-color yellow`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := globals.Setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			for _, path := range args {
				if err := cli.RequireFile(path); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("font-size") {
				fontSize = cfg.Burn.FontSize
			}
			if !cmd.Flags().Changed("font-color") {
				fontColor = cfg.Burn.FontColor
			}
			if !slices.Contains(media.Colors(), strings.ToLower(fontColor)) {
				log.Warn(ctx, "Unknown font color %q, using white (choices: %s)", fontColor, strings.Join(media.Colors(), ", "))
			}

			m := media.New(cfg.FFmpeg, executor.New(), log)
			if err := m.CheckFFmpeg(); err != nil {
				return err
			}

			res, err := m.Burn(ctx, media.BurnRequest{
				Video:     args[0],
				Subtitle:  args[1],
				Output:    output,
				FontSize:  fontSize,
				FontColor: fontColor,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Output: %s\n", res.Output)
			fmt.Printf("Original size: %s\n", humanize.Bytes(uint64(res.InputSize)))
			fmt.Printf("New size: %s\n", humanize.Bytes(uint64(res.OutputSize)))
			return nil
		},
	}

	globals.Register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output video path (default: <name>_with_subtitles.<ext>)")
	cmd.Flags().IntVar(&fontSize, "font-size", 24, "subtitle font size")
	cmd.Flags().StringVar(&fontColor, "font-color", "white", "subtitle color: "+strings.Join(media.Colors(), ", "))

	return cmd
}
