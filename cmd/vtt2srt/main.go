package main

import (
	"fmt"

	"github.com/nguyentantai21042004/yt-subtools/internal/cli"
	"github.com/nguyentantai21042004/yt-subtools/internal/converter"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	var (
		globals cli.Globals
		output  string
		batch   bool
	)

	cmd := &cobra.Command{
		Use:   "vtt2srt <file.vtt> | --batch [dir]",
		Short: "Convert WebVTT subtitles to SubRip",
		Example: `  vtt2srt video.en.vtt
  vtt2srt video.en.vtt -o subtitles.srt
  vtt2srt --batch ./downloads`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := globals.Setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			conv := converter.New(converter.Options{Format: converter.FormatSRT}, log)

			if batch {
				converted, err := conv.Batch(ctx, batchDir(args))
				if err != nil {
					return err
				}
				log.Info(ctx, "Converted %d files", len(converted))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a .vtt file or --batch is required")
			}
			if err := cli.RequireFile(args[0]); err != nil {
				return err
			}
			_, err = conv.Convert(ctx, args[0], output)
			return err
		},
	}

	globals.Register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .srt path (default: next to the input)")
	cmd.Flags().BoolVar(&batch, "batch", false, "convert every .vtt file in the directory argument (default: current directory)")

	return cmd
}

// batchDir is the optional directory argument of --batch
func batchDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}
