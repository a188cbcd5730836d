package main

import (
	"fmt"

	"github.com/nguyentantai21042004/yt-subtools/internal/cli"
	"github.com/nguyentantai21042004/yt-subtools/internal/converter"
	"github.com/nguyentantai21042004/yt-subtools/internal/watcher"
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
		watch   string
		docx    bool
	)

	cmd := &cobra.Command{
		Use:   "vtt2text <file.vtt> | --batch [dir]",
		Short: "Convert WebVTT subtitles to a punctuated, timestamped transcript",
		Long: `Merges overlapping rolling captions, infers punctuation from the pauses
between them, and writes one "[mm:ss] text" line per sentence.`,
		Example: `  vtt2text video.en.vtt
  vtt2text video.en.vtt -o transcript.txt --docx
  vtt2text --batch ./downloads
  vtt2text --watch ./downloads`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := globals.Setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			conv := converter.New(converter.Options{Format: converter.FormatText, Docx: docx}, log)

			switch {
			case watch != "":
				w, err := watcher.New(watch, converter.IsVTT, conv.Process, log)
				if err != nil {
					return err
				}
				defer w.Stop()
				log.Info(ctx, "Press Ctrl+C to stop")
				if err := w.Start(ctx); err != nil && ctx.Err() == nil {
					return err
				}
				return nil

			case batch:
				converted, err := conv.Batch(ctx, batchDir(args))
				if err != nil {
					return err
				}
				log.Info(ctx, "Converted %d files", len(converted))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a .vtt file, --batch or --watch is required")
			}
			if err := cli.RequireFile(args[0]); err != nil {
				return err
			}
			_, err = conv.Convert(ctx, args[0], output)
			return err
		},
	}

	globals.Register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output .txt path (default: next to the input)")
	cmd.Flags().BoolVar(&batch, "batch", false, "convert every .vtt file in the directory argument (default: current directory)")
	cmd.Flags().StringVar(&watch, "watch", "", "convert new .vtt files as they appear in a directory")
	cmd.Flags().BoolVar(&docx, "docx", false, "also write a Word copy of the transcript")
	cmd.MarkFlagsMutuallyExclusive("batch", "watch")

	return cmd
}

// batchDir is the optional directory argument of --batch
func batchDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}
