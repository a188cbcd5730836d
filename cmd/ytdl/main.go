package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/nguyentantai21042004/yt-subtools/internal/cli"
	"github.com/nguyentantai21042004/yt-subtools/internal/config"
	"github.com/nguyentantai21042004/yt-subtools/internal/converter"
	"github.com/nguyentantai21042004/yt-subtools/internal/downloader"
	"github.com/nguyentantai21042004/yt-subtools/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

type flags struct {
	opts           downloader.Options
	noCookies      bool
	listFormats    bool
	getTitle       bool
	getDescription bool
	convertVTT     bool
}

func newRootCmd() *cobra.Command {
	var (
		globals cli.Globals
		f       flags
	)

	cmd := &cobra.Command{
		Use:   "ytdl [url]",
		Short: "Download YouTube videos and subtitles",
		Example: `  ytdl "https://www.youtube.com/watch?v=VIDEO_ID"
  ytdl -q 1080p -o ./downloads "https://youtu.be/VIDEO_ID"
  ytdl --audio-only "https://www.youtube.com/watch?v=VIDEO_ID"
  ytdl --playlist "https://www.youtube.com/playlist?list=PLAYLIST_ID"
  ytdl --list-formats "https://www.youtube.com/watch?v=VIDEO_ID"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := globals.Setup()
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &f)

			url := ""
			if len(args) == 1 {
				url = args[0]
			} else {
				url, err = promptURL(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}
			if !downloader.IsYouTubeURL(url) {
				return fmt.Errorf("not a YouTube link: %q", url)
			}

			return run(cmd.Context(), log, f, strings.TrimSpace(url))
		},
	}

	globals.Register(cmd)
	fl := cmd.Flags()
	fl.StringVarP(&f.opts.OutputDir, "output", "o", "", "output directory (default from config: downloads)")
	fl.StringVarP(&f.opts.Quality, "quality", "q", downloader.Quality720p, "video quality: 720p, 1080p, best, worst")
	fl.BoolVar(&f.opts.AudioOnly, "audio-only", false, "download audio only")
	fl.BoolVar(&f.opts.ExtractAudio, "extract-audio", false, "download the video and also extract its audio")
	fl.StringVar(&f.opts.AudioFormat, "audio-format", "mp3", "extracted audio format: mp3, wav, m4a, flac")
	fl.BoolVar(&f.opts.Playlist, "playlist", false, "download a whole playlist")
	fl.BoolVar(&f.noCookies, "no-cookies", false, "do not import browser cookies")
	fl.StringVar(&f.opts.Browser, "browser", "chrome", "browser to import cookies from: "+strings.Join(downloader.Browsers, ", "))
	fl.StringSliceVar(&f.opts.SubLangs, "sub-langs", nil, "subtitle languages (default en,zh,zh-CN)")
	fl.BoolVar(&f.listFormats, "list-formats", false, "list available formats and exit")
	fl.BoolVar(&f.getTitle, "get-title", false, "print the video title and exit")
	fl.BoolVar(&f.getDescription, "get-description", false, "print the video description and exit")
	fl.BoolVar(&f.convertVTT, "convert-vtt-to-text", false, "convert downloaded .vtt subtitles to text transcripts")

	return cmd
}

// applyConfig fills flags the user did not set from the config file
func applyConfig(cmd *cobra.Command, cfg *config.Config, f *flags) {
	if !cmd.Flags().Changed("output") {
		f.opts.OutputDir = cfg.Download.OutputDir
	}
	if !cmd.Flags().Changed("quality") {
		f.opts.Quality = cfg.Download.Quality
	}
	if !cmd.Flags().Changed("audio-format") {
		f.opts.AudioFormat = cfg.Download.AudioFormat
	}
	if !cmd.Flags().Changed("browser") {
		f.opts.Browser = cfg.Download.Browser
	}
	if !cmd.Flags().Changed("sub-langs") {
		f.opts.SubLangs = cfg.Download.SubLangs
	}
	f.opts.UseCookies = *cfg.Download.UseCookies && !f.noCookies
}

func promptURL(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter a YouTube link: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read url: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("a YouTube link is required")
	}
	return line, nil
}

func run(ctx context.Context, log logger.Logger, f flags, url string) error {
	if !slices.Contains(downloader.Browsers, f.opts.Browser) {
		return fmt.Errorf("unsupported browser %q (choices: %s)", f.opts.Browser, strings.Join(downloader.Browsers, ", "))
	}
	if f.opts.Normalize() {
		log.Warn(ctx, "--audio-only and --extract-audio cannot be combined, using --audio-only")
	}

	dl := downloader.New(f.opts, log, os.Stdout)
	if err := dl.EnsureInstalled(ctx); err != nil {
		return err
	}

	switch {
	case f.listFormats:
		table, err := dl.ListFormats(ctx, url)
		if err != nil {
			return err
		}
		fmt.Print(table)
		return nil

	case f.getTitle, f.getDescription:
		info, err := dl.Info(ctx, url)
		if err != nil {
			return err
		}
		if f.getTitle {
			fmt.Printf("Title: %s\n", info.Title)
		}
		if f.getDescription {
			fmt.Printf("Description:\n%s\n", info.Description)
		}
		return nil
	}

	fmt.Println("Download settings:")
	fmt.Printf("  Quality:  %s\n", f.opts.Quality)
	fmt.Printf("  Mode:     %s\n", f.opts.Mode())
	fmt.Printf("  Playlist: %t\n", f.opts.Playlist)
	if f.opts.UseCookies {
		fmt.Printf("  Cookies:  %s\n", f.opts.Browser)
	} else {
		fmt.Println("  Cookies:  off")
	}
	fmt.Printf("  Output:   %s\n", f.opts.OutputDir)

	files, err := dl.Download(ctx, url)
	if err != nil {
		return err
	}
	fmt.Printf("Download complete, files saved to %s\n", f.opts.OutputDir)
	for _, file := range files {
		fmt.Printf("  %s\n", file)
	}

	if f.convertVTT {
		conv := converter.New(converter.Options{Format: converter.FormatText}, log)
		converted, err := conv.Batch(ctx, f.opts.OutputDir)
		if err != nil {
			return err
		}
		for _, txt := range converted {
			fmt.Printf("  transcript: %s\n", txt)
		}
	}
	return nil
}
