package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"videolow/internal/config"
	"videolow/internal/deps"
	"videolow/internal/logging"
	"videolow/internal/pipeline"
	"videolow/internal/plan"
	"videolow/internal/services"
	"videolow/internal/services/ffmpeg"
	"videolow/internal/services/ytdlp"
)

func newRunCommand(configFlag *string) *cobra.Command {
	var url string
	var name string
	var outputDir string
	var format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch a remote video and produce the requested artifacts",
		Long: `Fetch a remote video with yt-dlp and produce locally stored,
compatibility-normalized files: a re-encoded video container, an audio-only
extraction, or both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if name == "" {
				name = cfg.Output.BaseName
			}
			if outputDir == "" {
				outputDir = cfg.Output.Dir
			}
			if format == "" {
				format = cfg.Output.Format
			}
			kind, err := plan.ParseOutputKind(format)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			if missing := deps.Missing(statuses); len(missing) > 0 {
				return services.Wrap(services.ErrLaunch, "preflight", "check tools", fmt.Sprintf("required tools unavailable: %s (see 'videolow deps')", strings.Join(missing, ", ")), nil)
			}

			downloader, err := ytdlp.New(cfg.Tools.YtDlp)
			if err != nil {
				return err
			}
			transcoder, err := ffmpeg.New(cfg.Tools.FFmpeg)
			if err != nil {
				return err
			}

			p, err := pipeline.New(downloader, transcoder,
				pipeline.WithLogger(logger),
				pipeline.WithObserver(pipeline.NewLogObserver(logger)),
			)
			if err != nil {
				return err
			}

			result, err := p.Run(cmd.Context(), pipeline.Request{
				SourceURL: url,
				BaseName:  name,
				OutputDir: outputDir,
				Kind:      kind,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, final := range result.Finals {
				fmt.Fprintln(out, final)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", "", "URL of the video to fetch")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Base name for the output files (without extension)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory the files are written to")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: mp4, mp3, or both")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
