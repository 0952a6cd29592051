// Package ytdlp wraps yt-dlp invocations for fetching remote media.
//
// Format selectors, codecs, and quality targets are constants of the design:
// the pipeline's naming and compatibility guarantees depend on the tool
// producing exactly the containers these templates request.
package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"videolow/internal/services/command"
)

// videoFormat asks for the best mp4-containerized video+audio combination so
// the downloaded file is already an mp4 candidate for normalization.
const videoFormat = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

const (
	audioFormat  = "mp3"
	audioQuality = "192K"
)

// Option configures the client.
type Option func(*Client)

// WithRunner injects a custom command runner (primarily for tests).
func WithRunner(runner command.Runner) Option {
	return func(c *Client) {
		if runner != nil {
			c.runner = runner
		}
	}
}

// Client invokes the yt-dlp binary.
type Client struct {
	binary string
	runner command.Runner
}

// New constructs a yt-dlp client for the given binary.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("yt-dlp binary required")
	}
	client := &Client{binary: binary, runner: command.New()}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// DownloadVideo fetches the best available video+audio streams as an mp4
// candidate at outputPath. A pre-existing file at outputPath is replaced.
func (c *Client) DownloadVideo(ctx context.Context, url, outputPath string) error {
	args := []string{
		"-f", videoFormat,
		"--force-overwrites",
		"-o", outputPath,
		url,
	}
	if err := c.runner.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("download video: %w", err)
	}
	return nil
}

// DownloadAudio fetches the best audio stream and converts it directly to a
// fixed-bitrate mp3 at outputPath.
func (c *Client) DownloadAudio(ctx context.Context, url, outputPath string) error {
	args := []string{
		"-f", "bestaudio",
		"--extract-audio",
		"--audio-format", audioFormat,
		"--audio-quality", audioQuality,
		"--force-overwrites",
		"-o", outputPath,
		url,
	}
	if err := c.runner.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("download audio: %w", err)
	}
	return nil
}
