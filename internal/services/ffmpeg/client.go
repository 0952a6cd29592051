// Package ffmpeg wraps ffmpeg invocations for compatibility normalization and
// audio extraction.
//
// Codec choices are constants of the design: H.264 video with AAC audio and a
// faststart layout plays on the broad set of target players the pipeline
// promises, and extracted audio is always 192k mp3.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"videolow/internal/services/command"
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

// Client invokes the ffmpeg binary.
type Client struct {
	binary string
	runner command.Runner
}

// New constructs an ffmpeg client for the given binary.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{binary: binary, runner: command.New()}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Normalize re-encodes inputPath into an H.264/AAC mp4 with a
// progressive-streaming layout at outputPath. A pre-existing output is
// replaced without prompting.
func (c *Client) Normalize(ctx context.Context, inputPath, outputPath string) error {
	args := []string{
		"-y",
		"-i", inputPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-movflags", "+faststart",
		outputPath,
	}
	if err := c.runner.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("normalize video: %w", err)
	}
	return nil
}

// ExtractAudio strips the video stream from inputPath and encodes the
// remaining audio as 192k mp3 at outputPath.
func (c *Client) ExtractAudio(ctx context.Context, inputPath, outputPath string) error {
	args := []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-c:a", "libmp3lame",
		"-b:a", "192k",
		outputPath,
	}
	if err := c.runner.Run(ctx, c.binary, args); err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	return nil
}
