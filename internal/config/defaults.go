package config

const (
	defaultOutputDir = "Processed"
	defaultBaseName  = "video"
	defaultFormat    = "mp4"
	defaultYtDlp     = "yt-dlp"
	defaultFFmpeg    = "ffmpeg"
	defaultLogFormat = "auto"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Dir:      defaultOutputDir,
			BaseName: defaultBaseName,
			Format:   defaultFormat,
		},
		Tools: Tools{
			YtDlp:  defaultYtDlp,
			FFmpeg: defaultFFmpeg,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
