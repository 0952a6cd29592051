package config

import "strings"

// normalize trims and canonicalizes values after decoding, falling back to
// defaults for fields left empty in the file.
func (c *Config) normalize() error {
	c.Output.Dir = strings.TrimSpace(c.Output.Dir)
	if c.Output.Dir == "" {
		c.Output.Dir = defaultOutputDir
	}
	if strings.HasPrefix(c.Output.Dir, "~") {
		expanded, err := expandPath(c.Output.Dir)
		if err != nil {
			return err
		}
		c.Output.Dir = expanded
	}

	c.Output.BaseName = strings.TrimSpace(c.Output.BaseName)
	if c.Output.BaseName == "" {
		c.Output.BaseName = defaultBaseName
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}

	c.Tools.YtDlp = strings.TrimSpace(c.Tools.YtDlp)
	if c.Tools.YtDlp == "" {
		c.Tools.YtDlp = defaultYtDlp
	}
	c.Tools.FFmpeg = strings.TrimSpace(c.Tools.FFmpeg)
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = defaultFFmpeg
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
