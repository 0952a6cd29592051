// Package config loads, normalizes, and validates videolow configuration.
//
// It supplies repository defaults, expands tilde paths, and reads TOML files
// from ~/.config/videolow/config.toml or a project-local videolow.toml. The
// Config type centralizes every knob the CLI needs: output defaults, external
// tool binaries, and log settings. Obtain settings through this package so
// downstream code receives sanitized values and clear validation errors.
package config
