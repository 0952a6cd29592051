// Package logging constructs the slog loggers used across the CLI and the
// pipeline, and hosts the attribute helpers shared by callers.
//
// Console output uses the text handler for interactive sessions; JSON is the
// default when stderr is not a terminal so wrapped invocations get parseable
// records.
package logging
