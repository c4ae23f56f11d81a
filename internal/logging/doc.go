// Package logging builds the slog loggers used by photostrip.
//
// Console output is a compact human format written to stderr so it never
// mixes with the interactive prompts on stdout. When a log directory is
// configured, every record is also written as JSON to a file. Each logger is
// stamped with the run identifier of the composite being produced, and
// WithContext copies the current workflow stage from a context onto log lines.
package logging
