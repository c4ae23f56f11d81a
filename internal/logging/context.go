package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldStage is the standardized structured logging key for workflow stage names.
	FieldStage = "stage"
	// FieldRunID identifies one compose invocation across all of its log lines.
	FieldRunID = "run_id"
	// FieldEventType classifies a record (stage_start, stage_complete, ...).
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the user.
	FieldErrorHint = "error_hint"
	// FieldErrorKind carries the failure classification of an error.
	FieldErrorKind = "error_kind"
	FieldError     = "error"
	// FieldPhoto is the ordinal of the photo a record is about.
	FieldPhoto = "photo"
)

type contextKey string

const stageKey contextKey = "stage"

// WithStage returns a context carrying the current workflow stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, stageKey, strings.TrimSpace(stage))
}

// StageFromContext returns the workflow stage stored in ctx.
func StageFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	stage, ok := ctx.Value(stageKey).(string)
	return stage, ok && stage != ""
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var fields []slog.Attr
	if stage, ok := StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
