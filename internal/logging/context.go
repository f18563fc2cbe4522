package logging

import (
	"context"
	"log/slog"

	"subsync/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for batch run identifiers.
	FieldRunID = "run_id"
	// FieldFolder is the standardized structured logging key for the folder being processed.
	FieldFolder = "folder"
	// FieldSubtitle is the standardized structured logging key for subtitle filenames.
	FieldSubtitle = "subtitle"
	// FieldVideo is the standardized structured logging key for matched video filenames.
	FieldVideo = "video"
	// FieldOutput is the standardized structured logging key for derived output filenames.
	FieldOutput = "output"
	// FieldDialect is the standardized structured logging key for subtitle dialect names.
	FieldDialect = "dialect"
	// FieldOffsetMS is the standardized structured logging key for the shift offset in milliseconds.
	FieldOffsetMS = "offset_ms"
	// FieldEpisode is the standardized structured logging key for extracted episode numbers.
	FieldEpisode = "episode"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if folder, ok := services.FolderFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldFolder, folder))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
