package services

import "context"

type contextKey string

const (
	runIDKey  contextKey = "run_id"
	folderKey contextKey = "folder"
)

// WithRunID annotates context with the batch run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the batch run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithFolder annotates context with the folder being processed.
func WithFolder(ctx context.Context, folder string) context.Context {
	if folder == "" {
		return ctx
	}
	return context.WithValue(ctx, folderKey, folder)
}

// FolderFromContext returns the folder being processed if present.
func FolderFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(folderKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
