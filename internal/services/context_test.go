package services_test

import (
	"context"
	"errors"
	"testing"

	"subsync/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithFolder(ctx, "/media/show")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if folder, ok := services.FolderFromContext(ctx); !ok || folder != "/media/show" {
		t.Fatalf("unexpected folder: %v %v", folder, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "")
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id")
	}
}

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrUnreadable, "batch", "read subtitle", "skipping file", base)
	if !errors.Is(err, services.ErrUnreadable) {
		t.Fatalf("marker lost: %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestFatalClassification(t *testing.T) {
	if services.Fatal(services.Wrap(services.ErrUnwritable, "batch", "write", "", nil)) {
		t.Fatal("per-file write failures must not abort the batch")
	}
	if !services.Fatal(services.Wrap(services.ErrLocked, "batch", "lock", "", nil)) {
		t.Fatal("lock contention must abort the run")
	}
}
