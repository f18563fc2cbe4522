package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks bad input: an invalid folder, offset, or config.
	ErrValidation = errors.New("validation error")
	// ErrUnreadable marks a file or folder that could not be read.
	ErrUnreadable = errors.New("unreadable")
	// ErrUnwritable marks an output that could not be written.
	ErrUnwritable = errors.New("unwritable")
	// ErrLocked marks a folder already being processed by another run.
	ErrLocked = errors.New("folder locked")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether err should abort the whole batch rather than just the
// current file. Only folder enumeration and lock contention are fatal.
func Fatal(err error) bool {
	return errors.Is(err, ErrLocked) || errors.Is(err, ErrValidation)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	return strings.Join(parts, ": ")
}
