package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"subsync/internal/batch"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const statusLabelWidth = 12

// renderSummary prints the batch outcome as aligned status lines, colorized
// when writing to a terminal.
func renderSummary(w io.Writer, plan *batch.Plan, summary *batch.Summary) {
	colorize := shouldColorize(w)

	total := len(plan.Jobs)
	processedKind := statusOK
	if summary.Processed < total {
		processedKind = statusWarn
	}

	lines := []string{
		statusLine(statusInfo, "Folder", plan.Folder, colorize),
		statusLine(statusInfo, "Shift", formatOffset(plan.OffsetMS), colorize),
		statusLine(processedKind, "Processed",
			fmt.Sprintf("%d of %s", summary.Processed, plural(total, "subtitle")), colorize),
		statusLine(statusOK, "Matched",
			fmt.Sprintf("%d renamed after their video", summary.Matched), colorize),
	}
	if summary.Fallback > 0 {
		lines = append(lines, statusLine(statusInfo, "Fallback",
			fmt.Sprintf("%d kept their name behind the prefix", summary.Fallback), colorize))
	}
	if summary.Failed > 0 {
		lines = append(lines, statusLine(statusError, "Failed",
			fmt.Sprintf("%d skipped, see the log", summary.Failed), colorize))
	}
	if summary.ClampedCues > 0 {
		lines = append(lines, statusLine(statusWarn, "Clamped",
			fmt.Sprintf("%s hit the zero mark", plural(summary.ClampedCues, "cue")), colorize))
	}
	if summary.Warnings > 0 {
		lines = append(lines, statusLine(statusWarn, "Warnings",
			fmt.Sprintf("%s left unmodified", plural(summary.Warnings, "timing line")), colorize))
	}
	lines = append(lines, statusLine(statusInfo, "Run", shortRunID(summary.RunID), colorize))

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func statusLine(kind statusKind, label, message string, colorize bool) string {
	text := fmt.Sprintf("  %-*s [%s] %s", statusLabelWidth, label+":", statusKindLabel(kind), message)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + text + ansiReset
		}
	}
	return text
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ""
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
