package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseOffsetSeconds converts a signed decimal seconds argument into
// milliseconds, rounded to the nearest millisecond.
func parseOffsetSeconds(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	seconds, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid shift %q: expected a signed decimal number of seconds", value)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("invalid shift %q", value)
	}
	return int64(math.Round(seconds * 1000)), nil
}

// formatOffset renders a millisecond shift as signed seconds, e.g. "-5.430 s".
func formatOffset(offsetMS int64) string {
	return fmt.Sprintf("%+.3f s", float64(offsetMS)/1000)
}

func episodeLabel(number int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(number)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
