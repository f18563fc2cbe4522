// Package logging wraps log/slog with the handlers and attribute helpers the
// rest of the tool uses.
//
// Two output formats exist: a console handler that renders
// "TIMESTAMP LEVEL component: message key=value" lines for interactive use,
// and a JSON handler for machine consumption. Component loggers stamp a
// standardized component attribute so every line can be traced back to the
// package that emitted it, and WithContext pulls run identifiers out of a
// context so all lines of one batch share a correlation id.
package logging
