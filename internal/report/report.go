// Package report provides the diagnostic channel the curve evaluators use to
// surface validation and numeric failures without aborting the caller.
package report

import (
	"context"
	"fmt"
	"log/slog"
)

// Reporter receives diagnostics from the curve evaluators.
// Implementations must be safe to call from the goroutine running a compute.
type Reporter interface {
	// ValidationFailure reports rejected input (wrong point count, negative
	// sample count, invalid ratios).
	ValidationFailure(format string, args ...any)

	// Exception reports a numeric failure during evaluation.
	Exception(format string, args ...any)

	// Warning reports a recoverable condition, such as a substituted sample.
	Warning(format string, args ...any)
}

// Kind attribute values attached to every slog record.
const (
	KindValidation = "validation"
	KindException  = "exception"
	KindWarning    = "warning"
)

// SlogReporter forwards diagnostics to a structured logger.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlog returns a Reporter writing to logger.
// A nil logger falls back to slog.Default().
func NewSlog(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

// ValidationFailure implements [Reporter].
func (r *SlogReporter) ValidationFailure(format string, args ...any) {
	r.log(slog.LevelError, KindValidation, format, args...)
}

// Exception implements [Reporter].
func (r *SlogReporter) Exception(format string, args ...any) {
	r.log(slog.LevelError, KindException, format, args...)
}

// Warning implements [Reporter].
func (r *SlogReporter) Warning(format string, args ...any) {
	r.log(slog.LevelWarn, KindWarning, format, args...)
}

func (r *SlogReporter) log(level slog.Level, kind, format string, args ...any) {
	ctx := context.Background()
	if !r.logger.Enabled(ctx, level) {
		return
	}
	r.logger.Log(ctx, level, fmt.Sprintf(format, args...), slog.String("kind", kind))
}

type nop struct{}

func (nop) ValidationFailure(string, ...any) {}
func (nop) Exception(string, ...any)         {}
func (nop) Warning(string, ...any)           {}

// Nop returns a Reporter that discards everything.
func Nop() Reporter {
	return nop{}
}

// Recorder collects diagnostics in memory. Tests use it to assert that a
// failure was reported; it is not safe for concurrent use.
type Recorder struct {
	Validations []string
	Exceptions  []string
	Warnings    []string
}

// ValidationFailure implements [Reporter].
func (r *Recorder) ValidationFailure(format string, args ...any) {
	r.Validations = append(r.Validations, fmt.Sprintf(format, args...))
}

// Exception implements [Reporter].
func (r *Recorder) Exception(format string, args ...any) {
	r.Exceptions = append(r.Exceptions, fmt.Sprintf(format, args...))
}

// Warning implements [Reporter].
func (r *Recorder) Warning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Len returns the total number of recorded diagnostics.
func (r *Recorder) Len() int {
	return len(r.Validations) + len(r.Exceptions) + len(r.Warnings)
}
