// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diag formats the human-readable diagnostic stream shared by the
// extract and rename pipelines. Each line carries a timestamp and severity.
// Callers inject the sink, so core logic stays testable against a buffer.
package diag

import (
	"fmt"
	"io"
	"time"
)

// Infof writes an informational line to w.
func Infof(w io.Writer, format string, args ...any) {
	logf(w, "INFO", format, args...)
}

// Warnf writes a warning line to w.
func Warnf(w io.Writer, format string, args ...any) {
	logf(w, "WARNING", format, args...)
}

// Errorf writes an error line to w.
func Errorf(w io.Writer, format string, args ...any) {
	logf(w, "ERROR", format, args...)
}

func logf(w io.Writer, level, format string, args ...any) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(w, "%s [%s] %s\n", ts, level, fmt.Sprintf(format, args...))
}
