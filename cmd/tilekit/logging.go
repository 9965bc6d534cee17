package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logFileName = "tilekit.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate above 10MB
)

// newLogger creates a timestamped logger writing to w at level
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// setupLogging builds the command logger.
// Without debug output is discarded, unless verbose sends it to stderr.
// With debug a log file under dir receives debug output, rotated when it grows past maxLogSize.
// The returned file, if any, must be closed by the caller.
func setupLogging(dir string, debug, verbose bool, stderr io.Writer) (*log.Logger, *os.File, error) {
	if !debug {
		if verbose {
			return newLogger(stderr, log.DebugLevel), nil, nil
		}
		return newLogger(io.Discard, log.InfoLevel), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("tilekit-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var w io.Writer = f
	if verbose {
		w = io.MultiWriter(f, stderr)
	}
	return newLogger(w, log.DebugLevel), f, nil
}
