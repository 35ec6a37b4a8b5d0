package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jagjit/cosmos-folio/config"
)

const (
	logFileName = "cosmos-folio.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is a var so tests can redirect it
var logDir = "logs"

// initLogging applies the configured level and directory
func initLogging(cfg config.Config) (*os.File, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logDir = cfg.LogDir
	return setupLogging(cfg.Debug, level), nil
}

// setupLogging routes slog and the standard logger to a file when debug is on,
// otherwise discards them since the terminal owns stdout
func setupLogging(debug bool, level slog.Level) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("cosmos-folio-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	// slog.SetDefault also points the standard logger at the handler
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f
}
