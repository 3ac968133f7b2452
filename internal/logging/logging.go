// Package logging configures the zerolog loggers used across holocron.
//
// Loggers are built from a Config that mirrors the `logging` section of the
// configuration file. Components derive child loggers with ComponentLogger and
// carry them through context.Context so request-scoped fields such as the
// trace ID are attached automatically.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Supported formats and outputs.
const (
	FormatJSON    = "json"
	FormatConsole = "console"

	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputFile    = "file"
	OutputDiscard = "discard"
)

// Config describes how a logger should be constructed.
type Config struct {
	Level  string
	Format string
	Output string
	File   string

	// Caller adds the file:line of each log call.
	Caller bool
}

// LogPathResult is the outcome of building a logger that may write to a file.
// Callers must Close it when the command finishes.
type LogPathResult struct {
	Logger         zerolog.Logger
	FilePath       string
	UsingFile      bool
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a logger from cfg and reports where it writes.
func NewLoggerWithPath(cfg Config) LogPathResult {
	var result LogPathResult

	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case OutputDiscard:
		out = io.Discard
	case OutputStdout:
		out = os.Stdout
	case OutputFile:
		f, err := openLogFile(cfg.File)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
			out = os.Stderr
			break
		}
		result.file = f
		result.FilePath = cfg.File
		result.UsingFile = true
		out = f
	default:
		out = os.Stderr
	}

	result.Logger = newLogger(out, cfg)
	return result
}

// NewWriterLogger builds a logger that writes to w. Used by tests and by
// callers that own their output stream.
func NewWriterLogger(w io.Writer, cfg Config) zerolog.Logger {
	return newLogger(w, cfg)
}

func newLogger(out io.Writer, cfg Config) zerolog.Logger {
	if strings.ToLower(cfg.Format) == FormatConsole && out != io.Discard {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).
		Level(ParseLevel(cfg.Level)).
		Hook(traceHook{}).
		With().
		Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// ParseLevel converts a level name into a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user the log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file, logging to stderr: %s\n", reason)
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("log output is %q but no file path is configured", OutputFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return f, nil
}
