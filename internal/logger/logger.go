// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// items-api application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/MKhiriev/items-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings of the log file sink.
const (
	fileMaxSizeMB  = 10
	fileMaxAgeDays = 20
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// NewLogger constructs the server *Logger for the given role label
// (e.g. "server").
//
// The logger is configured with:
//   - the level taken from cfg.Level, or Debug when app.Debug is set;
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Development output is a human readable console writer on os.Stdout, while
// production writes plain JSON. When cfg.File is set every entry is also
// written as JSON to a size-rotated, compressed file. Call Close at shutdown
// to release the file.
func NewLogger(role string, cfg config.Log, app config.App) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if app.Debug {
		level = zerolog.DebugLevel
	}

	var stdout io.Writer = os.Stdout
	if !app.Production {
		stdout = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if cfg.File == "" {
		return newLogger(role, level, nil, stdout), nil
	}

	file := &lumberjack.Logger{
		Filename: cfg.File,
		MaxSize:  fileMaxSizeMB,
		MaxAge:   fileMaxAgeDays,
		Compress: true,
	}

	return newLogger(role, level, file, stdout, file), nil
}

// NewClientLogger returns a console logger on os.Stderr for command-line
// tools, so that log lines never mix with the command's own stdout output.
func NewClientLogger(role string, level zerolog.Level) *Logger {
	return newLogger(role, level, nil, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func newLogger(role string, level zerolog.Level, closer io.Closer, writers ...io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	var out io.Writer
	if len(writers) == 1 {
		out = writers[0]
	} else {
		out = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger, closer: closer}
}

// ParseLevel maps the configured level name onto a zerolog level. WARNING
// and CRITICAL are accepted alongside zerolog's own names.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel, nil
	case "DEBUG":
		return zerolog.DebugLevel, nil
	case "", "INFO":
		return zerolog.InfoLevel, nil
	case "WARN", "WARNING":
		return zerolog.WarnLevel, nil
	case "ERROR":
		return zerolog.ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return zerolog.FatalLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Close releases the file sink, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
