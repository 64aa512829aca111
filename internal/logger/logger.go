// Package logger provides structured logging functionality
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// Logger wraps slog.Logger for application-wide logging
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Output io.Writer // defaults to os.Stdout
	Level  string    // debug, info, warn, error
	Format string    // text, json, auto
}

// New creates a new structured logger
func New(cfg Config) *Logger {
	// Parse log level
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Create handler based on format
	var handler slog.Handler
	if resolveFormat(cfg.Format, out) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// resolveFormat turns "auto" into text for terminals and json otherwise.
func resolveFormat(format string, out io.Writer) string {
	if format != "auto" {
		return format
	}
	f, ok := out.(*os.File)
	if !ok {
		return "json"
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "text"
	}
	return "json"
}

// WithComponent returns a logger with a component attribute
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With("component", component),
	}
}

// WithRequest returns a logger with inbound request attributes
func (l *Logger) WithRequest(method, path string) *Logger {
	return &Logger{
		Logger: l.With("method", method, "path", path),
	}
}

// WithEntity returns a logger scoped to one catalog entity
func (l *Logger) WithEntity(kind string, id int64) *Logger {
	return &Logger{
		Logger: l.With("entity_kind", kind, "entity_id", id),
	}
}

// Default returns a default logger for quick usage
func Default() *Logger {
	return New(Config{
		Level:  "info",
		Format: "text",
	})
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(Config{Output: io.Discard, Level: "error", Format: "text"})
}
