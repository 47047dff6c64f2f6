package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// Log levels accepted by Options.Level.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Default log sink settings, matching the historical runner behavior:
// script_runner.log capped at 5 MB with 3 rotated backups.
const (
	DefaultFilePath   = "script_runner.log"
	DefaultMaxSizeMB  = 5
	DefaultMaxBackups = 3
)

// Options configures a Logger.
type Options struct {
	// FilePath is the rotating log file. Empty disables the file sink.
	FilePath string
	// Level is the minimum level logged (DEBUG, INFO, WARN, ERROR).
	// Unrecognized values fall back to INFO.
	Level string
	// MaxSizeMB caps the log file size before rotation. 0 disables rotation.
	MaxSizeMB int
	// MaxBackups is how many rotated files to retain.
	MaxBackups int
	// Console receives the short-format mirror of every entry.
	// Defaults to os.Stderr; set to io.Discard to silence it.
	Console io.Writer
}

// Logger is a leveled logger writing to a rotating file and a console
// mirror. It is safe for concurrent use.
type Logger struct {
	slog *slog.Logger
	sink *RotatingFile
}

// New builds a Logger from opts. The returned Logger owns the file sink;
// call Close when the run is finished.
func New(opts Options) (*Logger, error) {
	level := parseLevel(opts.Level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	handlers := fanoutHandler{newLineHandler(console, level, false)}

	var sink *RotatingFile
	if opts.FilePath != "" {
		var err error
		sink, err = NewRotatingFile(opts.FilePath, opts.MaxSizeMB, opts.MaxBackups)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, newLineHandler(sink, level, true))
	}

	return &Logger{
		slog: slog.New(handlers),
		sink: sink,
	}, nil
}

// Nop returns a Logger that discards everything. Useful in tests.
func Nop() *Logger {
	return &Logger{
		slog: slog.New(newLineHandler(io.Discard, slog.LevelError+1, false)),
	}
}

// With returns a child Logger whose entries carry the given key-value
// pairs in addition to their message.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}
	return &Logger{
		slog: l.slog.With(args...),
		sink: l.sink,
	}
}

// Debug logs at DEBUG level with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

// Info logs at INFO level with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

// Warn logs at WARN level with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

// Error logs at ERROR level with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

// log builds the record by hand so the source location resolves to the
// Logger's caller rather than this package.
func (l *Logger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	h := l.slog.Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, this method, and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = h.Handle(ctx, r)
}

// Close flushes and closes the file sink, if any.
func (l *Logger) Close() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

// ValidLevels returns the accepted level strings.
func ValidLevels() []string {
	return []string{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// IsValidLevel reports whether level names a known log level.
func IsValidLevel(level string) bool {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}
