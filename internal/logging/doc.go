// Package logging provides leveled logging for script orchestration runs.
//
// It wraps Go's log/slog package with plain-text line handlers that write
// to two sinks at once: a size-rotating log file that records the source
// location of every entry, and a shorter console mirror on stderr.
//
// File format:
//
//	2026-01-02 15:04:05.000 - INFO - runner.go:42 - attempt 1/3 for foo.py: delay 4.21s
//
// Console format:
//
//	2026-01-02 15:04:05.000 - INFO: attempt 1/3 for foo.py: delay 4.21s
//
// A Logger is constructed once at process startup and injected into every
// component; there is no package-level singleton.
package logging
