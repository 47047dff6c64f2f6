package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotatingFile is an append-only file writer that rotates the file once it
// would exceed a size cap. Rotated files are renamed to <path>.1 through
// <path>.N, with .1 the most recent; the oldest backup beyond maxBackups is
// removed. It is safe for concurrent use.
type RotatingFile struct {
	mu sync.Mutex

	path       string
	maxBytes   int64
	maxBackups int

	file *os.File
	size int64
}

// NewRotatingFile opens (or creates) the log file at path. maxSizeMB of 0
// disables rotation; maxBackups of 0 keeps no rotated files.
func NewRotatingFile(path string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	rf := &RotatingFile{
		path:       path,
		maxBytes:   int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

// open opens the current log file and records its size. Caller holds mu
// (or is the constructor).
func (rf *RotatingFile) open() error {
	if dir := filepath.Dir(rf.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}

	file, err := os.OpenFile(rf.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("stating log file: %w", err)
	}

	rf.file = file
	rf.size = info.Size()
	return nil
}

// Write appends p to the log file, rotating first if the write would push
// the file past the size cap.
func (rf *RotatingFile) Write(p []byte) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return 0, fmt.Errorf("log file is closed")
	}

	if rf.maxBytes > 0 && rf.size > 0 && rf.size+int64(len(p)) > rf.maxBytes {
		if err := rf.rotate(); err != nil {
			// Keep logging into the oversized file rather than dropping
			// entries; surface the problem on stderr.
			fmt.Fprintf(os.Stderr, "warning: log rotation failed: %v\n", err)
		}
	}

	n, err := rf.file.Write(p)
	rf.size += int64(n)
	return n, err
}

// rotate closes the current file, shifts existing backups up by one and
// renames the current file to <path>.1. Caller holds mu.
func (rf *RotatingFile) rotate() error {
	if err := rf.file.Close(); err != nil {
		return fmt.Errorf("closing log file before rotation: %w", err)
	}
	rf.file = nil

	if rf.maxBackups <= 0 {
		if err := os.Remove(rf.path); err != nil {
			return fmt.Errorf("removing log file: %w", err)
		}
		return rf.open()
	}

	// Drop the oldest backup, then shift .i -> .i+1 from oldest to newest.
	os.Remove(rf.backupName(rf.maxBackups))
	for i := rf.maxBackups - 1; i >= 1; i-- {
		if _, err := os.Stat(rf.backupName(i)); err == nil {
			os.Rename(rf.backupName(i), rf.backupName(i+1))
		}
	}

	if err := os.Rename(rf.path, rf.backupName(1)); err != nil {
		if openErr := rf.open(); openErr != nil {
			return fmt.Errorf("renaming log file (%v) and reopening: %w", err, openErr)
		}
		return fmt.Errorf("renaming log file: %w", err)
	}

	return rf.open()
}

func (rf *RotatingFile) backupName(n int) string {
	return fmt.Sprintf("%s.%d", rf.path, n)
}

// Size returns the current size of the active log file in bytes.
func (rf *RotatingFile) Size() int64 {
	rf.mu.Lock()
	defer rf.mu.Unlock()
	return rf.size
}

// Close syncs and closes the active log file.
func (rf *RotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return nil
	}
	if err := rf.file.Sync(); err != nil {
		return fmt.Errorf("syncing log file: %w", err)
	}
	if err := rf.file.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	rf.file = nil
	return nil
}
