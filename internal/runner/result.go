package runner

import (
	"time"

	"github.com/Wintoo12/Automation/internal/script"
)

// Attempt records one execution of a unit.
type Attempt struct {
	// Index is 1-based.
	Index int

	// Delay applied before the attempt started.
	Delay time.Duration

	// Duration of the child process itself, excluding the delay.
	Duration time.Duration

	// Captured output streams.
	Stdout string
	Stderr string

	// ExitCode of the child process. -1 when the process never ran or
	// was killed before exiting on its own.
	ExitCode int

	// Err is the spawn or wait error, nil on success.
	Err error
}

// Succeeded reports whether the attempt's child process exited zero.
func (a Attempt) Succeeded() bool {
	return a.Err == nil && a.ExitCode == 0
}

// Result is the aggregate outcome for one unit across all its attempts.
// Success requires every attempt in sequence to have succeeded; attempts
// after the first failure are never made.
type Result struct {
	Unit     script.Unit
	Attempts []Attempt
	Success  bool
}
