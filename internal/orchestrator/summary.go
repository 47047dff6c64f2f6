package orchestrator

import "time"

// Summary partitions a run's units into successes and failures. It lives
// for the duration of the process only; callers wanting a machine-readable
// failure signal must read the log.
type Summary struct {
	// Successful and Failed hold unit paths in completion order.
	Successful []string
	Failed     []string

	// Elapsed is the wall time of the whole run.
	Elapsed time.Duration
}

// AllSucceeded reports whether no unit failed.
func (s *Summary) AllSucceeded() bool {
	return len(s.Failed) == 0
}

// Total returns the number of units accounted for.
func (s *Summary) Total() int {
	return len(s.Successful) + len(s.Failed)
}
