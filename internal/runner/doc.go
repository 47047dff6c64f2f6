// Package runner executes a single script unit: it validates the unit,
// resolves its repeat count, and runs the script that many times in
// sequence as captured child processes, pausing for a randomized delay
// before each attempt. The first failed attempt aborts the remaining
// repetitions for that unit.
package runner
