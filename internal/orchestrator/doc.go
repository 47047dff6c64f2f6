// Package orchestrator fans a fixed set of script units out over a bounded
// worker pool and gathers per-unit pass/fail results as they complete.
// Units execute in total isolation from each other; a failure, or even a
// panic, while running one unit never disturbs its siblings.
package orchestrator
