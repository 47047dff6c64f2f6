package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Wintoo12/Automation/internal/logging"
	"github.com/Wintoo12/Automation/internal/runner"
	"github.com/Wintoo12/Automation/internal/script"
)

// DefaultWorkers bounds how many units execute simultaneously.
const DefaultWorkers = 4

// UnitRunner runs the full attempt loop for a single unit.
type UnitRunner interface {
	Run(ctx context.Context, unit script.Unit) runner.Result
}

// Orchestrator distributes units across a fixed-size worker pool.
type Orchestrator struct {
	workers int
	runner  UnitRunner
	logger  *logging.Logger
}

// New creates an Orchestrator. A workers value below 1 falls back to
// DefaultWorkers.
func New(workers int, unitRunner UnitRunner, logger *logging.Logger) *Orchestrator {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Orchestrator{
		workers: workers,
		runner:  unitRunner,
		logger:  logger,
	}
}

// unitOutcome pairs a unit with its pass/fail verdict for collection.
type unitOutcome struct {
	unit    script.Unit
	success bool
}

// Run executes every unit through the pool and blocks until all have
// finished, then logs and returns the summary. Results are collected in
// completion order; the summary's lists preserve that order.
func (o *Orchestrator) Run(ctx context.Context, units []script.Unit) *Summary {
	start := time.Now()

	jobs := make(chan script.Unit)
	outcomes := make(chan unitOutcome)

	var wg sync.WaitGroup
	for w := 0; w < o.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for unit := range jobs {
				outcomes <- unitOutcome{unit: unit, success: o.runUnit(ctx, unit)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, unit := range units {
			select {
			case jobs <- unit:
			case <-ctx.Done():
				// Unsubmitted units are reported as failed so the
				// summary still accounts for every unit.
				outcomes <- unitOutcome{unit: unit}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	summary := &Summary{}
	for outcome := range outcomes {
		if outcome.success {
			summary.Successful = append(summary.Successful, outcome.unit.Path)
		} else {
			summary.Failed = append(summary.Failed, outcome.unit.Path)
		}
	}
	summary.Elapsed = time.Since(start)

	o.logger.Info("Execution Summary:")
	o.logger.Info(fmt.Sprintf("Successful Scripts: %v", summary.Successful))
	o.logger.Info(fmt.Sprintf("Failed Scripts: %v", summary.Failed))

	return summary
}

// runUnit isolates one unit's execution. A panic inside the runner is
// contained here: the unit is recorded as failed and siblings keep going.
func (o *Orchestrator) runUnit(ctx context.Context, unit script.Unit) (success bool) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error(fmt.Sprintf("unexpected error with %s: %v", unit.Path, r))
			success = false
		}
	}()

	return o.runner.Run(ctx, unit).Success
}
