package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/Wintoo12/Automation/internal/logging"
	"github.com/Wintoo12/Automation/internal/metrics"
	"github.com/Wintoo12/Automation/internal/script"
)

// Runner executes one unit at a time: validation, repeat-count resolution,
// then the sequential attempt loop. Distinct units may be run concurrently
// through separate goroutines; attempts within a unit never are.
type Runner struct {
	delays   *DelayGenerator
	invoker  Invoker
	timeout  time.Duration
	recorder *metrics.Recorder
	logger   *logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithDelayBounds sets the random delay range in seconds.
func WithDelayBounds(min, max float64) Option {
	return func(r *Runner) {
		r.delays = NewDelayGenerator(min, max)
	}
}

// WithInvoker replaces the process invoker, primarily for tests.
func WithInvoker(invoker Invoker) Option {
	return func(r *Runner) {
		r.invoker = invoker
	}
}

// WithTimeout bounds each attempt's child process. Zero disables the
// timeout, leaving a hung script to block its worker indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

// WithRecorder collects attempt durations for the run summary.
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(r *Runner) {
		r.recorder = recorder
	}
}

// New creates a Runner with default delay bounds and the os/exec invoker.
func New(logger *logging.Logger, opts ...Option) *Runner {
	r := &Runner{
		delays:  NewDelayGenerator(DefaultMinDelay, DefaultMaxDelay),
		invoker: NewExecInvoker(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every attempt for the unit and returns the aggregate
// result. An invalid unit fails immediately without any attempt or delay.
func (r *Runner) Run(ctx context.Context, unit script.Unit) Result {
	result := Result{Unit: unit}

	if !script.Validate(unit.Path, r.logger) {
		return result
	}

	repetitions := unit.Resolve(r.logger)

	for index := 1; index <= repetitions; index++ {
		delay := r.delays.Next()
		r.logger.Info(fmt.Sprintf("attempt %d/%d for %s: delay %.2fs", index, repetitions, unit.Path, delay.Seconds()))

		if err := sleep(ctx, delay); err != nil {
			r.logger.Warn(fmt.Sprintf("run of %s cancelled before attempt %d: %v", unit.Path, index, err))
			return result
		}

		attempt := r.attempt(ctx, unit, index, delay)
		result.Attempts = append(result.Attempts, attempt)

		if !attempt.Succeeded() {
			r.logger.Error(fmt.Sprintf("error executing %s (attempt %d/%d): exit code %d", unit.Path, index, repetitions, attempt.ExitCode))
			r.logger.Error(fmt.Sprintf("STDOUT: %s", attempt.Stdout))
			r.logger.Error(fmt.Sprintf("STDERR: %s", attempt.Stderr))
			return result
		}

		r.logger.Info(fmt.Sprintf("successfully completed %s (attempt %d)", unit.Path, index))
	}

	result.Success = true
	return result
}

// attempt spawns one child process for the unit and times it.
func (r *Runner) attempt(ctx context.Context, unit script.Unit, index int, delay time.Duration) Attempt {
	attemptCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	inv := r.invoker.Invoke(attemptCtx, unit)
	elapsed := time.Since(start)

	if r.recorder != nil {
		r.recorder.Record(elapsed)
	}

	return Attempt{
		Index:    index,
		Delay:    delay,
		Duration: elapsed,
		Stdout:   inv.Stdout,
		Stderr:   inv.Stderr,
		ExitCode: inv.ExitCode,
		Err:      inv.Err,
	}
}

// sleep blocks for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
