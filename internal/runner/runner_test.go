package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Wintoo12/Automation/internal/logging"
	"github.com/Wintoo12/Automation/internal/metrics"
	"github.com/Wintoo12/Automation/internal/script"
)

// fakeInvoker scripts per-attempt outcomes and counts invocations.
type fakeInvoker struct {
	calls    atomic.Int64
	failFrom int // 1-based attempt index that starts failing; 0 = never
}

func (f *fakeInvoker) Invoke(ctx context.Context, _ script.Unit) Invocation {
	call := int(f.calls.Add(1))

	if err := ctx.Err(); err != nil {
		return Invocation{ExitCode: -1, Err: err}
	}
	if f.failFrom > 0 && call >= f.failFrom {
		return Invocation{
			Stdout:   "partial output",
			Stderr:   "boom",
			ExitCode: 1,
			Err:      errors.New("exit status 1"),
		}
	}
	return Invocation{Stdout: "ok"}
}

// blockingInvoker waits for the attempt context to expire.
type blockingInvoker struct{}

func (blockingInvoker) Invoke(ctx context.Context, _ script.Unit) Invocation {
	<-ctx.Done()
	return Invocation{ExitCode: -1, Err: ctx.Err()}
}

func writeScript(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("print('ok')\n"), 0o644); err != nil {
		t.Fatalf("writing fixture script: %v", err)
	}
	return path
}

// fastDelays keeps the attempt loop's sleeps negligible in tests.
func fastDelays() Option {
	return WithDelayBounds(0.0005, 0.001)
}

func TestRunnerAllAttemptsSucceed(t *testing.T) {
	path := writeScript(t, "survey-3.py")
	invoker := &fakeInvoker{}
	r := New(logging.Nop(), WithInvoker(invoker), fastDelays())

	result := r.Run(context.Background(), script.Unit{Path: path})

	if !result.Success {
		t.Fatal("expected success when every attempt passes")
	}
	if got := invoker.calls.Load(); got != 3 {
		t.Errorf("invocations = %d, want 3", got)
	}
	if len(result.Attempts) != 3 {
		t.Fatalf("recorded attempts = %d, want 3", len(result.Attempts))
	}
	for i, attempt := range result.Attempts {
		if attempt.Index != i+1 {
			t.Errorf("attempt %d has index %d", i, attempt.Index)
		}
		if attempt.Delay <= 0 {
			t.Errorf("attempt %d has no delay recorded", i+1)
		}
	}
}

func TestRunnerAbortsOnFirstFailure(t *testing.T) {
	path := writeScript(t, "survey-3.py")
	invoker := &fakeInvoker{failFrom: 2}
	r := New(logging.Nop(), WithInvoker(invoker), fastDelays())

	result := r.Run(context.Background(), script.Unit{Path: path})

	if result.Success {
		t.Fatal("expected failure when attempt 2 fails")
	}
	if got := invoker.calls.Load(); got != 2 {
		t.Errorf("invocations = %d, want 2 (third attempt must be skipped)", got)
	}
	last := result.Attempts[len(result.Attempts)-1]
	if last.Stderr != "boom" {
		t.Errorf("failure attempt stderr = %q, want captured output", last.Stderr)
	}
}

func TestRunnerInvalidUnitMakesNoAttempt(t *testing.T) {
	invoker := &fakeInvoker{}
	r := New(logging.Nop(), WithInvoker(invoker), fastDelays())

	result := r.Run(context.Background(), script.Unit{Path: "does/not/exist.py"})

	if result.Success {
		t.Fatal("expected failure for an invalid unit")
	}
	if got := invoker.calls.Load(); got != 0 {
		t.Errorf("invocations = %d, want 0", got)
	}
	if len(result.Attempts) != 0 {
		t.Errorf("attempts = %d, want 0", len(result.Attempts))
	}
}

func TestRunnerExplicitRepetitionsOverrideSuffix(t *testing.T) {
	path := writeScript(t, "survey-40.py")
	invoker := &fakeInvoker{}
	r := New(logging.Nop(), WithInvoker(invoker), fastDelays())

	result := r.Run(context.Background(), script.Unit{Path: path, Repetitions: 2})

	if !result.Success {
		t.Fatal("expected success")
	}
	if got := invoker.calls.Load(); got != 2 {
		t.Errorf("invocations = %d, want 2 (explicit count, not 40)", got)
	}
}

func TestRunnerAttemptTimeout(t *testing.T) {
	path := writeScript(t, "hang-1.py")
	r := New(logging.Nop(),
		WithInvoker(blockingInvoker{}),
		WithTimeout(20*time.Millisecond),
		fastDelays(),
	)

	start := time.Now()
	result := r.Run(context.Background(), script.Unit{Path: path})

	if result.Success {
		t.Fatal("expected a timed-out attempt to fail the unit")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("run took %v, timeout did not bound the attempt", elapsed)
	}
}

func TestRunnerCancelledContext(t *testing.T) {
	path := writeScript(t, "survey-3.py")
	invoker := &fakeInvoker{}
	r := New(logging.Nop(), WithInvoker(invoker), WithDelayBounds(5, 5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := r.Run(ctx, script.Unit{Path: path})

	if result.Success {
		t.Fatal("expected failure for a cancelled run")
	}
	if got := invoker.calls.Load(); got != 0 {
		t.Errorf("invocations = %d, want 0 after pre-run cancellation", got)
	}
}

func TestRunnerRecordsDurations(t *testing.T) {
	path := writeScript(t, "survey-2.py")
	recorder := metrics.NewRecorder()
	r := New(logging.Nop(), WithInvoker(&fakeInvoker{}), WithRecorder(recorder), fastDelays())

	r.Run(context.Background(), script.Unit{Path: path})

	if snap := recorder.Snapshot(); snap.Count != 2 {
		t.Errorf("recorded durations = %d, want 2", snap.Count)
	}
}
