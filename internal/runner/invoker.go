package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/Wintoo12/Automation/internal/script"
)

// Invocation is the raw outcome of spawning one attempt's child process.
type Invocation struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Invoker spawns one attempt of a unit as an independent child process,
// capturing its output streams and exit status. The runner communicates
// with the script only through this contract.
type Invoker interface {
	Invoke(ctx context.Context, unit script.Unit) Invocation
}

// execInvoker runs units through os/exec with buffered output.
type execInvoker struct{}

// NewExecInvoker returns the production Invoker backed by os/exec.
func NewExecInvoker() Invoker {
	return execInvoker{}
}

func (execInvoker) Invoke(ctx context.Context, unit script.Unit) Invocation {
	argv := unit.Argv()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	inv := Invocation{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}

	switch {
	case err == nil:
		inv.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			inv.ExitCode = exitErr.ExitCode()
		} else {
			// Spawn failure or kill before exit.
			inv.ExitCode = -1
		}
	}

	return inv
}
