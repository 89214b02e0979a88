package power

import (
	"context"
	"errors"
	"os/exec"
)

// Runner executes an external program and returns its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as hidden child processes without a shell.
type ExecRunner struct{}

// Run starts name with args, waits for it to exit, and returns stdout.
// A non-zero exit is reported as *exec.ExitError; its stderr is appended to
// the returned output so callers can show why the command failed.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	hideWindow(cmd)
	cmd.Stdin = nil
	out, err := cmd.Output()
	return withStderr(out, err), err
}

func withStderr(out []byte, err error) []byte {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || len(exitErr.Stderr) == 0 {
		return out
	}
	merged := make([]byte, 0, len(out)+1+len(exitErr.Stderr))
	merged = append(merged, out...)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		merged = append(merged, '\n')
	}
	return append(merged, exitErr.Stderr...)
}
