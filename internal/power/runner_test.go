package power

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func TestWithStderr(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{"success", "Power Setting GUID", nil, "Power Setting GUID"},
		{"other error", "partial", errors.New("context canceled"), "partial"},
		{"exit without stderr", "out\n", &exec.ExitError{}, "out\n"},
		{"exit with stderr", "", &exec.ExitError{Stderr: []byte("Invalid Parameters")}, "Invalid Parameters"},
		{"stdout and stderr", "out", &exec.ExitError{Stderr: []byte("err")}, "out\nerr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(withStderr([]byte(tt.out), tt.err)); got != tt.want {
				t.Errorf("withStderr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecRunnerSeparatesStreams(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	out, err := ExecRunner{}.Run(context.Background(), sh, "-c", "echo scheme; echo noise >&2")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "scheme" {
		t.Errorf("stdout = %q, want only %q", got, "scheme")
	}

	out, err = ExecRunner{}.Run(context.Background(), sh, "-c", "echo Invalid Parameters >&2; exit 1")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("err = %v, want *exec.ExitError", err)
	}
	if !strings.Contains(string(out), "Invalid Parameters") {
		t.Errorf("failure output %q lacks stderr", out)
	}
}
