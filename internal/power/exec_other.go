//go:build !windows

package power

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
