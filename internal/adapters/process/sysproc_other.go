//go:build windows

package process

import "os/exec"

// isolateProcessGroup is a no-op; exec.CommandContext kills the direct child
func isolateProcessGroup(cmd *exec.Cmd) {}
