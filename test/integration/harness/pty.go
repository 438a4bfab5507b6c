//go:build !windows

package harness

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/creack/pty"
)

// RunCommandInPty executes the quickhook binary attached to a pseudo-terminal, the way
// git runs it from an interactive shell. Stdout and stderr share the terminal, so
// everything lands in CommandResult.Stdout with CRLF line endings folded to LF.
func RunCommandInPty(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Dir = env.Repo.Path
	cmd.Env = append(env.Environ(), "TERM=xterm")

	terminal, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: 80, Rows: 24})
	if err != nil {
		tb.Fatalf("Failed to start quickhook in a pty: %v", err)
	}
	defer func() { _ = terminal.Close() }()

	var output bytes.Buffer
	// Linux reports EIO once the child side closes; everything before it was copied
	_, _ = io.Copy(&output, terminal)
	err = cmd.Wait()

	return CommandResult{
		ExitCode: exitCode(ctx, tb, err, defaultTimeout, args),
		Stdout:   strings.ReplaceAll(output.String(), "\r\n", "\n"),
	}
}
