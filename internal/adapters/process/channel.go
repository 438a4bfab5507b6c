package process

import (
	"bytes"
	"os/exec"
	"strings"
)

// OutputChannel starts a prepared command and captures its combined stdout and stderr.
// One channel is selected per invocation and shared by every hook.
type OutputChannel interface {
	// Kind names the channel for logs ("pipe" or "pty")
	Kind() string
	// Capture starts cmd (built with exec.CommandContext) with stdin as its standard
	// input and blocks until the process is reaped and all of its output has been relayed.
	// The returned error is the wait error (*exec.ExitError for a non-zero exit)
	// or a start/relay failure.
	Capture(cmd *exec.Cmd, stdin string) ([]byte, error)
}

// PipeChannel relays hook output through a plain pipe
type PipeChannel struct{}

// Compile-time interface verification
var _ OutputChannel = PipeChannel{}

// Kind implements OutputChannel
func (PipeChannel) Kind() string {
	return "pipe"
}

// Capture implements OutputChannel
func (PipeChannel) Capture(cmd *exec.Cmd, stdin string) ([]byte, error) {
	var output bytes.Buffer

	cmd.Stdin = strings.NewReader(stdin)
	// The same comparable writer for both streams means exec serializes writes,
	// keeping stdout and stderr interleaved in the order produced.
	cmd.Stdout = &output
	cmd.Stderr = &output
	isolateProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	err := cmd.Wait()
	return output.Bytes(), err
}

// NewChannel selects the output channel for a whole invocation.
// Interactive invocations get a pseudo-terminal sized cols x rows (zero means unknown)
// where the platform supports one; everything else gets a plain pipe.
func NewChannel(interactive bool, cols, rows int) OutputChannel {
	if !interactive {
		return PipeChannel{}
	}
	return newPtyChannel(cols, rows)
}

// normalizeNewlines undoes the CRLF translation done by the pty line discipline
func normalizeNewlines(output []byte) []byte {
	return bytes.ReplaceAll(output, []byte("\r\n"), []byte("\n"))
}
