//go:build !windows

package process

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirk/quickhook/internal/ports"
)

const detectTerminalScript = `#!/bin/sh
if [ -t 1 ]; then echo tty; else echo pipe; fi
`

func TestNewChannel(t *testing.T) {
	assert.Equal(t, "pipe", NewChannel(false, 80, 24).Kind())
	assert.Equal(t, "pty", NewChannel(true, 80, 24).Kind())
}

func TestNewPtyChannel_Size(t *testing.T) {
	assert.Nil(t, NewPtyChannel(0, 0).size)

	c := NewPtyChannel(120, 40)
	require.NotNil(t, c.size)
	assert.Equal(t, uint16(120), c.size.Cols)
	assert.Equal(t, uint16(40), c.size.Rows)
}

func TestChannels_TerminalDetection(t *testing.T) {
	tests := []struct {
		name     string
		channel  OutputChannel
		expected string
	}{
		{"pipe", PipeChannel{}, "pipe\n"},
		{"pty", NewPtyChannel(80, 24), "tty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := writeScript(t, t.TempDir(), "detect", detectTerminalScript)

			result := NewExecutor(tt.channel).Execute(context.Background(), hook, ports.ExecOptions{})

			assert.Equal(t, 0, result.ExitCode)
			assert.Equal(t, tt.expected, string(result.Output))
		})
	}
}

func TestPtyChannel_StdinStaysAPipe(t *testing.T) {
	hook := writeScript(t, t.TempDir(), "files", "#!/bin/sh\nwhile read -r f; do echo \"file: $f\"; done\necho \"exit\" 1>&2\nexit 2\n")

	result := NewExecutor(NewPtyChannel(80, 24)).Execute(context.Background(), hook, ports.ExecOptions{Stdin: "a.go\nb.go\n"})

	assert.Equal(t, 2, result.ExitCode)
	assert.Equal(t, "file: a.go\nfile: b.go\nexit\n", string(result.Output))
}

func TestPtyChannel_ReportsSize(t *testing.T) {
	hook := writeScript(t, t.TempDir(), "size", "#!/bin/sh\nstty size </dev/tty\n")

	result := NewExecutor(NewPtyChannel(100, 30)).Execute(context.Background(), hook, ports.ExecOptions{})

	assert.Equal(t, "30 100\n", string(result.Output))
}

func TestPtyChannel_StartFailure(t *testing.T) {
	cmd := exec.CommandContext(context.Background(), "/nonexistent/hook")

	_, err := NewPtyChannel(0, 0).Capture(cmd, "")

	assert.Error(t, err)
}
