//go:build !windows

package process

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/dirk/quickhook/internal/logging"
)

// PtyChannel gives each hook a pseudo-terminal for stdout and stderr so that
// hooks detecting a terminal (for color, progress bars) behave as they would interactively.
// Stdin stays a pipe carrying the staged file list.
type PtyChannel struct {
	size *pty.Winsize
}

// Compile-time interface verification
var _ OutputChannel = (*PtyChannel)(nil)

// NewPtyChannel creates a pty channel; a zero size leaves the kernel default
func NewPtyChannel(cols, rows int) *PtyChannel {
	c := &PtyChannel{}
	if cols > 0 && rows > 0 {
		c.size = &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)}
	}
	return c
}

func newPtyChannel(cols, rows int) OutputChannel {
	return NewPtyChannel(cols, rows)
}

// Kind implements OutputChannel
func (c *PtyChannel) Kind() string {
	return "pty"
}

// Capture implements OutputChannel
func (c *PtyChannel) Capture(cmd *exec.Cmd, stdin string) ([]byte, error) {
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Cancel = func() error {
		return killProcessGroup(cmd)
	}

	// Ctty is a child descriptor: fd 1 is the pty slave, fd 0 is the stdin pipe
	master, err := pty.StartWithAttrs(cmd, c.size, &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    1,
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = master.Close() }()

	read, err := nonblockingReader(master)
	if err != nil {
		_ = killProcessGroup(cmd)
		_ = cmd.Wait()
		return nil, fmt.Errorf("failed to prepare pty: %w", err)
	}

	var output bytes.Buffer
	relayDone := make(chan error, 1)
	go func() {
		relayDone <- newRelay(read, &output).run()
	}()

	waitErr := cmd.Wait()
	relayErr := <-relayDone

	captured := normalizeNewlines(output.Bytes())
	if relayErr != nil {
		logging.Logger.Error("Pty relay failed", "path", cmd.Path, "error", relayErr)
		return captured, fmt.Errorf("failed to relay output: %w", relayErr)
	}
	return captured, waitErr
}

// nonblockingReader reads the pty master directly so that "no data yet" surfaces
// as EAGAIN instead of parking inside the runtime poller.
func nonblockingReader(f *os.File) (readFunc, error) {
	conn, err := f.SyscallConn()
	if err != nil {
		return nil, err
	}

	var controlErr error
	if err := conn.Control(func(fd uintptr) {
		controlErr = unix.SetNonblock(int(fd), true)
	}); err != nil {
		return nil, err
	}
	if controlErr != nil {
		return nil, controlErr
	}

	return func(p []byte) (int, error) {
		var n int
		var readErr error
		if err := conn.Read(func(fd uintptr) bool {
			n, readErr = unix.Read(int(fd), p)
			return true
		}); err != nil {
			return 0, err
		}
		if n < 0 {
			n = 0
		}
		if n == 0 && readErr == nil {
			return 0, io.EOF
		}
		return n, readErr
	}, nil
}
