//go:build !windows

package process

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func isWouldBlockError(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR)
}

// isClosedError reports a pty whose slave side has gone away.
// Linux returns EIO once every process holding the slave has exited.
func isClosedError(err error) bool {
	return errors.Is(err, unix.EIO) || errors.Is(err, os.ErrClosed)
}
