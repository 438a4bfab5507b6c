//go:build windows

package process

import (
	"errors"
	"os"
)

func isWouldBlockError(err error) bool {
	return false
}

func isClosedError(err error) bool {
	return errors.Is(err, os.ErrClosed)
}
