//go:build windows

package process

import "github.com/dirk/quickhook/internal/logging"

func newPtyChannel(cols, rows int) OutputChannel {
	logging.Logger.Debug("Pseudo-terminals unsupported, using pipe channel", "cols", cols, "rows", rows)
	return PipeChannel{}
}
