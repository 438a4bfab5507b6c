package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/ports"
)

// Probe implements ports.TerminalProbe for one file descriptor, normally stdout
type Probe struct {
	fd uintptr
}

// Compile-time interface verification
var _ ports.TerminalProbe = (*Probe)(nil)

// NewProbe creates a probe for f
func NewProbe(f *os.File) *Probe {
	return &Probe{fd: f.Fd()}
}

// IsInteractive reports whether the descriptor is a terminal, including Cygwin/MSYS ptys
func (p *Probe) IsInteractive() bool {
	interactive := isatty.IsTerminal(p.fd) || isatty.IsCygwinTerminal(p.fd)
	logging.Logger.Debug("Probed terminal", "fd", p.fd, "interactive", interactive)
	return interactive
}

// Size returns the terminal's columns and rows
func (p *Probe) Size() (cols, rows int, ok bool) {
	cols, rows, err := term.GetSize(int(p.fd))
	if err != nil {
		logging.Logger.Debug("Terminal size unavailable", "fd", p.fd, "error", err)
		return 0, 0, false
	}
	return cols, rows, true
}
