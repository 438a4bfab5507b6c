package ports

// TerminalProbe inspects the command's own standard output
type TerminalProbe interface {
	IsInteractive() bool
	// Size returns the terminal dimensions, ok is false when they are unknown
	Size() (cols, rows int, ok bool)
}
