package theme

import "github.com/fatih/color"

// Status colors
const (
	ColorFail = color.FgRed   // failing hook status and output
	ColorOK   = color.FgGreen // passing hook status
)

// Diagnostic colors
const (
	ColorWarning = color.FgYellow // skipped hooks, non-fatal problems
)
