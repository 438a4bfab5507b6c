package theme

import "github.com/fatih/color"

// Palette renders ANSI styles for one invocation.
// Each style carries its own enablement; the fatih/color global NoColor is never consulted.
type Palette struct {
	enabled bool

	failStyle    *color.Color
	okStyle      *color.Color
	warningStyle *color.Color
}

// NewPalette creates a palette that emits escape sequences only when enabled
func NewPalette(enabled bool) *Palette {
	p := &Palette{
		enabled:      enabled,
		failStyle:    color.New(ColorFail),
		okStyle:      color.New(ColorOK),
		warningStyle: color.New(ColorWarning),
	}
	for _, style := range []*color.Color{p.failStyle, p.okStyle, p.warningStyle} {
		if enabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return p
}

// Enabled reports whether the palette emits escape sequences
func (p *Palette) Enabled() bool {
	return p.enabled
}

// Fail wraps s in red
func (p *Palette) Fail(s string) string {
	return p.failStyle.Sprint(s)
}

// OK wraps s in green
func (p *Palette) OK(s string) string {
	return p.okStyle.Sprint(s)
}

// Warning wraps s in yellow
func (p *Palette) Warning(s string) string {
	return p.warningStyle.Sprint(s)
}
