package services

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/dirk/quickhook/internal/domain"
	"github.com/dirk/quickhook/internal/theme"
)

// RenderOrder selects when results are written
type RenderOrder string

const (
	// OrderCompletion renders each hook as soon as it finishes
	OrderCompletion RenderOrder = "completion"
	// OrderDiscovery buffers results and renders them in discovery order
	OrderDiscovery RenderOrder = "discovery"
)

// Renderer writes one status line per hook plus the captured output of failing hooks.
// Render is safe for concurrent use; each result is written with a single Write.
type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	palette *theme.Palette
	verbose bool
}

// NewRenderer creates a renderer. With verbose set, output of passing hooks is shown too.
func NewRenderer(out io.Writer, palette *theme.Palette, verbose bool) *Renderer {
	return &Renderer{
		out:     out,
		palette: palette,
		verbose: verbose,
	}
}

// Render writes the report for one result
func (r *Renderer) Render(result domain.HookResult) error {
	report := r.Format(result)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := io.WriteString(r.out, report); err != nil {
		return fmt.Errorf("failed to write report for hook %s: %w", result.Name, err)
	}
	return nil
}

// Format returns the report for one result without writing it
func (r *Renderer) Format(result domain.HookResult) string {
	var b strings.Builder

	b.WriteString(result.Name)
	b.WriteString(": ")
	b.WriteString(r.statusWord(result))
	b.WriteString("\n")

	if result.Passed() && !r.verbose {
		return b.String()
	}

	body := string(result.Output)
	if !r.palette.Enabled() {
		// Hooks that force color on their own must not leak escapes into plain output
		body = ansi.Strip(body)
	}
	body = strings.TrimRight(body, "\n")
	if body == "" {
		return b.String()
	}

	if !result.Passed() {
		body = r.palette.Fail(body)
	}
	b.WriteString(body)
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) statusWord(result domain.HookResult) string {
	word := string(result.Status())
	if result.Passed() {
		return r.palette.OK(word)
	}
	return r.palette.Fail(word)
}
