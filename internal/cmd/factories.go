package cmd

import (
	"io"
	"os"

	adaptergit "github.com/dirk/quickhook/internal/adapters/git"
	adapterhookdir "github.com/dirk/quickhook/internal/adapters/hookdir"
	adapterprocess "github.com/dirk/quickhook/internal/adapters/process"
	adapterterminal "github.com/dirk/quickhook/internal/adapters/terminal"
	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/services"
	"github.com/dirk/quickhook/internal/theme"
	"github.com/dirk/quickhook/internal/tracing"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Executor *adapterprocess.Executor
	Finder   *adapterhookdir.Finder
	GitRepo  *adaptergit.CLIRepository

	// Output
	Stdout io.Writer

	interactive bool
}

// NewContainer creates a new Container with all dependencies wired.
// The interactivity of stdout is probed once here and decides the output channel for every hook.
func NewContainer(stdout *os.File, stderr io.Writer) *Container {
	probe := adapterterminal.NewProbe(stdout)
	interactive := probe.IsInteractive()
	cols, rows, _ := probe.Size()

	channel := adapterprocess.NewChannel(interactive, cols, rows)
	logging.Logger.Debug("Selected output channel", "channel", channel.Kind(), "cols", cols, "rows", rows)

	return &Container{
		Executor:    adapterprocess.NewExecutor(channel),
		Finder:      adapterhookdir.NewFinder(stderr),
		GitRepo:     adaptergit.NewCLIRepository(),
		Stdout:      stdout,
		interactive: interactive,
	}
}

// Interactive reports whether stdout is a terminal
func (c *Container) Interactive() bool {
	return c.interactive
}

// NewPreCommitService wires a pre-commit service that reports through palette
func (c *Container) NewPreCommitService(palette *theme.Palette, verbose bool, tracer *tracing.Tracer) *services.PreCommitService {
	renderer := services.NewRenderer(c.Stdout, palette, verbose)
	return services.NewPreCommitService(c.GitRepo, c.Finder, c.Executor, renderer, tracer)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Executor != nil {
		return c.Executor.Close()
	}
	return nil
}
