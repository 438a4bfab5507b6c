package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dirk/quickhook/internal/config"
	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/tracing"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file, '-' for stderr (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	Trace       bool             `help:"Print timing spans to stderr after the run" env:"QUICKHOOK_TRACE"`

	Hook HookCmd `cmd:"" help:"Run hooks for a git event"`

	// Internal fields (not flags)
	Container *Container      `kong:"-"`
	Tracer    *tracing.Tracer `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and wires dependencies
func (c *CLI) AfterApply() error {
	debugFile := c.DebugFile
	if debugFile != logging.StderrTarget {
		debugFile = config.ExpandPath(debugFile)
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, debugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Hooks that call quickhook again log to the same file
	if c.Debug || debugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	if c.Trace {
		c.Tracer = tracing.New(os.Stderr)
	}

	// Create container AFTER logging is initialized so adapters log to the right place
	c.Container = NewContainer(os.Stdout, os.Stderr)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
