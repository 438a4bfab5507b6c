package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dirk/quickhook/internal/domain"
	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/services"
	"github.com/dirk/quickhook/internal/theme"
)

// Color environment variables, consulted only when neither color flag is given
const (
	envForceColor = "QUICKHOOK_COLOR"
	envNoColor    = "NO_COLOR"
)

// HookCmd groups the hook event subcommands
type HookCmd struct {
	PreCommit PreCommitCmd `cmd:"pre-commit" help:"Run pre-commit hooks"`
}

// PreCommitCmd runs the hooks in .quickhook/pre-commit and .quickhook/pre-commit-mutating
type PreCommitCmd struct {
	Color       bool          `help:"Always colorize output (also $QUICKHOOK_COLOR)" xor:"color"`
	Files       []string      `help:"For testing, supply list of files as changed files"`
	NoColor     bool          `help:"Don't colorize output (also $NO_COLOR)" xor:"color"`
	Order       string        `help:"Report order (completion or discovery)" default:"completion" enum:"completion,discovery"`
	Parallelism int           `help:"Maximum number of hooks running at once (0 = number of CPUs)" default:"0"`
	Timeout     time.Duration `help:"Kill hooks that run longer than this (0 = no limit)" default:"0s"`
	Verbose     bool          `help:"Also show the output of passing hooks" short:"v"`
}

// Run executes the pre-commit hooks
func (p *PreCommitCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy := p.colorPolicy()
	colorEnabled := policy.Enabled(cli.Container.Interactive())
	logging.Logger.Debug("Resolved color policy", "policy", string(policy), "enabled", colorEnabled)

	var env []string
	if !colorEnabled {
		env = append(env, envNoColor+"=1")
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	service := cli.Container.NewPreCommitService(theme.NewPalette(colorEnabled), p.Verbose, cli.Tracer)
	outcome, err := service.Run(ctx, services.PreCommitOptions{
		Dir:         wd,
		Env:         env,
		Files:       p.Files,
		Order:       services.RenderOrder(p.Order),
		Parallelism: p.Parallelism,
		Timeout:     p.Timeout,
	})

	if flushErr := cli.Tracer.Flush(); flushErr != nil {
		logging.Logger.Warn("Failed to write trace", "error", flushErr)
	}
	if err != nil {
		return err
	}

	logging.Logger.Info("Pre-commit finished",
		"hooks", len(outcome.Results),
		"failed", len(outcome.Failed()),
		"exit_status", outcome.ExitStatus())
	if !outcome.Passed() {
		return &ExitError{Code: outcome.ExitStatus()}
	}
	return nil
}

// colorPolicy resolves the flags, falling back to the environment when neither flag is set.
// NO_COLOR counts when set to any non-empty value.
func (p *PreCommitCmd) colorPolicy() domain.ColorPolicy {
	noColor, forceColor := p.NoColor, p.Color
	if !noColor && !forceColor {
		noColor = os.Getenv(envNoColor) != ""
		forceColor, _ = strconv.ParseBool(os.Getenv(envForceColor))
	}
	return domain.ColorPolicyFromFlags(noColor, forceColor)
}
