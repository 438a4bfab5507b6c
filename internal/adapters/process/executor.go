package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/dirk/quickhook/internal/domain"
	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/ports"
)

// waitDelay bounds how long Wait keeps relaying output after the hook exits or is
// killed while a background process it spawned still holds the output open.
const waitDelay = 2 * time.Second

// Executor implements ports.HookExecutor on top of an OutputChannel
type Executor struct {
	channel OutputChannel

	shimOnce sync.Once
	shimDir  string
	shimErr  error
}

// Compile-time interface verification
var _ ports.HookExecutor = (*Executor)(nil)

// NewExecutor creates an executor that captures output through channel
func NewExecutor(channel OutputChannel) *Executor {
	if channel == nil {
		channel = PipeChannel{}
	}
	return &Executor{channel: channel}
}

// Channel returns the output channel shared by every hook
func (e *Executor) Channel() OutputChannel {
	return e.channel
}

// Execute runs one hook to completion. Every failure mode is folded into the result.
func (e *Executor) Execute(ctx context.Context, hook domain.HookDescriptor, opts ports.ExecOptions) domain.HookResult {
	start := time.Now()
	logger := logging.Logger.With("hook", hook.Name, "event", hook.Event, "channel", e.channel.Kind())

	env, err := e.environment(opts)
	if err != nil {
		return e.launchFailure(hook, err, start)
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, hook.Path)
	cmd.Dir = opts.Dir
	cmd.Env = env
	cmd.WaitDelay = waitDelay

	logger.Debug("Starting hook", "path", hook.Path, "dir", opts.Dir, "deny_git", opts.DenyGit)
	output, err := e.channel.Capture(cmd, opts.Stdin)

	result := domain.HookResult{
		Name:   hook.Name,
		Output: output,
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			// Terminated by a signal
			result.ExitCode = domain.ExitFailure
		}
	case errors.Is(err, exec.ErrWaitDelay):
		// Exited zero but left a background process holding the output open
		logger.Warn("Hook left output open after exiting", "error", err)
		result.ExitCode = 0
	default:
		return e.launchFailure(hook, err, start)
	}

	switch {
	case opts.Timeout > 0 && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		result.ExitCode = domain.ExitCodeTimeout
		result.Output = appendNote(result.Output, fmt.Sprintf("hook %s timed out after %s", hook.Name, opts.Timeout))
	case ctx.Err() != nil && result.ExitCode != 0:
		result.Output = appendNote(result.Output, fmt.Sprintf("hook %s was interrupted", hook.Name))
	}

	result.Duration = time.Since(start)
	logger.Debug("Hook finished", "exit_code", result.ExitCode, "duration", result.Duration, "bytes", len(result.Output))
	return result
}

// Close removes the git shim directory if one was created
func (e *Executor) Close() error {
	if e.shimDir == "" {
		return nil
	}
	if err := os.RemoveAll(e.shimDir); err != nil {
		return fmt.Errorf("failed to remove git shim: %w", err)
	}
	return nil
}

func (e *Executor) environment(opts ports.ExecOptions) ([]string, error) {
	env := append(os.Environ(), opts.Env...)
	if !opts.DenyGit {
		return env, nil
	}

	e.shimOnce.Do(func() {
		e.shimDir, e.shimErr = writeGitShim()
		if e.shimErr == nil {
			logging.Logger.Debug("Created git shim", "dir", e.shimDir)
		}
	})
	if e.shimErr != nil {
		return nil, e.shimErr
	}
	// exec keeps the last value for duplicate keys
	return append(env, prependPath(e.shimDir)), nil
}

func (e *Executor) launchFailure(hook domain.HookDescriptor, err error, start time.Time) domain.HookResult {
	launchErr := &domain.LaunchError{Hook: hook.Name, Err: err}
	logging.Logger.Error("Failed to launch hook", "hook", hook.Name, "path", hook.Path, "error", err)

	result := launchErr.Result()
	result.Duration = time.Since(start)
	return result
}

func appendNote(output []byte, note string) []byte {
	if len(output) > 0 && output[len(output)-1] != '\n' {
		output = append(output, '\n')
	}
	return append(output, note+"\n"...)
}
