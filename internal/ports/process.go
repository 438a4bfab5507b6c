package ports

import (
	"context"
	"time"

	"github.com/dirk/quickhook/internal/domain"
)

// ExecOptions configures a single hook execution
type ExecOptions struct {
	DenyGit bool          // put a git shim on PATH that refuses to run
	Dir     string        // working directory, normally the repository root
	Env     []string      // appended to the inherited environment
	Stdin   string        // fed to the hook's standard input
	Timeout time.Duration // zero means no limit
}

// HookExecutor runs one hook as a child process
type HookExecutor interface {
	// Execute never returns an error: launch failures become failing results
	Execute(ctx context.Context, hook domain.HookDescriptor, opts ExecOptions) domain.HookResult
}
