package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/ports"
)

// topLevel returns the root of the work tree containing dir
func topLevel(ctx context.Context, dir string) (string, error) {
	output, err := runGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logging.Logger.Debug("Not inside a git work tree", "dir", dir, "stderr", string(exitErr.Stderr))
			return "", fmt.Errorf("%w: %s", ports.ErrNotGitRepository, dir)
		}
		return "", fmt.Errorf("failed to run git: %w", err)
	}

	root := strings.TrimSpace(output)
	logging.Logger.Debug("Resolved repository root", "root", root)
	return root, nil
}

// stagedFiles lists files in the index that differ from HEAD.
// Paths that no longer exist on disk (staged deletions) are dropped.
func stagedFiles(ctx context.Context, root string) ([]string, error) {
	output, err := runGit(ctx, root, "diff", "--name-only", "--cached", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}

	names := lo.Compact(strings.Split(output, "\x00"))
	files := lo.Filter(lo.Uniq(names), func(name string, _ int) bool {
		return isFile(root, name)
	})

	logging.Logger.Debug("Staged files",
		"staged", len(names),
		"existing", len(files))

	return files, nil
}

// runGit executes git in dir and returns its standard output
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logging.Logger.Debug("git command failed",
				"args", args,
				"exit_code", exitErr.ExitCode(),
				"stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(output), nil
}

// isFile reports whether name (relative to root) exists and is not a directory
func isFile(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to stat staged file", "file", name, "error", err)
		}
		return false
	}
	return !info.IsDir()
}
