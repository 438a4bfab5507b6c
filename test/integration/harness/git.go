package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestRepo is a git repository with example.txt staged and nothing committed.
type TestRepo struct {
	Path string
	env  *TestEnvironment
	tb   testing.TB
}

// NewTestRepo creates the repository inside a fresh temp directory.
func NewTestRepo(tb testing.TB, env *TestEnvironment) *TestRepo {
	tb.Helper()

	r := &TestRepo{
		Path: tb.TempDir(),
		env:  env,
		tb:   tb,
	}
	r.Git("init", "--quiet", ".")
	r.Git("config", "--local", "user.name", "Test User")
	r.Git("config", "--local", "user.email", "test@example.com")
	r.WriteFile("example.txt", "Changed!", 0644)
	r.Git("add", "example.txt")
	return r
}

// Git runs a git command in the repository and fails the test on error.
func (r *TestRepo) Git(args ...string) {
	r.tb.Helper()
	runGitCommand(r.tb, r.Path, r.env.Environ(), args...)
}

// Commit commits whatever is staged without running hooks.
func (r *TestRepo) Commit(message string) {
	r.tb.Helper()
	r.Git("commit", "--message", message, "--quiet", "--no-verify")
}

// WriteFile writes a file relative to the repository root, creating parent directories.
func (r *TestRepo) WriteFile(relPath, content string, mode os.FileMode) string {
	r.tb.Helper()

	path := filepath.Join(r.Path, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.tb.Fatalf("Failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		r.tb.Fatalf("Failed to write %s: %v", relPath, err)
	}
	// WriteFile leaves the mode of existing files alone and is subject to umask
	if err := os.Chmod(path, mode); err != nil {
		r.tb.Fatalf("Failed to chmod %s: %v", relPath, err)
	}
	return path
}

// WriteHook writes an executable hook script for event (e.g. "pre-commit").
func (r *TestRepo) WriteHook(event, name, script string) string {
	r.tb.Helper()
	return r.WriteFile(filepath.Join(".quickhook", event, name), script, 0755)
}

// MkdirHooks creates an empty hook directory for event.
func (r *TestRepo) MkdirHooks(event string) string {
	r.tb.Helper()

	dir := filepath.Join(r.Path, ".quickhook", event)
	if err := os.MkdirAll(dir, 0755); err != nil {
		r.tb.Fatalf("Failed to create hook directory: %v", err)
	}
	return dir
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, env []string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(env,
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
