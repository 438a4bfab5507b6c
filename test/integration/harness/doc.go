// Package harness provides utilities for integration testing the quickhook CLI.
// It handles binary compilation, git repository setup, environment isolation,
// and command execution through pipes or a pseudo-terminal.
//
// Environment variables managed:
//   - QUICKHOOK_*: Removed so the developer's settings never leak into tests
//   - NO_COLOR: Removed so color detection is decided by the test
//   - GIT_DIR, GIT_INDEX_FILE, GIT_WORK_TREE: Removed so tests work when run from inside a git hook
//   - HOME: Isolated per test (temp directory), which also isolates global git config
package harness
