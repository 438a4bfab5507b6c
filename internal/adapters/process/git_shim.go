package process

import (
	"fmt"
	"os"
	"path/filepath"
)

const gitShimScript = `#!/bin/sh
echo "git is not allowed in parallel hooks (git $*)"
exit 1
`

// writeGitShim creates a temporary directory holding a git executable that always fails.
// Prepending it to PATH keeps concurrently running hooks away from the index.
func writeGitShim() (string, error) {
	dir, err := os.MkdirTemp("", "quickhook-git-shim-")
	if err != nil {
		return "", fmt.Errorf("failed to create git shim directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "git"), []byte(gitShimScript), 0755); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("failed to write git shim: %w", err)
	}
	return dir, nil
}

// prependPath returns a PATH entry with dir searched first
func prependPath(dir string) string {
	current := os.Getenv("PATH")
	if current == "" {
		return "PATH=" + dir
	}
	return "PATH=" + dir + string(os.PathListSeparator) + current
}
