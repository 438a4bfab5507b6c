package config

import (
	"os"
	"path/filepath"
)

// HooksDirName is the directory at the repository root that holds hook executables
const HooksDirName = ".quickhook"

// Event names, one directory per event under HooksDirName
const (
	EventPreCommit         = "pre-commit"
	EventPreCommitMutating = "pre-commit-mutating"
)

// HookDir returns the relative directory for an event, e.g. ".quickhook/pre-commit"
func HookDir(event string) string {
	return filepath.Join(HooksDirName, event)
}

// HookDirPath returns the absolute directory for an event under root
func HookDirPath(root, event string) string {
	return filepath.Join(root, HookDir(event))
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
