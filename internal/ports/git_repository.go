package ports

import (
	"context"
	"errors"
)

// ErrNotGitRepository is returned when the working directory is outside a git work tree
var ErrNotGitRepository = errors.New("not a git repository")

// RepoInspector queries repository information
type RepoInspector interface {
	// TopLevel returns the absolute root of the work tree containing dir
	TopLevel(ctx context.Context, dir string) (string, error)
}

// StagedFilesProvider lists the files that will be part of the next commit
type StagedFilesProvider interface {
	// StagedFiles returns staged paths relative to root that still exist on disk
	StagedFiles(ctx context.Context, root string) ([]string, error)
}

// GitRepository combines the git queries needed before hooks run
type GitRepository interface {
	RepoInspector
	StagedFilesProvider
}
