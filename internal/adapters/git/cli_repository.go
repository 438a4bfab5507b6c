package git

import (
	"context"

	"github.com/dirk/quickhook/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// TopLevel implements RepoInspector.TopLevel
func (r *CLIRepository) TopLevel(ctx context.Context, dir string) (string, error) {
	return topLevel(ctx, dir)
}

// StagedFiles implements StagedFilesProvider.StagedFiles
func (r *CLIRepository) StagedFiles(ctx context.Context, root string) ([]string, error) {
	return stagedFiles(ctx, root)
}
