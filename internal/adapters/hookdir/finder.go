package hookdir

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dirk/quickhook/internal/config"
	"github.com/dirk/quickhook/internal/domain"
	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/ports"
)

// Finder implements ports.HookFinder by scanning .quickhook/<event> directories
type Finder struct {
	warnings io.Writer
}

// Compile-time interface verification
var _ ports.HookFinder = (*Finder)(nil)

// NewFinder creates a Finder that reports skipped files to warnings
func NewFinder(warnings io.Writer) *Finder {
	if warnings == nil {
		warnings = io.Discard
	}
	return &Finder{warnings: warnings}
}

// Find returns every executable regular file in the event directory, in listing order.
// Symlinks are followed; sub-directories and non-executable files are skipped.
func (f *Finder) Find(root, event string) ([]domain.HookDescriptor, error) {
	relDir := config.HookDir(event)
	dir := config.HookDirPath(root, event)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Logger.Debug("No hook directory", "dir", relDir)
			return []domain.HookDescriptor{}, nil
		}
		logging.Logger.Error("Failed to read hook directory", "dir", relDir, "error", err)
		return nil, &domain.DiscoveryError{Dir: relDir, Err: err}
	}

	hooks := make([]domain.HookDescriptor, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err != nil {
			// Dangling symlink or a file removed mid-scan
			logging.Logger.Warn("Skipping unreadable hook entry", "hook", name, "error", err)
			fmt.Fprintf(f.warnings, "Warning: Unreadable file found in %v: %v\n", relDir, name)
			continue
		}
		if info.IsDir() {
			continue
		}
		if info.Mode()&0111 == 0 {
			logging.Logger.Debug("Skipping non-executable hook", "hook", name, "mode", info.Mode().String())
			fmt.Fprintf(f.warnings, "Warning: Non-executable file found in %v: %v\n", relDir, name)
			continue
		}

		hooks = append(hooks, domain.HookDescriptor{
			Event: event,
			Name:  name,
			Path:  path,
		})
	}

	logging.Logger.Debug("Discovered hooks", "event", event, "count", len(hooks))
	return hooks, nil
}
