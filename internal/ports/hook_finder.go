package ports

import "github.com/dirk/quickhook/internal/domain"

// HookFinder discovers hook executables for an event
type HookFinder interface {
	// Find returns the executable hooks registered for event under root.
	// A missing event directory yields no hooks and no error.
	Find(root, event string) ([]domain.HookDescriptor, error)
}
