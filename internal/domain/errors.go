package domain

import "fmt"

// DiscoveryError is returned when a hook directory exists but cannot be read.
// Unlike a missing directory it fails the whole command.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to read hook directory %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// LaunchError means a hook never produced an exit status of its own
type LaunchError struct {
	Hook string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch hook %s: %v", e.Hook, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Result converts the launch failure into a failing HookResult so sibling hooks are unaffected
func (e *LaunchError) Result() HookResult {
	return HookResult{
		ExitCode: ExitCodeLaunchFailure,
		Name:     e.Hook,
		Output:   []byte(e.Error() + "\n"),
	}
}
