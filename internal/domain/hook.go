package domain

import (
	"slices"
	"strings"
	"time"
)

// HookStatus is the derived outcome of a single hook run
type HookStatus string

const (
	StatusFail HookStatus = "fail"
	StatusOK   HookStatus = "ok"
)

// Process exit statuses for a whole run
const (
	ExitFailure = 1
	ExitSuccess = 0
)

// ExitCodeLaunchFailure is the synthetic exit code recorded for hooks that could not be started
const ExitCodeLaunchFailure = 127

// ExitCodeTimeout is recorded for hooks killed after exceeding their time budget
const ExitCodeTimeout = 124

// HookDescriptor identifies one discovered hook executable
type HookDescriptor struct {
	Event string // directory the hook was found in, e.g. "pre-commit"
	Name  string // file base name, unique within Event
	Path  string // absolute path to the executable
}

// HookResult is the outcome of running one hook
type HookResult struct {
	Duration time.Duration
	ExitCode int
	Name     string
	Output   []byte // combined stdout and stderr, in the order produced
}

// Status is ok iff the hook exited zero
func (r HookResult) Status() HookStatus {
	if r.ExitCode == 0 {
		return StatusOK
	}
	return StatusFail
}

// Passed reports whether the hook succeeded
func (r HookResult) Passed() bool {
	return r.Status() == StatusOK
}

// RunOutcome aggregates the results of one invocation.
// Results are kept in emission order, which is not necessarily discovery order.
type RunOutcome struct {
	Results []HookResult
}

// ExitStatus is ExitSuccess when every hook passed (or none ran), ExitFailure otherwise
func (o RunOutcome) ExitStatus() int {
	for _, r := range o.Results {
		if !r.Passed() {
			return ExitFailure
		}
	}
	return ExitSuccess
}

// Passed reports whether the whole run succeeded
func (o RunOutcome) Passed() bool {
	return o.ExitStatus() == ExitSuccess
}

// Failed returns the failing results in emission order
func (o RunOutcome) Failed() []HookResult {
	var failed []HookResult
	for _, r := range o.Results {
		if !r.Passed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Sorted returns a copy of the results ordered by hook name
func (o RunOutcome) Sorted() []HookResult {
	sorted := slices.Clone(o.Results)
	slices.SortStableFunc(sorted, func(a, b HookResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}
