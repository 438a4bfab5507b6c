package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookResult_StatusDerivedFromExitCode(t *testing.T) {
	tests := []struct {
		exitCode int
		expected HookStatus
	}{
		{0, StatusOK},
		{1, StatusFail},
		{2, StatusFail},
		{-1, StatusFail},
		{ExitCodeLaunchFailure, StatusFail},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			result := HookResult{Name: "hook", ExitCode: tt.exitCode}
			assert.Equal(t, tt.expected, result.Status())
			assert.Equal(t, tt.exitCode == 0, result.Passed())
		})
	}
}

func TestRunOutcome_ExitStatus(t *testing.T) {
	tests := []struct {
		name     string
		results  []HookResult
		expected int
	}{
		{"no hooks", nil, ExitSuccess},
		{"all pass", []HookResult{{Name: "a"}, {Name: "b"}}, ExitSuccess},
		{"one fails", []HookResult{{Name: "a"}, {Name: "b", ExitCode: 3}}, ExitFailure},
		{"all fail", []HookResult{{Name: "a", ExitCode: 1}, {Name: "b", ExitCode: 1}}, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := RunOutcome{Results: tt.results}
			assert.Equal(t, tt.expected, outcome.ExitStatus())
			assert.Equal(t, tt.expected == ExitSuccess, outcome.Passed())
		})
	}
}

func TestRunOutcome_SortedDoesNotMutate(t *testing.T) {
	outcome := RunOutcome{Results: []HookResult{
		{Name: "passes2"},
		{Name: "fails", ExitCode: 1},
		{Name: "passes1"},
	}}

	sorted := outcome.Sorted()

	names := make([]string, len(sorted))
	for i, r := range sorted {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"fails", "passes1", "passes2"}, names)
	assert.Equal(t, "passes2", outcome.Results[0].Name)
}

func TestRunOutcome_Failed(t *testing.T) {
	outcome := RunOutcome{Results: []HookResult{
		{Name: "a"},
		{Name: "b", ExitCode: 1},
		{Name: "c", ExitCode: 2},
	}}

	failed := outcome.Failed()

	require.Len(t, failed, 2)
	assert.Equal(t, "b", failed[0].Name)
	assert.Equal(t, "c", failed[1].Name)
}

func TestLaunchError_Result(t *testing.T) {
	cause := errors.New("permission denied")
	launchErr := &LaunchError{Hook: "lint", Err: cause}

	result := launchErr.Result()

	assert.Equal(t, "lint", result.Name)
	assert.Equal(t, ExitCodeLaunchFailure, result.ExitCode)
	assert.Equal(t, StatusFail, result.Status())
	assert.Equal(t, "failed to launch hook lint: permission denied\n", string(result.Output))
	assert.ErrorIs(t, launchErr, cause)
}

func TestDiscoveryError_Unwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &DiscoveryError{Dir: ".quickhook/pre-commit", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), ".quickhook/pre-commit")
}
