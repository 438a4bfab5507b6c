package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dirk/quickhook/internal/domain"
	"github.com/dirk/quickhook/internal/ports"
	portsmocks "github.com/dirk/quickhook/internal/ports/mocks"
	"github.com/dirk/quickhook/internal/theme"
	"github.com/dirk/quickhook/internal/tracing"
)

const testRoot = "/repo"

type preCommitFixture struct {
	executor *portsmocks.MockHookExecutor
	finder   *portsmocks.MockHookFinder
	gitRepo  *portsmocks.MockGitRepository
	out      *bytes.Buffer
	service  *PreCommitService
}

func newPreCommitFixture(t *testing.T, tracer *tracing.Tracer) *preCommitFixture {
	f := &preCommitFixture{
		executor: portsmocks.NewMockHookExecutor(t),
		finder:   portsmocks.NewMockHookFinder(t),
		gitRepo:  portsmocks.NewMockGitRepository(t),
		out:      &bytes.Buffer{},
	}
	renderer := NewRenderer(f.out, theme.NewPalette(false), false)
	f.service = NewPreCommitService(f.gitRepo, f.finder, f.executor, renderer, tracer)
	f.gitRepo.EXPECT().TopLevel(mock.Anything, "/work").Return(testRoot, nil)
	return f
}

func (f *preCommitFixture) hooks(event string, names ...string) []domain.HookDescriptor {
	hooks := make([]domain.HookDescriptor, len(names))
	for i, name := range names {
		hooks[i] = domain.HookDescriptor{Event: event, Name: name, Path: testRoot + "/.quickhook/" + event + "/" + name}
	}
	f.finder.EXPECT().Find(testRoot, event).Return(hooks, nil)
	return hooks
}

func (f *preCommitFixture) reportLines() []string {
	trimmed := strings.TrimSuffix(f.out.String(), "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func TestPreCommitRun_AllPass(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return([]string{"a.go", "b.go"}, nil)
	f.hooks("pre-commit", "passes1", "passes2")
	f.hooks("pre-commit-mutating")

	expectedOpts := ports.ExecOptions{DenyGit: true, Dir: testRoot, Stdin: "a.go\nb.go"}
	f.executor.EXPECT().Execute(mock.Anything, mock.Anything, expectedOpts).
		RunAndReturn(func(_ context.Context, hook domain.HookDescriptor, _ ports.ExecOptions) domain.HookResult {
			return domain.HookResult{Name: hook.Name, Output: []byte("passed\n")}
		})

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	require.NoError(t, err)
	assert.Equal(t, domain.ExitSuccess, outcome.ExitStatus())
	lines := f.reportLines()
	sort.Strings(lines)
	assert.Equal(t, []string{"passes1: ok", "passes2: ok"}, lines)
}

func TestPreCommitRun_FailingHook(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return([]string{"a.go"}, nil)
	f.hooks("pre-commit", "fails")
	// Mutating hooks are discovered but never executed after a failure
	f.hooks("pre-commit-mutating", "format")

	f.executor.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(h domain.HookDescriptor) bool { return h.Name == "fails" }), mock.Anything).
		Return(domain.HookResult{Name: "fails", ExitCode: 1, Output: []byte("failed\n")})

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	require.NoError(t, err)
	assert.NotEqual(t, domain.ExitSuccess, outcome.ExitStatus())
	assert.Equal(t, []string{"fails: fail", "failed"}, f.reportLines())
	assert.Len(t, outcome.Results, 1)
}

func TestPreCommitRun_MutatingHooksRunSequentiallyWithGit(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return([]string{"a.go"}, nil)
	parallel := f.hooks("pre-commit", "lint")
	mutating := f.hooks("pre-commit-mutating", "format", "restage")

	var order []string
	f.executor.EXPECT().Execute(mock.Anything, parallel[0], ports.ExecOptions{DenyGit: true, Dir: testRoot, Stdin: "a.go"}).
		Return(domain.HookResult{Name: "lint"})
	for _, hook := range mutating {
		f.executor.EXPECT().Execute(mock.Anything, hook, ports.ExecOptions{Dir: testRoot, Stdin: "a.go"}).
			Run(func(_ context.Context, h domain.HookDescriptor, _ ports.ExecOptions) { order = append(order, h.Name) }).
			Return(domain.HookResult{Name: hook.Name})
	}

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	require.NoError(t, err)
	assert.True(t, outcome.Passed())
	assert.Equal(t, []string{"format", "restage"}, order)
	assert.Equal(t, []string{"lint: ok", "format: ok", "restage: ok"}, f.reportLines())
}

func TestPreCommitRun_FailingMutatingHook(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return(nil, nil)
	f.hooks("pre-commit")
	f.hooks("pre-commit-mutating", "format")

	f.executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.HookResult{Name: "format", ExitCode: 1, Output: []byte("could not format\n")})

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	require.NoError(t, err)
	assert.Equal(t, domain.ExitFailure, outcome.ExitStatus())
	assert.Equal(t, []string{"format: fail", "could not format"}, f.reportLines())
}

func TestPreCommitRun_NoHooks(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return([]string{"other-example.txt"}, nil)
	f.hooks("pre-commit")
	f.hooks("pre-commit-mutating")

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	require.NoError(t, err)
	assert.Equal(t, domain.ExitSuccess, outcome.ExitStatus())
	assert.Empty(t, outcome.Results)
	assert.Empty(t, f.out.String())
}

func TestPreCommitRun_FilesOverrideSkipsGit(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.hooks("pre-commit", "lint")
	f.hooks("pre-commit-mutating")

	f.executor.EXPECT().Execute(mock.Anything, mock.Anything, ports.ExecOptions{
		DenyGit: true,
		Dir:     testRoot,
		Env:     []string{"NO_COLOR=1"},
		Stdin:   "x.go\ny.go",
		Timeout: time.Minute,
	}).Return(domain.HookResult{Name: "lint"})

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{
		Dir:     "/work",
		Env:     []string{"NO_COLOR=1"},
		Files:   []string{"x.go", "y.go"},
		Timeout: time.Minute,
	})

	require.NoError(t, err)
	assert.True(t, outcome.Passed())
}

func TestPreCommitRun_NotAGitRepository(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().TopLevel(mock.Anything, "/tmp").
		Return("", fmt.Errorf("%w: /tmp", ports.ErrNotGitRepository))
	renderer := NewRenderer(&bytes.Buffer{}, theme.NewPalette(false), false)
	service := NewPreCommitService(gitRepo, portsmocks.NewMockHookFinder(t), portsmocks.NewMockHookExecutor(t), renderer, nil)

	_, err := service.Run(context.Background(), PreCommitOptions{Dir: "/tmp"})

	assert.ErrorIs(t, err, ports.ErrNotGitRepository)
}

func TestPreCommitRun_StagedFilesError(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return(nil, errors.New("index locked"))

	_, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	assert.EqualError(t, err, "failed to list staged files: index locked")
}

func TestPreCommitRun_DiscoveryError(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return(nil, nil)
	f.finder.EXPECT().Find(testRoot, "pre-commit").
		Return(nil, &domain.DiscoveryError{Dir: ".quickhook/pre-commit", Err: os.ErrPermission})

	_, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})

	var discoveryErr *domain.DiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestPreCommitRun_DiscoveryOrder(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return(nil, nil)
	f.hooks("pre-commit", "first", "second", "third")
	f.hooks("pre-commit-mutating")

	delays := map[string]time.Duration{"first": 60 * time.Millisecond, "second": 30 * time.Millisecond, "third": 0}
	f.executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hook domain.HookDescriptor, _ ports.ExecOptions) domain.HookResult {
			time.Sleep(delays[hook.Name])
			return domain.HookResult{Name: hook.Name}
		})

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work", Order: OrderDiscovery})

	require.NoError(t, err)
	assert.Equal(t, []string{"first: ok", "second: ok", "third: ok"}, f.reportLines())
	assert.Equal(t, "first", outcome.Results[0].Name)
}

func TestPreCommitRun_RespectsParallelism(t *testing.T) {
	f := newPreCommitFixture(t, nil)
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return(nil, nil)
	f.hooks("pre-commit", "h1", "h2", "h3", "h4", "h5", "h6")
	f.hooks("pre-commit-mutating")

	var running, peak atomic.Int32
	f.executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hook domain.HookDescriptor, _ ports.ExecOptions) domain.HookResult {
			current := running.Add(1)
			for {
				seen := peak.Load()
				if current <= seen || peak.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			running.Add(-1)
			return domain.HookResult{Name: hook.Name}
		})

	outcome, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work", Parallelism: 2})

	require.NoError(t, err)
	assert.Len(t, outcome.Results, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestPreCommitRun_Tracing(t *testing.T) {
	var traceOut bytes.Buffer
	f := newPreCommitFixture(t, tracing.New(&traceOut))
	f.gitRepo.EXPECT().StagedFiles(mock.Anything, testRoot).Return(nil, nil)
	f.hooks("pre-commit", "lint")
	f.hooks("pre-commit-mutating")
	f.executor.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).Return(domain.HookResult{Name: "lint"})

	_, err := f.service.Run(context.Background(), PreCommitOptions{Dir: "/work"})
	require.NoError(t, err)
	require.NoError(t, f.service.tracer.Flush())

	trace := traceOut.String()
	assert.Contains(t, trace, "Traced 4 span(s):\n")
	assert.Contains(t, trace, "git rev-parse ")
	assert.Contains(t, trace, "git diff ")
	assert.Contains(t, trace, "discover hooks ")
	assert.Contains(t, trace, "hook pre-commit lint ")
}
