package services

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dirk/quickhook/internal/config"
	"github.com/dirk/quickhook/internal/domain"
	"github.com/dirk/quickhook/internal/logging"
	"github.com/dirk/quickhook/internal/ports"
	"github.com/dirk/quickhook/internal/tracing"
)

// PreCommitOptions configures one pre-commit run
type PreCommitOptions struct {
	Dir         string        // directory to resolve the repository root from
	Env         []string      // extra environment for every hook
	Files       []string      // overrides the staged files when non-nil
	Order       RenderOrder   // defaults to OrderCompletion
	Parallelism int           // defaults to runtime.NumCPU()
	Timeout     time.Duration // per hook, zero means none
}

// PreCommitService runs the pre-commit hooks of a repository
type PreCommitService struct {
	executor ports.HookExecutor
	finder   ports.HookFinder
	gitRepo  ports.GitRepository
	renderer *Renderer
	tracer   *tracing.Tracer
}

// NewPreCommitService creates a new PreCommitService. tracer may be nil.
func NewPreCommitService(
	gitRepo ports.GitRepository,
	finder ports.HookFinder,
	executor ports.HookExecutor,
	renderer *Renderer,
	tracer *tracing.Tracer,
) *PreCommitService {
	return &PreCommitService{
		executor: executor,
		finder:   finder,
		gitRepo:  gitRepo,
		renderer: renderer,
		tracer:   tracer,
	}
}

type indexedResult struct {
	index  int
	result domain.HookResult
}

// Run executes pre-commit hooks concurrently, then pre-commit-mutating hooks one at a time
// if every concurrent hook passed. Hook failures are reported through the outcome;
// the error is reserved for problems that prevent hooks from running at all.
func (s *PreCommitService) Run(ctx context.Context, opts PreCommitOptions) (domain.RunOutcome, error) {
	span := s.tracer.Start("git rev-parse")
	root, err := s.gitRepo.TopLevel(ctx, opts.Dir)
	span.End()
	if err != nil {
		return domain.RunOutcome{}, fmt.Errorf("failed to resolve repository root: %w", err)
	}

	files, err := s.stagedFiles(ctx, root, opts.Files)
	if err != nil {
		return domain.RunOutcome{}, err
	}

	span = s.tracer.Start("discover hooks")
	parallelHooks, err := s.finder.Find(root, config.EventPreCommit)
	if err != nil {
		span.End()
		return domain.RunOutcome{}, err
	}
	mutatingHooks, err := s.finder.Find(root, config.EventPreCommitMutating)
	span.End()
	if err != nil {
		return domain.RunOutcome{}, err
	}

	logging.Logger.Info("Running pre-commit hooks",
		"root", root,
		"files", len(files),
		"parallel_hooks", len(parallelHooks),
		"mutating_hooks", len(mutatingHooks))

	execOpts := ports.ExecOptions{
		Dir:     root,
		Env:     opts.Env,
		Stdin:   strings.Join(files, "\n"),
		Timeout: opts.Timeout,
	}

	parallelOpts := execOpts
	parallelOpts.DenyGit = true
	parallelResults, err := s.runParallel(ctx, parallelHooks, parallelOpts, opts)
	if err != nil {
		return Aggregate(parallelResults), err
	}

	outcome := Aggregate(parallelResults)
	if !outcome.Passed() {
		if len(mutatingHooks) > 0 {
			logging.Logger.Info("Skipping mutating hooks after failure", "skipped", len(mutatingHooks))
		}
		return outcome, nil
	}

	mutatingResults, err := s.runSequential(ctx, mutatingHooks, execOpts)
	return Aggregate(parallelResults, mutatingResults), err
}

func (s *PreCommitService) stagedFiles(ctx context.Context, root string, override []string) ([]string, error) {
	if override != nil {
		logging.Logger.Debug("Using supplied file list", "files", len(override))
		return override, nil
	}

	span := s.tracer.Start("git diff")
	defer span.End()
	files, err := s.gitRepo.StagedFiles(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return files, nil
}

// runParallel fans hooks out over a bounded errgroup. A producer goroutine submits
// work so this goroutine can render results while other hooks are still running.
func (s *PreCommitService) runParallel(
	ctx context.Context,
	hooks []domain.HookDescriptor,
	execOpts ports.ExecOptions,
	opts PreCommitOptions,
) ([]domain.HookResult, error) {
	if len(hooks) == 0 {
		return nil, nil
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	completed := make(chan indexedResult, len(hooks))
	var g errgroup.Group
	g.SetLimit(parallelism)

	go func() {
		for i, hook := range hooks {
			g.Go(func() error {
				completed <- indexedResult{index: i, result: s.execute(ctx, hook, execOpts)}
				return nil
			})
		}
		_ = g.Wait()
		close(completed)
	}()

	byDiscovery := make([]domain.HookResult, len(hooks))
	emitted := make([]domain.HookResult, 0, len(hooks))
	var renderErr error

	for c := range completed {
		byDiscovery[c.index] = c.result
		if opts.Order == OrderDiscovery {
			continue
		}
		emitted = append(emitted, c.result)
		if err := s.renderer.Render(c.result); err != nil && renderErr == nil {
			renderErr = err
		}
	}

	if opts.Order == OrderDiscovery {
		emitted = byDiscovery
		for _, result := range byDiscovery {
			if err := s.renderer.Render(result); err != nil && renderErr == nil {
				renderErr = err
			}
		}
	}

	return emitted, renderErr
}

// runSequential runs hooks that may touch the index, one after another
func (s *PreCommitService) runSequential(
	ctx context.Context,
	hooks []domain.HookDescriptor,
	execOpts ports.ExecOptions,
) ([]domain.HookResult, error) {
	results := make([]domain.HookResult, 0, len(hooks))
	for _, hook := range hooks {
		result := s.execute(ctx, hook, execOpts)
		results = append(results, result)
		if err := s.renderer.Render(result); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (s *PreCommitService) execute(ctx context.Context, hook domain.HookDescriptor, execOpts ports.ExecOptions) domain.HookResult {
	span := s.tracer.Start(fmt.Sprintf("hook %s %s", hook.Event, hook.Name))
	defer span.End()

	result := s.executor.Execute(ctx, hook, execOpts)
	logging.Logger.Debug("Hook completed",
		"hook", hook.Name,
		"event", hook.Event,
		"status", string(result.Status()),
		"duration", result.Duration)
	return result
}
