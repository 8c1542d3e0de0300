package workflow

import (
	"context"
	"fmt"
	"io"
	"time"

	dailyErrors "github.com/bashhack/dailylog/internal/errors"
	"github.com/bashhack/dailylog/internal/git"
	"github.com/bashhack/dailylog/internal/logger"
)

// fakeGit records the calls a run makes and fails the steps it is told to
type fakeGit struct {
	root   string
	branch string

	identityErr error
	resolveErr  error
	stageErr    error
	commitErr   error
	pushErr     error

	// nothingStaged makes HasStagedChanges report a clean index
	nothingStaged bool
	// nothingToCommit makes Commit report git's "nothing to commit"
	nothingToCommit bool

	calls    []string
	messages []string
	staged   []string
}

func (f *fakeGit) CheckIdentity(_ context.Context, dir string) (git.Identity, error) {
	f.calls = append(f.calls, "identity "+dir)
	if f.identityErr != nil {
		return git.Identity{}, f.identityErr
	}
	return git.Identity{Name: "Test User", Email: "test@example.com"}, nil
}

func (f *fakeGit) ResolveRepository(_ context.Context, explicit, _, remote string) (git.RepositoryContext, error) {
	f.calls = append(f.calls, "resolve")
	if f.resolveErr != nil {
		return git.RepositoryContext{}, f.resolveErr
	}
	root := f.root
	if explicit != "" {
		root = explicit
	}
	if remote == "" {
		remote = git.DefaultRemote
	}
	return git.RepositoryContext{Root: root, Remote: remote, Branch: f.branch, RemoteURL: "git@example.com:me/log.git"}, nil
}

func (f *fakeGit) CurrentBranch(_ context.Context, _ string) (string, error) {
	f.calls = append(f.calls, "branch")
	return "main", nil
}

func (f *fakeGit) Stage(_ context.Context, _, path string) error {
	f.calls = append(f.calls, "stage")
	if f.stageErr != nil {
		return f.stageErr
	}
	f.staged = append(f.staged, path)
	return nil
}

func (f *fakeGit) HasStagedChanges(_ context.Context, _, _ string) (bool, error) {
	f.calls = append(f.calls, "diff")
	return !f.nothingStaged, nil
}

func (f *fakeGit) Commit(_ context.Context, _, message string) (bool, error) {
	f.calls = append(f.calls, "commit")
	if f.commitErr != nil {
		return false, f.commitErr
	}
	if f.nothingToCommit {
		return false, nil
	}
	f.messages = append(f.messages, message)
	return true, nil
}

func (f *fakeGit) Push(_ context.Context, _, remote, branch string) error {
	f.calls = append(f.calls, fmt.Sprintf("push %s %s", remote, branch))
	return f.pushErr
}

func (f *fakeGit) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func quietLogger() logger.Logger {
	return logger.NewWithOutput(logger.Options{Quiet: true, Stdout: io.Discard, Stderr: io.Discard})
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// steppingClock advances by step on every call after the first
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	current := start.Add(-step)
	return func() time.Time {
		current = current.Add(step)
		return current
	}
}

func noSleep(_ context.Context, _ time.Duration) error { return nil }

var errRejected = dailyErrors.Wrap(dailyErrors.ErrPushFailure, "rejected")
