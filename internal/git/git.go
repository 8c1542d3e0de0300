package git

import (
	"context"
	"strings"

	dailyErrors "github.com/bashhack/dailylog/internal/errors"
	"github.com/bashhack/dailylog/internal/logger"
)

// DefaultRemote is the remote resolved and pushed to when none is configured
const DefaultRemote = "origin"

// nothingToCommit is the marker git prints when a commit would be empty
const nothingToCommit = "nothing to commit"

// Client runs the git operations a daily logging run needs.
// Every call takes the directory it runs in, so no process-wide
// working directory is ever changed.
type Client struct {
	executor CommandExecutor
	logger   logger.Logger
	binary   string
}

// NewClient creates a Client backed by the git binary on PATH
func NewClient(logger logger.Logger) *Client {
	return NewClientWithDeps(NewExecExecutor(), logger)
}

// NewClientWithDeps creates a Client with a custom executor
func NewClientWithDeps(executor CommandExecutor, logger logger.Logger) *Client {
	return &Client{
		executor: executor,
		logger:   logger,
		binary:   "git",
	}
}

// Version returns the output of git --version.
func (c *Client) Version(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	if !res.OK() {
		return "", dailyErrors.NewGitError("--version", nil, res.ExitCode, nil, res.Output())
	}
	return res.Stdout, nil
}

// ConfigGet reads a single configuration value. A missing key is reported
// as an empty string with no error, matching git's exit status 1.
func (c *Client) ConfigGet(ctx context.Context, dir, key string) (string, error) {
	args := []string{"config", "--get", key}
	res, err := c.run(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	switch res.ExitCode {
	case 0:
		return res.Stdout, nil
	case 1:
		return "", nil
	default:
		return "", dailyErrors.NewGitError("config", args[1:], res.ExitCode, nil, res.Output())
	}
}

// TopLevel returns the root of the working tree containing dir.
func (c *Client) TopLevel(ctx context.Context, dir string) (string, error) {
	return c.output(ctx, dir, "rev-parse", "--show-toplevel")
}

// CurrentBranch returns the abbreviated name of HEAD.
func (c *Client) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return c.output(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
}

// Stage adds exactly path to the index.
func (c *Client) Stage(ctx context.Context, root, path string) error {
	args := []string{"add", "--", path}
	res, err := c.run(ctx, root, args...)
	if err != nil {
		return dailyErrors.Wrap(dailyErrors.ErrStageFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	if !res.OK() {
		gitErr := dailyErrors.NewGitError("add", args[1:], res.ExitCode, dailyErrors.ErrStageFailure, res.Output())
		return dailyErrors.Wrap(gitErr, "staging "+path, dailyErrors.KeyPath, path)
	}
	return nil
}

// HasStagedChanges reports whether the index differs from HEAD for path.
func (c *Client) HasStagedChanges(ctx context.Context, root, path string) (bool, error) {
	args := []string{"diff", "--cached", "--quiet", "--", path}
	res, err := c.run(ctx, root, args...)
	if err != nil {
		return false, dailyErrors.Wrap(dailyErrors.ErrCommitFailure, err.Error(), dailyErrors.KeyPath, path)
	}
	switch res.ExitCode {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		gitErr := dailyErrors.NewGitError("diff", args[1:], res.ExitCode, dailyErrors.ErrCommitFailure, res.Output())
		return false, dailyErrors.Wrap(gitErr, "checking staged changes of "+path, dailyErrors.KeyPath, path)
	}
}

// Commit records the index with message. It returns false with no error
// when git reports there is nothing to commit.
func (c *Client) Commit(ctx context.Context, root, message string) (bool, error) {
	args := []string{"commit", "-m", message}
	res, err := c.run(ctx, root, args...)
	if err != nil {
		return false, dailyErrors.Wrap(dailyErrors.ErrCommitFailure, err.Error())
	}
	if res.OK() {
		return true, nil
	}
	if IsNothingToCommit(res) {
		c.logger.Info("git commit reported nothing to commit")
		return false, nil
	}
	gitErr := dailyErrors.NewGitError("commit", args[1:], res.ExitCode, dailyErrors.ErrCommitFailure, res.Output())
	return false, dailyErrors.Wrap(gitErr, "committing log entry")
}

// Push pushes branch to remote.
func (c *Client) Push(ctx context.Context, root, remote, branch string) error {
	args := []string{"push", remote, branch}
	res, err := c.run(ctx, root, args...)
	if err != nil {
		return dailyErrors.Wrap(dailyErrors.ErrPushFailure, err.Error(),
			dailyErrors.KeyRemote, remote, dailyErrors.KeyBranch, branch)
	}
	if !res.OK() {
		gitErr := dailyErrors.NewGitError("push", args[1:], res.ExitCode, dailyErrors.ErrPushFailure, res.Output())
		return dailyErrors.Wrap(gitErr, "pushing "+branch+" to "+remote,
			dailyErrors.KeyRemote, remote, dailyErrors.KeyBranch, branch)
	}
	return nil
}

// IsNothingToCommit reports whether a failed commit only means the index was clean.
func IsNothingToCommit(res Result) bool {
	out := strings.ToLower(res.Stdout + "\n" + res.Stderr)
	return strings.Contains(out, nothingToCommit)
}

// output runs a read-only query and returns its stdout, failing on non-zero exit.
func (c *Client) output(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.run(ctx, dir, args...)
	if err != nil {
		return "", err
	}
	if !res.OK() {
		return "", dailyErrors.NewGitError(args[0], args[1:], res.ExitCode, nil, res.Output())
	}
	return res.Stdout, nil
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (Result, error) {
	res, err := c.executor.Execute(ctx, dir, c.binary, args...)
	c.logger.Debug("git command",
		"args", args,
		"dir", dir,
		"exit_code", res.ExitCode,
		"stderr", res.Stderr,
	)
	return res, err
}
