package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	dailyErrors "github.com/bashhack/dailylog/internal/errors"
)

// Result is what a finished external command reports back:
// its exit code and trimmed standard output and standard error.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the command exited with status zero.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Output returns stderr when it is non-empty, otherwise stdout.
// Git writes most diagnostics to stderr but some (like "nothing to commit") to stdout.
func (r Result) Output() string {
	if r.Stderr != "" {
		return r.Stderr
	}
	return r.Stdout
}

// CommandExecutor defines an interface for executing commands
type CommandExecutor interface {
	// Execute runs name with args in dir and returns its Result.
	// A non-zero exit is reported through Result.ExitCode, not as an error;
	// the error is reserved for commands that could not be run at all.
	Execute(ctx context.Context, dir string, name string, args ...string) (Result, error)
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if dailyErrors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	res.ExitCode = -1
	if ctx.Err() != nil {
		err = ctx.Err()
	}
	return res, dailyErrors.NewGitError(operation(name, args), args, -1, err, res.Stderr)
}

// operation names a command by its subcommand, e.g. "commit" for git commit
func operation(name string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return name
}
