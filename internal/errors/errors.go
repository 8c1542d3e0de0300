package errors

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors that can be used with errors.Is() for error type checking.
// Each one names a step of the daily logging run that can abort it.
var (
	// ErrConfigurationMissing indicates git is missing or has no identity configured
	ErrConfigurationMissing = goerr.New("git identity is not configured")

	// ErrRepositoryNotFound indicates no usable repository (or remote) was found
	ErrRepositoryNotFound = goerr.New("git repository not found")

	// ErrStageFailure indicates the log file could not be staged
	ErrStageFailure = goerr.New("failed to stage log file")

	// ErrCommitFailure indicates the commit step failed for a reason other than "nothing to commit"
	ErrCommitFailure = goerr.New("failed to commit log file")

	// ErrPushFailure indicates the push step failed; the local commit is kept
	ErrPushFailure = goerr.New("failed to push changes")

	// ErrLogFileFailure indicates the log file could not be read or written
	ErrLogFileFailure = goerr.New("log file operation failed")

	// ErrInvalidConfiguration indicates an invalid or conflicting user configuration
	ErrInvalidConfiguration = goerr.New("invalid configuration")
)

// Context keys attached to wrapped errors with goerr.V
const (
	KeyPath      = "path"
	KeyRepoPath  = "repo_path"
	KeyDailyKey  = "daily_key"
	KeyBranch    = "branch"
	KeyRemote    = "remote"
	KeyConfigKey = "config_key"
)

// Wrap wraps an error with a message and optional key/value pairs.
// A nil err yields nil.
func Wrap(err error, message string, kv ...any) error {
	if err == nil {
		return nil
	}
	return goerr.Wrap(err, message, values(kv)...)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return goerr.Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether target is in err's chain.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Values returns the goerr context values collected along err's chain.
func Values(err error) map[string]any {
	var ge *goerr.Error
	if !errors.As(err, &ge) {
		return nil
	}
	return ge.Values()
}

func values(kv []any) []goerr.Option {
	opts := make([]goerr.Option, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		opts = append(opts, goerr.V(key, kv[i+1]))
	}
	return opts
}

// GitError represents an error that occurred during a Git operation.
// It captures the command details, exit code, underlying error, and command output.
type GitError struct {
	Operation string
	Args      []string
	ExitCode  int
	Err       error
	Output    string
}

// Error implements the error interface with a detailed, user-friendly error message.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if e.ExitCode != 0 {
		msg = fmt.Sprintf("%s (exit %d)", msg, e.ExitCode)
	}
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a new GitError with the given parameters.
func NewGitError(operation string, args []string, exitCode int, err error, output string) *GitError {
	return &GitError{
		Operation: operation,
		Args:      args,
		ExitCode:  exitCode,
		Err:       err,
		Output:    output,
	}
}

// ConfigError represents an error in the application configuration.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     any
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value any, err error) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}
