package git

import (
	"context"

	dailyErrors "github.com/bashhack/dailylog/internal/errors"
)

// Remediation hints shown when the identity preflight fails
const (
	HintInstallGit = "Install git and make sure it is on your PATH"
	HintUserName   = "Run: git config --global user.name 'Your Name'"
	HintUserEmail  = "Run: git config --global user.email 'your@email.com'"
)

// Identity is the author identity git will record on commits.
type Identity struct {
	Name  string
	Email string `masq:"secret"`
}

// PreflightError is returned when git is unusable for committing.
// Hint names the command that fixes it.
type PreflightError struct {
	Reason string
	Hint   string
	Err    error
}

func (e *PreflightError) Error() string {
	return e.Reason
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

func newPreflightError(reason, hint string, cause error) error {
	var err error = dailyErrors.ErrConfigurationMissing
	if cause != nil {
		err = dailyErrors.Wrap(dailyErrors.ErrConfigurationMissing, cause.Error())
	}
	return &PreflightError{Reason: reason, Hint: hint, Err: err}
}

// CheckIdentity verifies git is installed and that user.name and
// user.email are set, as seen from dir. It has no side effects.
func (c *Client) CheckIdentity(ctx context.Context, dir string) (Identity, error) {
	version, err := c.Version(ctx)
	if err != nil {
		return Identity{}, newPreflightError("git is not installed or not in PATH", HintInstallGit, err)
	}
	c.logger.Info("Found %s", version)

	name, err := c.ConfigGet(ctx, dir, "user.name")
	if err != nil || name == "" {
		return Identity{}, newPreflightError("git username not configured", HintUserName, err)
	}

	email, err := c.ConfigGet(ctx, dir, "user.email")
	if err != nil || email == "" {
		return Identity{}, newPreflightError("git email not configured", HintUserEmail, err)
	}

	id := Identity{Name: name, Email: email}
	c.logger.Debug("git identity resolved", "identity", id)
	return id, nil
}
