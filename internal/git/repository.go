package git

import (
	"context"
	"os"
	"path/filepath"

	dailyErrors "github.com/bashhack/dailylog/internal/errors"
)

// RepositoryContext is the read-only snapshot of the repository a run works in.
type RepositoryContext struct {
	// Root is the absolute directory git commands run in.
	Root string

	// RemoteURL is the URL of the configured remote. It may be empty for
	// an explicit repository path.
	RemoteURL string

	// Remote is the name of the remote, e.g. origin.
	Remote string

	// Branch is the current branch. It may be empty for an explicit
	// repository path whose branch could not be read.
	Branch string
}

// ResolveRepository determines the repository to work in.
//
// With an explicit path, the path must exist and be a directory; it is used
// as-is and remote and branch are looked up best-effort. Without one, the
// ambient directory (ambientDir, or the process working directory when empty)
// must be inside a work tree with remote configured.
func (c *Client) ResolveRepository(ctx context.Context, explicit, ambientDir, remote string) (RepositoryContext, error) {
	if remote == "" {
		remote = DefaultRemote
	}

	if explicit != "" {
		return c.resolveExplicit(ctx, explicit, remote)
	}
	return c.resolveAmbient(ctx, ambientDir, remote)
}

func (c *Client) resolveExplicit(ctx context.Context, path, remote string) (RepositoryContext, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return RepositoryContext{}, dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, err.Error(),
			dailyErrors.KeyRepoPath, path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return RepositoryContext{}, dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, "repository path does not exist",
			dailyErrors.KeyRepoPath, abs)
	}
	if !info.IsDir() {
		return RepositoryContext{}, dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, "repository path is not a directory",
			dailyErrors.KeyRepoPath, abs)
	}

	rc := RepositoryContext{Root: abs, Remote: remote}

	if url, err := c.ConfigGet(ctx, abs, "remote."+remote+".url"); err == nil {
		rc.RemoteURL = url
	}
	if branch, err := c.CurrentBranch(ctx, abs); err == nil {
		rc.Branch = branch
	} else {
		c.logger.Warning("Unable to determine current branch of %s: %v", abs, err)
	}

	return rc, nil
}

func (c *Client) resolveAmbient(ctx context.Context, dir, remote string) (RepositoryContext, error) {
	root, err := c.TopLevel(ctx, dir)
	if err != nil {
		return RepositoryContext{}, dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, "not in a git repository",
			dailyErrors.KeyRepoPath, dir)
	}

	url, err := c.ConfigGet(ctx, root, "remote."+remote+".url")
	if err != nil || url == "" {
		return RepositoryContext{}, dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, "no remote configured",
			dailyErrors.KeyRepoPath, root, dailyErrors.KeyRemote, remote)
	}

	branch, err := c.CurrentBranch(ctx, root)
	if err != nil {
		return RepositoryContext{}, dailyErrors.Wrap(dailyErrors.ErrRepositoryNotFound, "unable to determine current branch",
			dailyErrors.KeyRepoPath, root)
	}

	return RepositoryContext{
		Root:      root,
		RemoteURL: url,
		Remote:    remote,
		Branch:    branch,
	}, nil
}
