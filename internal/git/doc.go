// Package git provides the Git operations a daily logging run needs.
//
// All operations shell out to the git binary through a CommandExecutor and
// take the directory to run in explicitly, so no process-wide working
// directory is changed.
//
// # Core Components
//
// - Client: identity preflight, repository resolution, stage, commit and push
// - CommandExecutor: Interface for executing external commands
// - RepositoryContext: the resolved root, remote and branch of a run
//
// # Usage
//
//	client := git.NewClient(log)
//
//	if _, err := client.CheckIdentity(ctx, dir); err != nil {
//	    // Show the PreflightError hint
//	}
//
//	repo, err := client.ResolveRepository(ctx, "", dir, git.DefaultRemote)
//	if err != nil {
//	    // Handle error
//	}
//
//	if err := client.Stage(ctx, repo.Root, "learning_log.md"); err != nil {
//	    // Handle error
//	}
//
//	committed, err := client.Commit(ctx, repo.Root, "docs: Update daily learning log for 2024-01-01")
//
// # Error Handling
//
// A command that exits non-zero is reported through Result, not as a Go
// error. Client methods translate those results into GitError values
// wrapping the sentinels from the errors package. A commit that git rejects
// with "nothing to commit" is not an error.
//
// # Implementation Notes
//
// The package uses the command-line Git executable rather than a Go Git library.
// This ensures compatibility with all Git features and repository configurations,
// including the user's own identity and credential helpers.
package git
