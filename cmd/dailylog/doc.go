// Package main implements dailylog, a once-a-day learning log committer
//
// dailylog appends a timestamped entry to a log file in a git repository,
// then stages, commits and (optionally) pushes the change. It is meant to be
// run from a scheduler such as cron or a CI workflow. A run is idempotent per
// calendar date: when today's date already appears in the log file, nothing
// is written and nothing is committed.
//
// # Basic Usage
//
//	dailylog                          # Log today in the current repository and push
//	dailylog --no-push                # Commit locally, let the CI job push
//	dailylog --repo-path ~/notes      # Use another repository
//	dailylog --multi --count 3        # Write three Markdown entries, one commit each
//	dailylog --init                   # Also create README.md and .gitignore when missing
//
// # Configuration Options
//
// Every flag can also be set through an environment variable or the TOML
// config file (.dailylog.toml in the repository, or --config):
//
//	--repo-path   Repository to use (env: DAILYLOG_REPO_PATH)
//	--log-file    Log file name (env: DAILYLOG_LOG_FILE, default: learning_log.md)
//	--remote      Remote to push to (env: DAILYLOG_REMOTE, default: origin)
//	--init        Scaffold README.md and .gitignore (env: DAILYLOG_INIT)
//	--multi       Multi-entry mode (env: DAILYLOG_MULTI)
//	--count       Entries in multi mode (env: DAILYLOG_COUNT, default: 7)
//	--delay       Pause between multi-mode commits (env: DAILYLOG_DELAY, default: 2s)
//	--no-push     Skip the push (env: DAILYLOG_NO_PUSH)
//	--quiet       Hide informational messages (env: DAILYLOG_QUIET)
//	--debug       Enable debug logging (env: DAILYLOG_DEBUG)
//	--debug-log   Debug log file (env: DAILYLOG_DEBUG_LOG)
//
// # Exit Status
//
// dailylog exits 0 when the entry was committed, when there was nothing to
// commit, and when today was already logged. Any failure (missing git
// identity, no repository, stage, commit or push failure) exits 1. A failed
// push keeps the local commit.
//
// # Requirements
//
// git must be installed and user.name and user.email must be configured.
package main
