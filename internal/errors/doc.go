// Package errors provides error handling utilities for the dailylog application.
//
// Errors are built on goerr, so every wrap can carry key/value context
// (the log path, the remote, the branch) that shows up in the debug log.
//
// # Sentinels
//
// Each step of a run that can abort it has a sentinel, matched with errors.Is:
//
//   - ErrConfigurationMissing: git missing or identity unset
//   - ErrRepositoryNotFound: no usable repository or remote
//   - ErrStageFailure, ErrCommitFailure, ErrPushFailure: the git steps
//   - ErrLogFileFailure: the log file could not be read or written
//   - ErrInvalidConfiguration: bad flags, environment or config file
//
// # Usage
//
//	if err != nil {
//	    return errors.Wrap(errors.ErrStageFailure, err.Error(), errors.KeyPath, path)
//	}
//
//	if errors.Is(err, errors.ErrPushFailure) {
//	    // the local commit is kept
//	}
//
// GitError and ConfigError add the failing git operation or configuration
// parameter and unwrap to the sentinel they were built with.
package errors
