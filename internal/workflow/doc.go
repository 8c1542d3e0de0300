// Package workflow runs one daily logging cycle: identity preflight,
// repository resolution, the idempotency check, append, stage, commit
// and push.
//
// Steps run strictly in sequence and the first failure aborts the rest.
// Nothing that has already happened is rolled back: a failed push keeps
// the local commit and a failed commit leaves the log file staged.
package workflow
