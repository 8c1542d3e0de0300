// Package constants provides the fixed texts dailylog writes.
//
// This package centralizes the strings that end up in the repository: the
// activity descriptions embedded in log entries, the header of a newly
// created multi-entry log, the commit message formats, and the templates
// used by --init. Keeping them here means the log format, which doubles as
// the idempotency ledger, is defined in exactly one place.
//
// # Usage
//
//	import "github.com/bashhack/dailylog/internal/constants"
//
//	msg := fmt.Sprintf(constants.DailyCommitFormat, "2024-01-01")
//
// # Maintenance
//
// Changing an activity description or a commit format changes what existing
// repositories see from one day to the next. Entries must keep embedding
// the date in YYYY-MM-DD form; the idempotency check depends on it.
package constants
