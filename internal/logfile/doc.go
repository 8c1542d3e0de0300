// Package logfile implements the append-only text log and the date
// containment check that makes daily runs idempotent.
//
// The log is plain text. Existing content is never rewritten or reordered;
// Append only ever extends the file. There is no locking: two processes
// appending to the same file at once may interleave their writes.
package logfile
