package entry

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/bashhack/dailylog/internal/constants"
)

// Layouts used in rendered entries
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
	TimeLayout      = "15:04:05"
	compactLayout   = "20060102"
)

// Entry is a single log entry. It is built once and never mutated.
type Entry struct {
	Timestamp time.Time
	Weekday   string
	TaskID    string
	Text      string
}

// DailyKey returns the idempotency key for t: its calendar date as YYYY-MM-DD.
func DailyKey(t time.Time) string {
	return t.Format(DateLayout)
}

// TaskID derives AUTO-YYYYMMDD-NNNN for t. NNNN is the 32-bit FNV-1a hash
// of the formatted timestamp modulo 10000, so the same second always yields
// the same id.
func TaskID(t time.Time) string {
	t = t.Truncate(time.Second)
	h := fnv.New32a()
	_, _ = h.Write([]byte(t.Format(TimestampLayout)))
	return fmt.Sprintf("AUTO-%s-%04d", t.Format(compactLayout), h.Sum32()%10000)
}

// NewDaily builds the single-line entry of the default mode.
func NewDaily(now time.Time) Entry {
	now = now.Truncate(time.Second)
	weekday := now.Weekday().String()
	taskID := TaskID(now)

	text := fmt.Sprintf("[%s] Daily automation: Updated learning log on %s. %s Task ID: %s",
		now.Format(TimestampLayout), weekday, constants.DailyActivity, taskID)

	return Entry{
		Timestamp: now,
		Weekday:   weekday,
		TaskID:    taskID,
		Text:      text,
	}
}

// NewSection builds the index-th Markdown subsection of the multi-entry
// mode. The time is rendered in UTC.
func NewSection(now time.Time, index int) Entry {
	now = now.UTC().Truncate(time.Second)

	text := fmt.Sprintf("## %s – Entry %d\n- Time (UTC): %s\n- Activity: %s\n",
		now.Format(DateLayout), index, now.Format(TimeLayout), constants.SectionActivity)

	return Entry{
		Timestamp: now,
		Weekday:   now.Weekday().String(),
		TaskID:    TaskID(now),
		Text:      text,
	}
}
