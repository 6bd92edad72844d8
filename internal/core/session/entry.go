package session

import (
	"fmt"
	"time"
)

// TimestampLayout is the start/end time layout in the session log.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one completed session. It is immutable once built.
type Entry struct {
	ID               string
	StartTime        time.Time
	EndTime          time.Time
	TotalDuration    time.Duration
	ActiveDuration   time.Duration
	InactiveDuration time.Duration
}

// NewEntry derives total and inactive durations. Active time is clamped into
// [0, total] so inactive time is never negative.
func NewEntry(id string, start, end time.Time, active time.Duration) Entry {
	total := end.Sub(start)
	if total < 0 {
		total = 0
	}
	if active < 0 {
		active = 0
	}
	if active > total {
		active = total
	}
	return Entry{
		ID:               id,
		StartTime:        start,
		EndTime:          end,
		TotalDuration:    total,
		ActiveDuration:   active,
		InactiveDuration: total - active,
	}
}

// Format renders the entry as a log block, terminated by a blank line.
func (entry Entry) Format() string {
	return fmt.Sprintf(
		"===== Pomodoro Session =====\n"+
			"Start Time: %s\n"+
			"End Time: %s\n"+
			"Total Duration: %s\n"+
			"Active Time: %s\n"+
			"Inactive Time: %s\n\n",
		entry.StartTime.Format(TimestampLayout),
		entry.EndTime.Format(TimestampLayout),
		FormatDuration(entry.TotalDuration),
		FormatDuration(entry.ActiveDuration),
		FormatDuration(entry.InactiveDuration),
	)
}

// FormatDuration renders HH:MM:SS from one hour up, MM:SS below. Fractions
// of a second are truncated.
func FormatDuration(value time.Duration) string {
	return FormatSeconds(int(value / time.Second))
}

// FormatSeconds is FormatDuration for a whole second count.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
