package model

import "time"

// BusyInterval is a zone-resolved commitment covering [StartUTC, EndUTC).
type BusyInterval struct {
	StartUTC time.Time
	EndUTC   time.Time
	SourceID string // calendar event id, empty for task-derived intervals
	Label    string
}

// EventTime is one end of a raw calendar event. Exactly one of DateTime
// (timezone-qualified timestamp) or Date (all-day "YYYY-MM-DD") is expected.
type EventTime struct {
	DateTime string
	Date     string
}

// RawCalendarEvent is an event as reported by a calendar source.
type RawCalendarEvent struct {
	ID      string
	Summary string
	Start   *EventTime
	End     *EventTime
}

// ConflictEntry pairs a task with every busy interval it overlaps.
type ConflictEntry struct {
	Task        PlannedTask
	Overlapping []BusyInterval
}

// TaskOutcome is the result of inserting one task.
type TaskOutcome struct {
	Task    PlannedTask
	OK      bool
	EventID string
	Error   string
}

// CommitResult aggregates the outcomes of a commit sequence.
type CommitResult struct {
	Results      []TaskOutcome
	CreatedCount int
	Errors       []string
}

// PartialFailure reports whether some but not all insertions failed.
func (r CommitResult) PartialFailure() bool {
	return r.CreatedCount > 0 && len(r.Errors) > 0
}
