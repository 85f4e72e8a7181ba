// Package busy normalizes calendar events and planned tasks into UTC busy intervals.
package busy

import (
	"strings"
	"time"

	"day-planner/internal/model"
	"day-planner/pkg/datemath"
)

const allDayWallTime = "00:00:00"

// TaskToInterval resolves a task's local start in zone and extends it by its duration.
func TaskToInterval(task model.PlannedTask, zone string) (model.BusyInterval, error) {
	start, err := datemath.ZonedToUTC(task.Date, task.StartTime, zone)
	if err != nil {
		return model.BusyInterval{}, err
	}
	return model.BusyInterval{
		StartUTC: start,
		EndUTC:   start.Add(time.Duration(task.DurationMinutes) * time.Minute),
		Label:    task.Title,
	}, nil
}

// EventToInterval converts a raw event. Timed events are parsed as absolute
// instants; all-day events are anchored at local midnight in zone. Events of
// any other shape, with unparseable fields, or with end not after start
// yield ok == false.
func EventToInterval(event model.RawCalendarEvent, zone string) (model.BusyInterval, bool) {
	if event.Start == nil || event.End == nil {
		return model.BusyInterval{}, false
	}

	var (
		start, end time.Time
		err        error
	)
	switch {
	case event.Start.DateTime != "" && event.End.DateTime != "":
		if start, err = parseTimestamp(event.Start.DateTime); err != nil {
			return model.BusyInterval{}, false
		}
		if end, err = parseTimestamp(event.End.DateTime); err != nil {
			return model.BusyInterval{}, false
		}
	case event.Start.Date != "" && event.End.Date != "":
		if start, err = datemath.ZonedToUTC(event.Start.Date, allDayWallTime, zone); err != nil {
			return model.BusyInterval{}, false
		}
		if end, err = datemath.ZonedToUTC(event.End.Date, allDayWallTime, zone); err != nil {
			return model.BusyInterval{}, false
		}
	default:
		return model.BusyInterval{}, false
	}

	if !end.After(start) {
		return model.BusyInterval{}, false
	}

	return model.BusyInterval{
		StartUTC: start.UTC(),
		EndUTC:   end.UTC(),
		SourceID: event.ID,
		Label:    event.Summary,
	}, true
}

// ToBusyIntervals maps events in order, dropping those that cannot be converted.
func ToBusyIntervals(events []model.RawCalendarEvent, zone string) []model.BusyInterval {
	intervals := make([]model.BusyInterval, 0, len(events))
	for _, ev := range events {
		if iv, ok := EventToInterval(ev, zone); ok {
			intervals = append(intervals, iv)
		}
	}
	return intervals
}

func parseTimestamp(v string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(v))
}
