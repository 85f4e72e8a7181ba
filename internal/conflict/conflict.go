// Package conflict detects overlaps between proposed tasks and busy intervals.
package conflict

import (
	"day-planner/internal/busy"
	"day-planner/internal/model"
)

// Overlaps reports whether two half-open intervals intersect.
// Intervals that only share an endpoint do not overlap.
func Overlaps(a, b model.BusyInterval) bool {
	return a.StartUTC.Before(b.EndUTC) && b.StartUTC.Before(a.EndUTC)
}

// FindConflicts returns one entry per task that overlaps at least one busy
// interval. Entries follow task order; each Overlapping list follows busy order.
// An error is returned only when a task cannot be resolved in zone.
func FindConflicts(tasks []model.PlannedTask, busyIntervals []model.BusyInterval, zone string) ([]model.ConflictEntry, error) {
	var entries []model.ConflictEntry
	for _, task := range tasks {
		iv, err := busy.TaskToInterval(task, zone)
		if err != nil {
			return nil, err
		}

		var overlapping []model.BusyInterval
		for _, b := range busyIntervals {
			if Overlaps(iv, b) {
				overlapping = append(overlapping, b)
			}
		}
		if len(overlapping) == 0 {
			continue
		}
		entries = append(entries, model.ConflictEntry{
			Task:        task,
			Overlapping: overlapping,
		})
	}
	return entries, nil
}

// SelfOverlaps checks a plan against itself, reporting each task that
// overlaps another task of the same plan.
func SelfOverlaps(tasks []model.PlannedTask, zone string) ([]model.ConflictEntry, error) {
	intervals := make([]model.BusyInterval, 0, len(tasks))
	for _, task := range tasks {
		iv, err := busy.TaskToInterval(task, zone)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}

	var entries []model.ConflictEntry
	for i, task := range tasks {
		var overlapping []model.BusyInterval
		for j, other := range intervals {
			if i != j && Overlaps(intervals[i], other) {
				overlapping = append(overlapping, other)
			}
		}
		if len(overlapping) > 0 {
			entries = append(entries, model.ConflictEntry{Task: task, Overlapping: overlapping})
		}
	}
	return entries, nil
}
