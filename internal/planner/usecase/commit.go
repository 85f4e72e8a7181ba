package usecase

import (
	"context"

	"day-planner/internal/model"
	"day-planner/internal/planner"
)

// CommitPlan writes today's tasks in order after a fresh conflict check.
// Nothing is written when any task conflicts.
func (uc *implUseCase) CommitPlan(ctx context.Context, input planner.CommitInput) (planner.CommitOutput, error) {
	zone, err := checkZone(input.TimeZone)
	if err != nil {
		return planner.CommitOutput{}, err
	}
	if err := uc.validateTasks(input.Tasks); err != nil {
		return planner.CommitOutput{}, err
	}
	if !uc.calendar.Writable() {
		return planner.CommitOutput{}, planner.NewError(planner.ErrNoCalendar, "", nil)
	}

	today, _, err := uc.localNow(zone)
	if err != nil {
		return planner.CommitOutput{}, err
	}
	if err := checkScope(input.Tasks, today); err != nil {
		return planner.CommitOutput{}, err
	}

	conflicts, selfOverlaps, err := uc.checkConflicts(ctx, input.Tasks, zone)
	if err != nil {
		return planner.CommitOutput{}, err
	}
	if len(conflicts) > 0 || len(selfOverlaps) > 0 {
		uc.l.Warnf(ctx, "planner.CommitPlan: blocked by %d conflicts", len(conflicts)+len(selfOverlaps))
		return planner.CommitOutput{Conflicts: conflicts, SelfOverlaps: selfOverlaps}, nil
	}

	result := uc.sequencer.CommitTasks(ctx, input.Tasks, zone, uc.insertEvent)
	return planner.CommitOutput{Result: result}, nil
}

// insertEvent adapts the calendar writer to commit.InsertFunc.
func (uc *implUseCase) insertEvent(ctx context.Context, task model.PlannedTask, zone string) (string, error) {
	id, err := uc.calendar.InsertEvent(ctx, task, zone)
	if err != nil {
		return "", planner.NewError(planner.ErrCalendarInsertFailed,
			userMessage(err, planner.ErrCalendarInsertFailed.Error()), err)
	}
	return id, nil
}
