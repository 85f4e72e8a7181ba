package usecase

import (
	"context"

	"day-planner/internal/planner"
)

// RevalidateConflicts re-checks possibly edited tasks against the live calendar.
func (uc *implUseCase) RevalidateConflicts(ctx context.Context, input planner.RevalidateInput) (planner.RevalidateOutput, error) {
	zone, err := checkZone(input.TimeZone)
	if err != nil {
		return planner.RevalidateOutput{}, err
	}
	if err := uc.validateTasks(input.Tasks); err != nil {
		return planner.RevalidateOutput{}, err
	}

	conflicts, selfOverlaps, err := uc.checkConflicts(ctx, input.Tasks, zone)
	if err != nil {
		return planner.RevalidateOutput{}, err
	}
	return planner.RevalidateOutput{Conflicts: conflicts, SelfOverlaps: selfOverlaps}, nil
}
