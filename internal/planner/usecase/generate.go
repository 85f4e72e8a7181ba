package usecase

import (
	"context"

	"day-planner/internal/conflict"
	"day-planner/internal/planner"
	"day-planner/pkg/datemath"
)

// GenerateAndValidatePlan drafts today's plan and checks it against the calendar.
func (uc *implUseCase) GenerateAndValidatePlan(ctx context.Context, input planner.GenerateInput) (planner.PlanOutcome, error) {
	text, err := uc.checkInput(input.Text)
	if err != nil {
		return planner.PlanOutcome{}, err
	}
	zone, err := checkZone(input.TimeZone)
	if err != nil {
		return planner.PlanOutcome{}, err
	}

	today, nowLabel, err := uc.localNow(zone)
	if err != nil {
		return planner.PlanOutcome{}, err
	}
	bounds, err := datemath.DayBoundsUTC(today, zone)
	if err != nil {
		return planner.PlanOutcome{}, planner.NewError(planner.ErrInvalidTimeZone, "", err)
	}

	busyIntervals, err := uc.fetchBusy(ctx, bounds.StartUTC, bounds.EndUTC, zone)
	if err != nil {
		return planner.PlanOutcome{}, err
	}

	rulesText, err := uc.rules.FetchRules(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "planner.GenerateAndValidatePlan: FetchRules: %v", err)
		return planner.PlanOutcome{}, planner.NewError(planner.ErrGenerationFailed, "", err)
	}

	raw, err := uc.generator.GeneratePlan(ctx, planner.GenerateRequest{
		UserText:    text,
		NowLocal:    nowLabel,
		Today:       today,
		TimeZone:    zone,
		BusySummary: formatBusySummary(busyIntervals, zone),
		Rules:       rulesText,
	})
	if err != nil {
		uc.l.Errorf(ctx, "planner.GenerateAndValidatePlan: GeneratePlan: %v", err)
		return planner.PlanOutcome{}, planner.NewError(planner.ErrGenerationFailed, "", err)
	}

	plan, err := uc.decodePlan(raw)
	if err != nil {
		uc.l.Warnf(ctx, "planner.GenerateAndValidatePlan: decodePlan: %v", err)
		return planner.PlanOutcome{}, err
	}
	if err := checkScope(plan.Tasks, today); err != nil {
		uc.l.Warnf(ctx, "planner.GenerateAndValidatePlan: %v", err)
		return planner.PlanOutcome{}, err
	}

	conflicts, err := conflict.FindConflicts(plan.Tasks, busyIntervals, zone)
	if err != nil {
		return planner.PlanOutcome{}, planner.NewError(planner.ErrInvalidGeneratedPlan, "", err)
	}
	selfOverlaps, err := conflict.SelfOverlaps(plan.Tasks, zone)
	if err != nil {
		return planner.PlanOutcome{}, planner.NewError(planner.ErrInvalidGeneratedPlan, "", err)
	}

	outcome := planner.PlanOutcome{
		Plan:         plan,
		Today:        today,
		Conflicts:    conflicts,
		SelfOverlaps: selfOverlaps,
		RulesPreview: preview(rulesText, planner.RulesPreviewLength),
	}
	uc.l.Infof(ctx, "planner.GenerateAndValidatePlan: %d tasks for %s, %d busy, %d conflicts",
		len(plan.Tasks), today, len(busyIntervals), len(conflicts)+len(selfOverlaps))
	return outcome, nil
}
