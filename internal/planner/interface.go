package planner

import (
	"context"
	"time"

	"day-planner/internal/model"
)

//go:generate mockgen -source=interface.go -destination=interface_mock.go -package=planner

// UseCase is the plan orchestrator exposed to delivery layers.
type UseCase interface {
	// GenerateAndValidatePlan drafts a plan for today in the input zone and
	// checks it against the calendar. Conflicts are reported in the outcome,
	// not as an error.
	GenerateAndValidatePlan(ctx context.Context, input GenerateInput) (PlanOutcome, error)
	// RevalidateConflicts re-checks edited tasks against the current calendar.
	RevalidateConflicts(ctx context.Context, input RevalidateInput) (RevalidateOutput, error)
	// CommitPlan writes today's tasks to the calendar unless they conflict.
	CommitPlan(ctx context.Context, input CommitInput) (CommitOutput, error)
}

// Calendar is the list/insert collaborator.
type Calendar interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.RawCalendarEvent, error)
	InsertEvent(ctx context.Context, task model.PlannedTask, zone string) (string, error)
	Writable() bool
}

// Generator turns the user's text and day context into raw plan JSON.
// The output is untrusted and validated by the use case.
type Generator interface {
	GeneratePlan(ctx context.Context, req GenerateRequest) (string, error)
}

// RulesSource supplies the planning rules text.
type RulesSource interface {
	FetchRules(ctx context.Context) (string, error)
}
