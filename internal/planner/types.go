package planner

import "day-planner/internal/model"

// RulesPreviewLength caps the rules excerpt returned with a generated plan.
const RulesPreviewLength = 400

// --- UseCase Inputs ---

type GenerateInput struct {
	Text     string
	TimeZone string
}

type RevalidateInput struct {
	Tasks    []model.PlannedTask
	TimeZone string
}

type CommitInput struct {
	Tasks    []model.PlannedTask
	TimeZone string
}

// --- UseCase Outputs ---

// PlanOutcome is either a clear plan or a conflict report over that plan.
type PlanOutcome struct {
	Plan         model.Plan
	Today        string
	Conflicts    []model.ConflictEntry
	SelfOverlaps []model.ConflictEntry
	RulesPreview string
}

// HasConflicts reports whether the plan must be edited before commit.
func (o PlanOutcome) HasConflicts() bool {
	return len(o.Conflicts) > 0 || len(o.SelfOverlaps) > 0
}

type RevalidateOutput struct {
	Conflicts    []model.ConflictEntry
	SelfOverlaps []model.ConflictEntry
}

// Clear reports whether the tasks fit the calendar and each other.
func (o RevalidateOutput) Clear() bool {
	return len(o.Conflicts) == 0 && len(o.SelfOverlaps) == 0
}

// CommitOutput carries either the commit result or, when the tasks no
// longer fit the calendar, the conflicts that blocked the commit.
type CommitOutput struct {
	Result       model.CommitResult
	Conflicts    []model.ConflictEntry
	SelfOverlaps []model.ConflictEntry
}

// Blocked reports whether the commit was refused because of conflicts.
func (o CommitOutput) Blocked() bool {
	return len(o.Conflicts) > 0 || len(o.SelfOverlaps) > 0
}

// --- Collaborator Inputs ---

// GenerateRequest is the context handed to the Generator.
type GenerateRequest struct {
	UserText    string
	NowLocal    string // "YYYY-MM-DD HH:MM" in TimeZone
	Today       string
	TimeZone    string
	BusySummary string
	Rules       string
}
