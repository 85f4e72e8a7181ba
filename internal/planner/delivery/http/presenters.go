package http

import (
	"strings"

	"day-planner/internal/model"
	"day-planner/internal/planner"
	"day-planner/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Difficulty      string  `json:"difficulty"`
	Notes           *string `json:"notes"`
}

func (r taskReq) toModel() model.PlannedTask {
	return model.PlannedTask{
		Title:           strings.TrimSpace(r.Title),
		Date:            strings.TrimSpace(r.Date),
		StartTime:       strings.TrimSpace(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		Difficulty:      model.Difficulty(strings.TrimSpace(r.Difficulty)),
		Notes:           r.Notes,
	}
}

func toModelTasks(reqs []taskReq) []model.PlannedTask {
	tasks := make([]model.PlannedTask, len(reqs))
	for i, r := range reqs {
		tasks[i] = r.toModel()
	}
	return tasks
}

type generateReq struct {
	Text     string `json:"text"      binding:"required"`
	TimeZone string `json:"time_zone"`
}

func (r generateReq) toInput() planner.GenerateInput {
	return planner.GenerateInput{Text: r.Text, TimeZone: r.TimeZone}
}

type tasksReq struct {
	Tasks    []taskReq `json:"tasks"     binding:"required"`
	TimeZone string    `json:"time_zone"`
}

func (r tasksReq) toRevalidateInput() planner.RevalidateInput {
	return planner.RevalidateInput{Tasks: toModelTasks(r.Tasks), TimeZone: r.TimeZone}
}

func (r tasksReq) toCommitInput() planner.CommitInput {
	return planner.CommitInput{Tasks: toModelTasks(r.Tasks), TimeZone: r.TimeZone}
}

// --- Response DTOs ---

type taskResp struct {
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Difficulty      string  `json:"difficulty"`
	Notes           *string `json:"notes"`
}

func newTaskResp(t model.PlannedTask) taskResp {
	return taskResp{
		Title:           t.Title,
		Date:            t.Date,
		StartTime:       t.StartTime,
		DurationMinutes: t.DurationMinutes,
		Difficulty:      string(t.Difficulty),
		Notes:           t.Notes,
	}
}

type planResp struct {
	Tasks []taskResp `json:"tasks"`
}

func newPlanResp(p model.Plan) planResp {
	tasks := make([]taskResp, len(p.Tasks))
	for i, t := range p.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return planResp{Tasks: tasks}
}

type busyResp struct {
	StartUTC response.Instant `json:"start_utc"`
	EndUTC   response.Instant `json:"end_utc"`
	SourceID string           `json:"source_id,omitempty"`
	Label    string           `json:"label,omitempty"`
}

type conflictResp struct {
	Task        taskResp   `json:"task"`
	Overlapping []busyResp `json:"overlapping"`
}

func newConflictsResp(entries []model.ConflictEntry) []conflictResp {
	out := make([]conflictResp, len(entries))
	for i, e := range entries {
		overlapping := make([]busyResp, len(e.Overlapping))
		for j, b := range e.Overlapping {
			overlapping[j] = busyResp{
				StartUTC: response.Instant(b.StartUTC),
				EndUTC:   response.Instant(b.EndUTC),
				SourceID: b.SourceID,
				Label:    b.Label,
			}
		}
		out[i] = conflictResp{Task: newTaskResp(e.Task), Overlapping: overlapping}
	}
	return out
}

type conflictReportResp struct {
	Clear        bool           `json:"clear"`
	Conflicts    []conflictResp `json:"conflicts"`
	SelfOverlaps []conflictResp `json:"self_overlaps"`
}

func newConflictReportResp(conflicts, selfOverlaps []model.ConflictEntry) conflictReportResp {
	return conflictReportResp{
		Clear:        len(conflicts) == 0 && len(selfOverlaps) == 0,
		Conflicts:    newConflictsResp(conflicts),
		SelfOverlaps: newConflictsResp(selfOverlaps),
	}
}

type generateResp struct {
	Plan         planResp `json:"plan"`
	Today        string   `json:"today"`
	RulesPreview string   `json:"rules_preview"`
}

// generateConflictResp is returned with 409 so the client can edit its draft.
type generateConflictResp struct {
	generateResp
	conflictReportResp
}

func (h *handler) newGenerateResp(out planner.PlanOutcome) generateResp {
	return generateResp{
		Plan:         newPlanResp(out.Plan),
		Today:        out.Today,
		RulesPreview: out.RulesPreview,
	}
}

func (h *handler) newGenerateConflictResp(out planner.PlanOutcome) generateConflictResp {
	return generateConflictResp{
		generateResp:       h.newGenerateResp(out),
		conflictReportResp: newConflictReportResp(out.Conflicts, out.SelfOverlaps),
	}
}

type taskOutcomeResp struct {
	Title   string `json:"title"`
	OK      bool   `json:"ok"`
	EventID string `json:"event_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

type commitResp struct {
	CreatedCount int               `json:"created_count"`
	Results      []taskOutcomeResp `json:"results"`
	Errors       []string          `json:"errors"`
}

func (h *handler) newCommitResp(res model.CommitResult) commitResp {
	results := make([]taskOutcomeResp, len(res.Results))
	for i, r := range res.Results {
		results[i] = taskOutcomeResp{
			Title:   r.Task.Title,
			OK:      r.OK,
			EventID: r.EventID,
			Error:   r.Error,
		}
	}
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return commitResp{CreatedCount: res.CreatedCount, Results: results, Errors: errs}
}
