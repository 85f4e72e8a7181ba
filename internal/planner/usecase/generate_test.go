package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"day-planner/internal/calendar"
	"day-planner/internal/model"
	"day-planner/internal/planner"
)

const clearPlanJSON = "Here is your plan:\n```json\n" + `{"tasks":[
	{"title":"Write report","date":"2024-05-01","start_time":"10:00","duration_minutes":90,"difficulty":"deep","notes":null},
	{"title":"Email","date":"2024-05-01","start_time":"13:00","duration_minutes":15,"difficulty":"simple","notes":"inbox zero"}
]}` + "\n```"

func TestGenerateAndValidatePlan_Clear(t *testing.T) {
	uc, m := newTestUseCase(t)

	wantMin := time.Date(2024, 4, 30, 17, 0, 0, 0, time.UTC)
	wantMax := time.Date(2024, 5, 1, 16, 59, 59, 0, time.UTC)
	m.calendar.EXPECT().
		ListEvents(gomock.Any(), wantMin, wantMax, testZone).
		Return([]model.RawCalendarEvent{standup}, nil)
	m.rules.EXPECT().FetchRules(gomock.Any()).Return("# Rules\nDeep work first", nil)

	var got planner.GenerateRequest
	m.generator.EXPECT().
		GeneratePlan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req planner.GenerateRequest) (string, error) {
			got = req
			return clearPlanJSON, nil
		})

	out, err := uc.GenerateAndValidatePlan(context.Background(), planner.GenerateInput{
		Text:     "  write report, answer email  ",
		TimeZone: testZone,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.HasConflicts() {
		t.Errorf("expected a clear plan, got %+v", out.Conflicts)
	}
	if len(out.Plan.Tasks) != 2 || out.Plan.Tasks[1].Notes == nil || *out.Plan.Tasks[1].Notes != "inbox zero" {
		t.Errorf("unexpected plan: %+v", out.Plan)
	}
	if out.Today != "2024-05-01" || out.RulesPreview != "# Rules\nDeep work first" {
		t.Errorf("unexpected outcome: %+v", out)
	}

	if got.UserText != "write report, answer email" {
		t.Errorf("text not trimmed: %q", got.UserText)
	}
	if got.NowLocal != "2024-05-01 09:00" || got.Today != "2024-05-01" || got.TimeZone != testZone {
		t.Errorf("unexpected time context: %+v", got)
	}
	if got.BusySummary != "- 09:00-10:00 Standup" {
		t.Errorf("unexpected busy summary: %q", got.BusySummary)
	}
	if got.Rules != "# Rules\nDeep work first" {
		t.Errorf("unexpected rules: %q", got.Rules)
	}
}

func TestGenerateAndValidatePlan_Conflict(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RawCalendarEvent{standup}, nil)
	m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
	m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
		Return(`{"tasks":[
			{"title":"Review","date":"2024-05-01","start_time":"09:30","duration_minutes":60,"difficulty":"normal","notes":null},
			{"title":"After","date":"2024-05-01","start_time":"10:30","duration_minutes":30,"difficulty":"simple","notes":null}
		]}`, nil)

	out, err := uc.GenerateAndValidatePlan(context.Background(), planner.GenerateInput{Text: "review", TimeZone: testZone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.HasConflicts() || len(out.Conflicts) != 1 {
		t.Fatalf("expected one conflict, got %+v", out.Conflicts)
	}
	entry := out.Conflicts[0]
	if entry.Task.Title != "Review" || len(entry.Overlapping) != 1 || entry.Overlapping[0].SourceID != "ev-1" {
		t.Errorf("unexpected conflict entry: %+v", entry)
	}
	// 09:30-10:30 and 10:30-11:00 touch but do not overlap.
	if len(out.SelfOverlaps) != 0 {
		t.Errorf("unexpected self overlaps: %+v", out.SelfOverlaps)
	}
}

func TestGenerateAndValidatePlan_SelfOverlap(t *testing.T) {
	uc, m := newTestUseCase(t)

	m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
	m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req planner.GenerateRequest) (string, error) {
			if req.BusySummary != "- none" {
				t.Errorf("unexpected busy summary: %q", req.BusySummary)
			}
			return `{"tasks":[
				{"title":"A","date":"2024-05-01","start_time":"14:00","duration_minutes":60,"difficulty":"normal","notes":null},
				{"title":"B","date":"2024-05-01","start_time":"14:30","duration_minutes":60,"difficulty":"normal","notes":null}
			]}`, nil
		})

	out, err := uc.GenerateAndValidatePlan(context.Background(), planner.GenerateInput{Text: "a and b", TimeZone: testZone})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Conflicts) != 0 || len(out.SelfOverlaps) != 2 || !out.HasConflicts() {
		t.Errorf("expected both tasks flagged as overlapping each other, got %+v", out.SelfOverlaps)
	}
}

func TestGenerateAndValidatePlan_Errors(t *testing.T) {
	validTask := `{"title":"A","date":"2024-05-01","start_time":"14:00","duration_minutes":60,"difficulty":"normal","notes":null}`

	tests := []struct {
		name     string
		input    planner.GenerateInput
		setup    func(m mocks)
		wantKind error
		wantMsg  string
	}{
		{
			name:     "empty text",
			input:    planner.GenerateInput{Text: "   ", TimeZone: testZone},
			wantKind: planner.ErrEmptyInput,
		},
		{
			name:     "text too long",
			input:    planner.GenerateInput{Text: strings.Repeat("x", 201), TimeZone: testZone},
			wantKind: planner.ErrInputTooLong,
		},
		{
			name:     "invalid zone",
			input:    planner.GenerateInput{Text: "plan", TimeZone: "Mars/Olympus"},
			wantKind: planner.ErrInvalidTimeZone,
		},
		{
			name:     "missing zone",
			input:    planner.GenerateInput{Text: "plan"},
			wantKind: planner.ErrInvalidTimeZone,
		},
		{
			name:  "calendar failure passes message through",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &calendar.Error{Source: "google calendar", Message: "Rate Limit Exceeded", Err: errors.New("403")})
			},
			wantKind: planner.ErrCalendarFetchFailed,
			wantMsg:  "Rate Limit Exceeded",
		},
		{
			name:  "calendar failure without message",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantKind: planner.ErrCalendarFetchFailed,
			wantMsg:  "failed to reach calendar",
		},
		{
			name:  "rules failure",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", errors.New("notion down"))
			},
			wantKind: planner.ErrGenerationFailed,
		},
		{
			name:  "generator failure",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return("", errors.New("all providers failed"))
			},
			wantKind: planner.ErrGenerationFailed,
		},
		{
			name:  "unknown field",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
					Return(`{"tasks":[{"title":"A","date":"2024-05-01","start_time":"14:00","duration_minutes":60,"difficulty":"normal","notes":null,"priority":1}]}`, nil)
			},
			wantKind: planner.ErrInvalidGeneratedPlan,
		},
		{
			name:  "duration out of range",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
					Return(`{"tasks":[{"title":"A","date":"2024-05-01","start_time":"14:00","duration_minutes":600,"difficulty":"normal","notes":null}]}`, nil)
			},
			wantKind: planner.ErrInvalidGeneratedPlan,
		},
		{
			name:  "bad difficulty",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
					Return(`{"tasks":[{"title":"A","date":"2024-05-01","start_time":"14:00","duration_minutes":60,"difficulty":"hard","notes":null}]}`, nil)
			},
			wantKind: planner.ErrInvalidGeneratedPlan,
		},
		{
			name:  "missing tasks",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return(`{}`, nil)
			},
			wantKind: planner.ErrInvalidGeneratedPlan,
		},
		{
			name:  "not json",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).Return("Sorry, I cannot help.", nil)
			},
			wantKind: planner.ErrInvalidGeneratedPlan,
		},
		{
			name:  "task dated tomorrow",
			input: planner.GenerateInput{Text: "plan", TimeZone: testZone},
			setup: func(m mocks) {
				m.calendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.rules.EXPECT().FetchRules(gomock.Any()).Return("", nil)
				m.generator.EXPECT().GeneratePlan(gomock.Any(), gomock.Any()).
					Return(`{"tasks":[`+validTask+`,{"title":"Later","date":"2024-05-02","start_time":"09:00","duration_minutes":30,"difficulty":"simple","notes":null}]}`, nil)
			},
			wantKind: planner.ErrOutOfScopeTask,
			wantMsg:  `task "Later" is dated 2024-05-02, expected 2024-05-01`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestUseCase(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			_, err := uc.GenerateAndValidatePlan(context.Background(), tt.input)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("expected %v, got %v", tt.wantKind, err)
			}
			if tt.wantMsg != "" && err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"tasks":[]}`, `{"tasks":[]}`},
		{"fenced", "```json\n{\"tasks\":[]}\n```", `{"tasks":[]}`},
		{"fenced no lang", "```\n{\"tasks\":[]}\n```", `{"tasks":[]}`},
		{"prose", `Sure! {"tasks":[]} Enjoy.`, `{"tasks":[]}`},
		{"no object", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatBusySummary(t *testing.T) {
	intervals := []model.BusyInterval{
		{StartUTC: time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC), EndUTC: time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC), Label: "Standup"},
		{StartUTC: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC), EndUTC: time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)},
	}
	want := "- 09:00-10:00 Standup\n- 14:00-14:30 (busy)"
	if got := formatBusySummary(intervals, testZone); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := formatBusySummary(nil, testZone); got != "- none" {
		t.Errorf("got %q", got)
	}
}
