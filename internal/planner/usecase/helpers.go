package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"day-planner/internal/busy"
	"day-planner/internal/conflict"
	"day-planner/internal/model"
	"day-planner/internal/planner"
	"day-planner/pkg/datemath"
)

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse strips code fences and surrounding prose from LLM output.
func sanitizeJSONResponse(text string) string {
	if matches := codeFencePattern.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return strings.TrimSpace(text)
	}
	return text[start : end+1]
}

// checkInput rejects blank or oversized user text.
func (uc *implUseCase) checkInput(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", planner.NewError(planner.ErrEmptyInput, "", nil)
	}
	if uc.maxInputLength > 0 && utf8.RuneCountInString(text) > uc.maxInputLength {
		return "", planner.NewError(planner.ErrInputTooLong,
			fmt.Sprintf("input text exceeds %d characters", uc.maxInputLength), nil)
	}
	return text, nil
}

// checkZone rejects zones the converter cannot resolve. No default is applied here.
func checkZone(zone string) (string, error) {
	zone = strings.TrimSpace(zone)
	if !datemath.IsValidTimeZone(zone) {
		return "", planner.NewError(planner.ErrInvalidTimeZone,
			fmt.Sprintf("invalid time zone %q", zone), datemath.ErrInvalidTimeZone)
	}
	return zone, nil
}

// localNow returns today's date and a "YYYY-MM-DD HH:MM" label in zone.
func (uc *implUseCase) localNow(zone string) (today, label string, err error) {
	date, clock, err := datemath.FormatInZone(uc.now(), zone)
	if err != nil {
		return "", "", planner.NewError(planner.ErrInvalidTimeZone, "", err)
	}
	return date, date + " " + clock, nil
}

// decodePlan strictly decodes and validates generator output.
func (uc *implUseCase) decodePlan(raw string) (model.Plan, error) {
	dec := json.NewDecoder(strings.NewReader(sanitizeJSONResponse(raw)))
	dec.DisallowUnknownFields()

	var plan model.Plan
	if err := dec.Decode(&plan); err != nil {
		return model.Plan{}, planner.NewError(planner.ErrInvalidGeneratedPlan, "", err)
	}
	if dec.More() {
		return model.Plan{}, planner.NewError(planner.ErrInvalidGeneratedPlan, "",
			errors.New("unexpected data after plan object"))
	}
	if err := uc.validate.Struct(plan); err != nil {
		return model.Plan{}, planner.NewError(planner.ErrInvalidGeneratedPlan, "",
			errors.New(describeValidation(err)))
	}
	return plan, nil
}

// validateTasks checks client-supplied tasks with the same rules as generated ones.
func (uc *implUseCase) validateTasks(tasks []model.PlannedTask) error {
	if len(tasks) == 0 {
		return planner.NewError(planner.ErrInvalidTask, "no tasks supplied", nil)
	}
	if err := uc.validate.Struct(model.Plan{Tasks: tasks}); err != nil {
		return planner.NewError(planner.ErrInvalidTask, describeValidation(err), err)
	}
	return nil
}

// describeValidation renders validator errors as "tasks[0].start_time: datetime".
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// checkScope requires every task to be dated today.
func checkScope(tasks []model.PlannedTask, today string) error {
	for _, t := range tasks {
		if t.Date != today {
			return planner.NewError(planner.ErrOutOfScopeTask,
				fmt.Sprintf("task %q is dated %s, expected %s", t.Title, t.Date, today), nil)
		}
	}
	return nil
}

// fetchBusy lists calendar events in [timeMin, timeMax] and normalizes them.
func (uc *implUseCase) fetchBusy(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.BusyInterval, error) {
	events, err := uc.calendar.ListEvents(ctx, timeMin, timeMax, zone)
	if err != nil {
		uc.l.Warnf(ctx, "planner.fetchBusy: ListEvents: %v", err)
		return nil, planner.NewError(planner.ErrCalendarFetchFailed,
			userMessage(err, planner.ErrCalendarFetchFailed.Error()), err)
	}
	return busy.ToBusyIntervals(events, zone), nil
}

// taskWindow covers the local days of tasks plus any task running past the
// last day's end.
func taskWindow(tasks []model.PlannedTask, zone string) (time.Time, time.Time, error) {
	var timeMin, timeMax time.Time
	for i, t := range tasks {
		bounds, err := datemath.DayBoundsUTC(t.Date, zone)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		iv, err := busy.TaskToInterval(t, zone)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end := bounds.EndUTC
		if iv.EndUTC.After(end) {
			end = iv.EndUTC
		}
		if i == 0 || bounds.StartUTC.Before(timeMin) {
			timeMin = bounds.StartUTC
		}
		if i == 0 || end.After(timeMax) {
			timeMax = end
		}
	}
	return timeMin, timeMax, nil
}

// checkConflicts runs the detector against the calendar and the tasks themselves.
func (uc *implUseCase) checkConflicts(ctx context.Context, tasks []model.PlannedTask, zone string) (conflicts, selfOverlaps []model.ConflictEntry, err error) {
	timeMin, timeMax, err := taskWindow(tasks, zone)
	if err != nil {
		return nil, nil, planner.NewError(planner.ErrInvalidTask, err.Error(), err)
	}

	busyIntervals, err := uc.fetchBusy(ctx, timeMin, timeMax, zone)
	if err != nil {
		return nil, nil, err
	}

	conflicts, err = conflict.FindConflicts(tasks, busyIntervals, zone)
	if err != nil {
		return nil, nil, planner.NewError(planner.ErrInvalidTask, err.Error(), err)
	}
	selfOverlaps, err = conflict.SelfOverlaps(tasks, zone)
	if err != nil {
		return nil, nil, planner.NewError(planner.ErrInvalidTask, err.Error(), err)
	}
	return conflicts, selfOverlaps, nil
}

// formatBusySummary lists busy intervals as "- HH:MM-HH:MM label" lines in zone.
func formatBusySummary(intervals []model.BusyInterval, zone string) string {
	if len(intervals) == 0 {
		return "- none"
	}
	lines := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		_, start, err := datemath.FormatInZone(iv.StartUTC, zone)
		if err != nil {
			continue
		}
		_, end, _ := datemath.FormatInZone(iv.EndUTC, zone)
		label := strings.TrimSpace(iv.Label)
		if label == "" {
			label = "(busy)"
		}
		lines = append(lines, fmt.Sprintf("- %s-%s %s", start, end, label))
	}
	return strings.Join(lines, "\n")
}

// userMessage returns the collaborator's own message when it has one.
func userMessage(err error, fallback string) string {
	var um interface{ UserMessage() string }
	if errors.As(err, &um) {
		if msg := strings.TrimSpace(um.UserMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}

func preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n])
}
