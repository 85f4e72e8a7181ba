package usecase

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"day-planner/internal/commit"
	"day-planner/internal/model"
	"day-planner/internal/planner"
	"day-planner/pkg/log"
)

const testZone = "Asia/Ho_Chi_Minh"

// 2024-05-01 09:00 in Ho Chi Minh City.
var testNow = time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)

type mocks struct {
	calendar  *planner.MockCalendar
	generator *planner.MockGenerator
	rules     *planner.MockRulesSource
}

func newTestUseCase(t *testing.T) (*implUseCase, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		calendar:  planner.NewMockCalendar(ctrl),
		generator: planner.NewMockGenerator(ctrl),
		rules:     planner.NewMockRulesSource(ctrl),
	}
	l := log.NewNop()
	uc := New(l, m.calendar, m.generator, m.rules, commit.New(l, 0), 200)
	uc.now = func() time.Time { return testNow }
	return uc, m
}

func timedEvent(id, summary, start, end string) model.RawCalendarEvent {
	return model.RawCalendarEvent{
		ID:      id,
		Summary: summary,
		Start:   &model.EventTime{DateTime: start},
		End:     &model.EventTime{DateTime: end},
	}
}

func task(title, date, start string, minutes int) model.PlannedTask {
	return model.PlannedTask{
		Title:           title,
		Date:            date,
		StartTime:       start,
		DurationMinutes: minutes,
		Difficulty:      model.DifficultyNormal,
	}
}

// standup is 09:00-10:00 local on 2024-05-01.
var standup = timedEvent("ev-1", "Standup", "2024-05-01T09:00:00+07:00", "2024-05-01T10:00:00+07:00")
