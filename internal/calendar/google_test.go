package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"day-planner/internal/model"
	"day-planner/pkg/gcalendar"
	pkgLog "day-planner/pkg/log"
)

type fakeGoogleAPI struct {
	events    []gcalendar.Event
	listErr   error
	insertErr error
	listReq   gcalendar.ListEventsRequest
	insertReq gcalendar.InsertEventRequest
}

func (f *fakeGoogleAPI) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.listReq = req
	return f.events, f.listErr
}

func (f *fakeGoogleAPI) InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error) {
	f.insertReq = req
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return &gcalendar.Event{ID: "evt-1"}, nil
}

func TestGoogle_ListEvents(t *testing.T) {
	api := &fakeGoogleAPI{events: []gcalendar.Event{
		{ID: "a", Summary: "Standup", Start: gcalendar.EventTime{DateTime: "2024-05-01T09:00:00+07:00"}, End: gcalendar.EventTime{DateTime: "2024-05-01T09:15:00+07:00"}},
		{ID: "b", Start: gcalendar.EventTime{Date: "2024-05-01"}, End: gcalendar.EventTime{Date: "2024-05-02"}},
		{ID: "c"},
	}}
	g := NewGoogle(pkgLog.NewNop(), api, "")

	min := time.Date(2024, 4, 30, 17, 0, 0, 0, time.UTC)
	max := min.Add(24*time.Hour - time.Second)
	got, err := g.ListEvents(context.Background(), min, max, "Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.listReq.CalendarID != "primary" || api.listReq.TimeZone != "Asia/Ho_Chi_Minh" || !api.listReq.TimeMin.Equal(min) {
		t.Errorf("unexpected request: %+v", api.listReq)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Start.DateTime != "2024-05-01T09:00:00+07:00" || got[0].Summary != "Standup" {
		t.Errorf("unexpected timed event: %+v", got[0])
	}
	if got[1].Start.Date != "2024-05-01" || got[1].End.Date != "2024-05-02" {
		t.Errorf("unexpected all-day event: %+v", got[1])
	}
	if got[2].Start != nil || got[2].End != nil {
		t.Errorf("empty times must map to nil: %+v", got[2])
	}
}

func TestGoogle_ListEventsError(t *testing.T) {
	cause := errors.New("boom")
	g := NewGoogle(pkgLog.NewNop(), &fakeGoogleAPI{listErr: cause}, "work")

	_, err := g.ListEvents(context.Background(), time.Now(), time.Now(), "UTC")
	var calErr *Error
	if !errors.As(err, &calErr) || !errors.Is(err, cause) {
		t.Fatalf("expected *Error wrapping cause, got %v", err)
	}
	if calErr.UserMessage() != "" {
		t.Errorf("plain errors carry no user message, got %q", calErr.UserMessage())
	}
}

func TestGoogle_InsertEvent(t *testing.T) {
	api := &fakeGoogleAPI{}
	g := NewGoogle(pkgLog.NewNop(), api, "work")

	notes := "bring slides"
	task := model.PlannedTask{
		Title:           "Review deck",
		Date:            "2024-05-01",
		StartTime:       "09:30",
		DurationMinutes: 45,
		Difficulty:      model.DifficultyNormal,
		Notes:           &notes,
	}

	id, err := g.InsertEvent(context.Background(), task, "Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "evt-1" {
		t.Errorf("id = %q", id)
	}

	req := api.insertReq
	if req.CalendarID != "work" || req.Summary != "Review deck" || req.Description != "bring slides" || req.TimeZone != "Asia/Ho_Chi_Minh" {
		t.Errorf("unexpected request: %+v", req)
	}
	wantStart := time.Date(2024, 5, 1, 2, 30, 0, 0, time.UTC)
	if !req.StartTime.Equal(wantStart) || !req.EndTime.Equal(wantStart.Add(45*time.Minute)) {
		t.Errorf("unexpected times: %s - %s", req.StartTime, req.EndTime)
	}

	task.Notes = nil
	api.insertErr = errors.New("quota")
	if _, err := g.InsertEvent(context.Background(), task, "Asia/Ho_Chi_Minh"); err == nil {
		t.Fatal("expected insert error")
	}
	if api.insertReq.Description != "" {
		t.Errorf("description must be empty without notes, got %q", api.insertReq.Description)
	}

	if _, err := g.InsertEvent(context.Background(), task, "Nowhere/Zone"); err == nil {
		t.Fatal("expected zone error")
	}
}
