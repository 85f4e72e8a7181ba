package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"day-planner/internal/model"
)

type fakeReader struct {
	events []model.RawCalendarEvent
	err    error
	calls  int
}

func (f *fakeReader) ListEvents(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.RawCalendarEvent, error) {
	f.calls++
	return f.events, f.err
}

type fakeWriter struct {
	titles []string
}

func (f *fakeWriter) InsertEvent(ctx context.Context, task model.PlannedTask, zone string) (string, error) {
	f.titles = append(f.titles, task.Title)
	return "id-" + task.Title, nil
}

func TestComposite_ListEvents(t *testing.T) {
	a := &fakeReader{events: []model.RawCalendarEvent{{ID: "a1"}, {ID: "a2"}}}
	b := &fakeReader{events: []model.RawCalendarEvent{{ID: "b1"}}}
	c := NewComposite(nil, a, b)

	got, err := c.ListEvents(context.Background(), time.Time{}, time.Time{}, "UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "a1" || got[2].ID != "b1" {
		t.Errorf("unexpected events: %+v", got)
	}

	failing := &fakeReader{err: errors.New("down")}
	after := &fakeReader{}
	c = NewComposite(nil, failing, after)
	if _, err := c.ListEvents(context.Background(), time.Time{}, time.Time{}, "UTC"); err == nil {
		t.Fatal("expected error")
	}
	if after.calls != 0 {
		t.Error("readers after a failure must not be called")
	}
}

func TestComposite_InsertEvent(t *testing.T) {
	task := model.PlannedTask{Title: "Focus"}

	if NewComposite(nil).Writable() {
		t.Error("composite without writer must not be writable")
	}
	if _, err := NewComposite(nil).InsertEvent(context.Background(), task, "UTC"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}

	w := &fakeWriter{}
	if !NewComposite(w).Writable() {
		t.Error("expected writable composite")
	}
	id, err := NewComposite(w).InsertEvent(context.Background(), task, "UTC")
	if err != nil || id != "id-Focus" || len(w.titles) != 1 {
		t.Errorf("unexpected result: %q %v %v", id, err, w.titles)
	}
}

func TestError(t *testing.T) {
	cause := errors.New("googleapi: Error 403")
	err := &Error{Source: "google calendar", Message: "Rate limit", Err: cause}
	if err.Error() != "google calendar: Rate limit" || err.UserMessage() != "Rate limit" {
		t.Errorf("unexpected error rendering: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected Unwrap to expose cause")
	}

	bare := &Error{Source: "ics feed", Err: cause}
	if bare.Error() != "ics feed: googleapi: Error 403" || bare.UserMessage() != "" {
		t.Errorf("unexpected error rendering: %q", bare.Error())
	}
}
