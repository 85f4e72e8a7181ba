package calendar

import (
	"context"
	"time"

	"day-planner/internal/busy"
	"day-planner/internal/model"
	"day-planner/pkg/gcalendar"
	pkgLog "day-planner/pkg/log"
)

const sourceGoogle = "google calendar"

// GoogleAPI is the subset of *gcalendar.Client used by Google.
type GoogleAPI interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error)
}

// Google reads and writes one Google calendar.
type Google struct {
	l          pkgLog.Logger
	api        GoogleAPI
	calendarID string
}

// NewGoogle creates a Google calendar collaborator.
func NewGoogle(l pkgLog.Logger, api GoogleAPI, calendarID string) *Google {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &Google{l: l, api: api, calendarID: calendarID}
}

// ListEvents returns the calendar's events in [timeMin, timeMax] as raw events.
func (g *Google) ListEvents(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.RawCalendarEvent, error) {
	events, err := g.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: g.calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
		TimeZone:   zone,
	})
	if err != nil {
		g.l.Warnf(ctx, "calendar.Google.ListEvents: %v", err)
		return nil, &Error{Source: sourceGoogle, Message: gcalendar.APIMessage(err), Err: err}
	}

	out := make([]model.RawCalendarEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, model.RawCalendarEvent{
			ID:      ev.ID,
			Summary: ev.Summary,
			Start:   rawTime(ev.Start),
			End:     rawTime(ev.End),
		})
	}
	g.l.Debugf(ctx, "calendar.Google.ListEvents: %d events", len(out))
	return out, nil
}

// InsertEvent creates a timed event for task. Start and end are absolute
// instants resolved in zone; the zone is attached for display.
func (g *Google) InsertEvent(ctx context.Context, task model.PlannedTask, zone string) (string, error) {
	iv, err := busy.TaskToInterval(task, zone)
	if err != nil {
		return "", err
	}

	req := gcalendar.InsertEventRequest{
		CalendarID: g.calendarID,
		Summary:    task.Title,
		StartTime:  iv.StartUTC,
		EndTime:    iv.EndUTC,
		TimeZone:   zone,
	}
	if task.Notes != nil {
		req.Description = *task.Notes
	}

	created, err := g.api.InsertEvent(ctx, req)
	if err != nil {
		return "", &Error{Source: sourceGoogle, Message: gcalendar.APIMessage(err), Err: err}
	}
	return created.ID, nil
}

func rawTime(t gcalendar.EventTime) *model.EventTime {
	if t.DateTime == "" && t.Date == "" {
		return nil
	}
	return &model.EventTime{DateTime: t.DateTime, Date: t.Date}
}
