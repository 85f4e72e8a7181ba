package calendar

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"day-planner/internal/model"
	"day-planner/pkg/datemath"
	pkgLog "day-planner/pkg/log"
)

const (
	sourceICS       = "ics feed"
	icsDateLayout   = "20060102"
	icsFloatLayout  = "20060102T150405"
	maxICSBodyBytes = 10 << 20
	defaultTimeout  = 15 * time.Second
)

// ICS reads busy time from subscribed iCalendar feeds. Recurrence rules are
// not expanded: only the first occurrence of a recurring event is reported.
type ICS struct {
	l      pkgLog.Logger
	client *http.Client
	urls   []string
}

// NewICS creates a feed reader for urls.
func NewICS(l pkgLog.Logger, urls []string, timeout time.Duration) *ICS {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ICS{
		l:      l,
		client: &http.Client{Timeout: timeout},
		urls:   urls,
	}
}

// ListEvents fetches every feed and returns the events overlapping
// [timeMin, timeMax]. Any feed failure aborts the listing.
func (s *ICS) ListEvents(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.RawCalendarEvent, error) {
	minDate, _, err := datemath.FormatInZone(timeMin, zone)
	if err != nil {
		return nil, err
	}
	maxDate, _, err := datemath.FormatInZone(timeMax, zone)
	if err != nil {
		return nil, err
	}

	var out []model.RawCalendarEvent
	for _, u := range s.urls {
		body, err := s.fetch(ctx, u)
		if err != nil {
			s.l.Warnf(ctx, "calendar.ICS.ListEvents: fetch %s: %v", redactURL(u), err)
			return nil, &Error{Source: sourceICS, Message: "failed to fetch calendar feed", Err: err}
		}

		cal, err := ical.ParseCalendar(bytes.NewReader(body))
		if err != nil {
			s.l.Warnf(ctx, "calendar.ICS.ListEvents: parse %s: %v", redactURL(u), err)
			return nil, &Error{Source: sourceICS, Message: "calendar feed is not valid iCalendar", Err: err}
		}

		for _, ve := range cal.Events() {
			ev, ok := parseVEvent(ve, zone)
			if !ok {
				continue
			}
			if !inWindow(ev, timeMin, timeMax, minDate, maxDate) {
				continue
			}
			out = append(out, ev)
		}
	}

	s.l.Debugf(ctx, "calendar.ICS.ListEvents: %d events from %d feeds", len(out), len(s.urls))
	return out, nil
}

func (s *ICS) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxICSBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errors.New("empty ICS body")
	}
	return body, nil
}

// parseVEvent maps a VEVENT to a raw event. All-day events keep their dates;
// timed events are rendered as RFC3339 instants. Cancelled events and events
// without a usable start/end are dropped.
func parseVEvent(ve *ical.VEvent, zone string) (model.RawCalendarEvent, bool) {
	var ev model.RawCalendarEvent

	if p := ve.GetProperty(ical.ComponentPropertyStatus); p != nil && strings.EqualFold(p.Value, "CANCELLED") {
		return ev, false
	}
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		ev.ID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		ev.Summary = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return ev, false
	}

	if isAllDay(dtStart) {
		raw := strings.TrimSpace(dtStart.Value)
		if len(raw) < len(icsDateLayout) {
			return ev, false
		}
		start, err := time.Parse(icsDateLayout, raw[:len(icsDateLayout)])
		if err != nil {
			return ev, false
		}
		end := start.AddDate(0, 0, 1)
		if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
			if t, err := time.Parse(icsDateLayout, strings.TrimSpace(dtEnd.Value)); err == nil {
				end = t
			}
		}
		ev.Start = &model.EventTime{Date: start.Format(datemath.DateFormatISO)}
		ev.End = &model.EventTime{Date: end.Format(datemath.DateFormatISO)}
		return ev, true
	}

	start, err := timedValue(dtStart, zone, func() (time.Time, error) { return ve.GetStartAt() })
	if err != nil {
		return ev, false
	}
	dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd)
	if dtEnd == nil {
		return ev, false
	}
	end, err := timedValue(dtEnd, zone, func() (time.Time, error) { return ve.GetEndAt() })
	if err != nil {
		return ev, false
	}

	ev.Start = &model.EventTime{DateTime: start.UTC().Format(time.RFC3339)}
	ev.End = &model.EventTime{DateTime: end.UTC().Format(time.RFC3339)}
	return ev, true
}

// timedValue resolves a DATE-TIME property. UTC and TZID values use the
// library's parsing; floating values are read as wall-clock time in zone.
func timedValue(prop *ical.IANAProperty, zone string, libParse func() (time.Time, error)) (time.Time, error) {
	val := strings.TrimSpace(prop.Value)
	if strings.HasSuffix(val, "Z") || len(prop.ICalParameters["TZID"]) > 0 {
		return libParse()
	}

	wall, err := time.Parse(icsFloatLayout, val)
	if err != nil {
		return time.Time{}, err
	}
	return datemath.ZonedToUTC(wall.Format(datemath.DateFormatISO), wall.Format(datemath.TimeFormatLong), zone)
}

func isAllDay(prop *ical.IANAProperty) bool {
	if vs := prop.ICalParameters["VALUE"]; len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(prop.Value, "T")
}

// inWindow keeps events overlapping the window. All-day events compare by
// local date, with an exclusive end date.
func inWindow(ev model.RawCalendarEvent, timeMin, timeMax time.Time, minDate, maxDate string) bool {
	if ev.Start.Date != "" {
		return ev.Start.Date <= maxDate && ev.End.Date > minDate
	}
	start, err1 := time.Parse(time.RFC3339, ev.Start.DateTime)
	end, err2 := time.Parse(time.RFC3339, ev.End.DateTime)
	if err1 != nil || err2 != nil {
		return false
	}
	return !start.After(timeMax) && end.After(timeMin)
}

func redactURL(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i] + "?..."
	}
	return u
}
