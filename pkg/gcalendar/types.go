package gcalendar

import "time"

// DefaultCalendarID is used when a request leaves CalendarID empty.
const DefaultCalendarID = "primary"

// InsertEventRequest is the input for creating a timed Google Calendar event.
type InsertEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	TimeZone    string // e.g. "Asia/Ho_Chi_Minh"
}

// EventTime is one end of an event as returned by the API. Timed events carry
// DateTime (RFC3339), all-day events carry Date (YYYY-MM-DD).
type EventTime struct {
	DateTime string
	Date     string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Status      string
	Start       EventTime
	End         EventTime
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	TimeZone   string
	MaxResults int64
}
