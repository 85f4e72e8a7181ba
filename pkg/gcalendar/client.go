package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const statusCancelled = "cancelled"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON
// file. tokenPath is only read for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from a Service Account
// key or, failing that, from OAuth installed-app credentials plus a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// LoadToken reads an OAuth token previously saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s: %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ListEvents returns single (expanded) events overlapping [TimeMin, TimeMax),
// ordered by start time. Cancelled events are skipped.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarIDOrDefault(req.CalendarID)).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339))
	if req.TimeZone != "" {
		call = call.TimeZone(req.TimeZone)
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item == nil || item.Status == statusCancelled {
				continue
			}
			events = append(events, toEvent(item))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	return events, nil
}

// InsertEvent creates a new timed Google Calendar event.
func (c *Client) InsertEvent(ctx context.Context, req InsertEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.TimeZone,
		},
	}

	created, err := c.service.Events.Insert(calendarIDOrDefault(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	out := toEvent(created)
	return &out, nil
}

// APIMessage extracts the human-readable message of a Google API error.
// It returns "" when err does not carry one.
func APIMessage(err error) string {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return ""
	}
	if gerr.Message != "" {
		return gerr.Message
	}
	if len(gerr.Errors) > 0 {
		return gerr.Errors[0].Message
	}
	return ""
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Status:      item.Status,
	}
	if item.Start != nil {
		ev.Start = EventTime{DateTime: item.Start.DateTime, Date: item.Start.Date}
	}
	if item.End != nil {
		ev.End = EventTime{DateTime: item.End.DateTime, Date: item.End.Date}
	}
	return ev
}

func calendarIDOrDefault(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
