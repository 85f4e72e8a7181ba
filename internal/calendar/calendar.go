// Package calendar provides the list/insert collaborators the planner uses to
// read busy time and write confirmed tasks.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"day-planner/internal/model"
)

// ErrReadOnly is returned by InsertEvent when no writable calendar is configured.
var ErrReadOnly = errors.New("no writable calendar configured")

// Reader lists events overlapping a UTC window.
type Reader interface {
	ListEvents(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.RawCalendarEvent, error)
}

// Writer creates one event for a task and returns its id.
type Writer interface {
	InsertEvent(ctx context.Context, task model.PlannedTask, zone string) (string, error)
}

// Error is a collaborator failure with an optional message suitable for users.
type Error struct {
	Source  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage returns the message reported by the remote calendar, if any.
func (e *Error) UserMessage() string {
	return e.Message
}

// Composite merges several readers and forwards inserts to one writer.
type Composite struct {
	readers []Reader
	writer  Writer
}

// NewComposite builds a Composite. writer may be nil for a read-only setup.
func NewComposite(writer Writer, readers ...Reader) *Composite {
	return &Composite{readers: readers, writer: writer}
}

// ListEvents concatenates the events of every reader in registration order.
// The first reader failure aborts the listing.
func (c *Composite) ListEvents(ctx context.Context, timeMin, timeMax time.Time, zone string) ([]model.RawCalendarEvent, error) {
	var all []model.RawCalendarEvent
	for _, r := range c.readers {
		events, err := r.ListEvents(ctx, timeMin, timeMax, zone)
		if err != nil {
			return nil, err
		}
		all = append(all, events...)
	}
	return all, nil
}

// InsertEvent forwards to the configured writer.
func (c *Composite) InsertEvent(ctx context.Context, task model.PlannedTask, zone string) (string, error) {
	if c.writer == nil {
		return "", ErrReadOnly
	}
	return c.writer.InsertEvent(ctx, task, zone)
}

// Writable reports whether inserts have somewhere to go.
func (c *Composite) Writable() bool {
	return c.writer != nil
}
