package planner

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeZone      = errors.New("invalid time zone")
	ErrEmptyInput           = errors.New("missing text")
	ErrInputTooLong         = errors.New("input text too long")
	ErrInvalidTask          = errors.New("invalid task")
	ErrCalendarFetchFailed  = errors.New("failed to reach calendar")
	ErrCalendarInsertFailed = errors.New("failed to create calendar event")
	ErrNoCalendar           = errors.New("no writable calendar configured")
	ErrGenerationFailed     = errors.New("failed to generate plan")
	ErrInvalidGeneratedPlan = errors.New("generated plan is invalid")
	ErrOutOfScopeTask       = errors.New("task is outside today's plan")
)

// Error is a planner failure of a given Kind. Message, when set, is safe to
// show to users; otherwise the Kind's text is used.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf returns the planner kind carried by err, or nil.
func KindOf(err error) error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return nil
}
