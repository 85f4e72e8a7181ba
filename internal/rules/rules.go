// Package rules supplies the free-form planning rules injected into the
// generation prompt.
package rules

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when a source is missing required settings.
var ErrNotConfigured = errors.New("rules source not configured")

// Source returns the current rules text. An empty string means no rules.
type Source interface {
	FetchRules(ctx context.Context) (string, error)
}

// Empty is a Source with no rules.
type Empty struct{}

func (Empty) FetchRules(context.Context) (string, error) { return "", nil }
