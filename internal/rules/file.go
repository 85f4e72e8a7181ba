package rules

import (
	"context"
	"fmt"
	"os"
	"strings"

	"day-planner/pkg/notion"
)

// File reads rules from a local text file on every call, so edits apply
// without a restart.
type File struct {
	path     string
	maxChars int
}

func NewFile(path string, maxChars int) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("rules file: %w", ErrNotConfigured)
	}
	return &File{path: path, maxChars: maxChars}, nil
}

func (f *File) FetchRules(_ context.Context) (string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("failed to read rules file: %w", err)
	}
	return notion.Truncate(strings.TrimSpace(string(raw)), f.maxChars), nil
}
