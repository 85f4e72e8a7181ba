// Package generator drafts plans with the configured LLM providers.
package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"day-planner/internal/planner"
	"day-planner/pkg/datemath"
	"day-planner/pkg/llmprovider"
	"day-planner/pkg/log"
)

// ContentGenerator is satisfied by *llmprovider.Manager.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implGenerator struct {
	l   log.Logger
	llm ContentGenerator
}

// New creates a planner.Generator backed by llm.
func New(l log.Logger, llm ContentGenerator) *implGenerator {
	return &implGenerator{l: l, llm: llm}
}

// GeneratePlan returns the model's raw answer; validation happens upstream.
func (g *implGenerator) GeneratePlan(ctx context.Context, req planner.GenerateRequest) (string, error) {
	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		System:      SystemPrompt + "\n\n" + SchemaInstructions,
		Prompt:      buildPrompt(req),
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		return "", fmt.Errorf("generate plan: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("generate plan: empty response from %s", resp.ProviderName)
	}
	g.l.Debugf(ctx, "generator.GeneratePlan: provider=%s model=%s chars=%d", resp.ProviderName, resp.ModelName, len(text))
	return text, nil
}

func buildPrompt(req planner.GenerateRequest) string {
	busy := strings.TrimSpace(req.BusySummary)
	if busy == "" {
		busy = "- none"
	}
	rules := strings.TrimSpace(req.Rules)
	if rules == "" {
		rules = "(none)"
	}
	return fmt.Sprintf(UserPromptTemplate,
		req.UserText,
		req.Today,
		weekday(req.Today),
		req.TimeZone,
		req.NowLocal,
		busy,
		rules,
	)
}

func weekday(date string) string {
	d, err := time.Parse(datemath.DateFormatISO, date)
	if err != nil {
		return "unknown weekday"
	}
	return d.Weekday().String()
}
