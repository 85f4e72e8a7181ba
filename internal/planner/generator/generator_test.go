package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"day-planner/internal/planner"
	"day-planner/pkg/llmprovider"
	"day-planner/pkg/log"
)

type fakeLLM struct {
	got  *llmprovider.Request
	resp *llmprovider.Response
	err  error
}

func (f *fakeLLM) GenerateContent(_ context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestGeneratePlan(t *testing.T) {
	llm := &fakeLLM{resp: &llmprovider.Response{Text: "  {\"tasks\":[]}\n", ProviderName: "gemini"}}
	g := New(log.NewNop(), llm)

	out, err := g.GeneratePlan(context.Background(), planner.GenerateRequest{
		UserText:    "gym, groceries",
		NowLocal:    "2024-05-01 09:00",
		Today:       "2024-05-01",
		TimeZone:    "Asia/Ho_Chi_Minh",
		BusySummary: "- 09:00-10:00 Standup",
		Rules:       "# Rules",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"tasks":[]}` {
		t.Errorf("unexpected output %q", out)
	}

	if !llm.got.JSONOutput || !strings.HasPrefix(llm.got.System, SystemPrompt) {
		t.Errorf("unexpected request: %+v", llm.got)
	}
	for _, want := range []string{
		"User input:\ngym, groceries",
		"Today (local to user): 2024-05-01 (Wednesday, time zone: Asia/Ho_Chi_Minh)",
		"Current local time: 2024-05-01 09:00",
		"- 09:00-10:00 Standup",
		"Planner rules (from Notion):\n# Rules",
	} {
		if !strings.Contains(llm.got.Prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, llm.got.Prompt)
		}
	}
}

func TestGeneratePlan_Defaults(t *testing.T) {
	prompt := buildPrompt(planner.GenerateRequest{Today: "bad"})
	if !strings.Contains(prompt, "unknown weekday") || !strings.Contains(prompt, "- none") || !strings.Contains(prompt, "(none)") {
		t.Errorf("unexpected prompt:\n%s", prompt)
	}
}

func TestGeneratePlan_Errors(t *testing.T) {
	g := New(log.NewNop(), &fakeLLM{err: errors.New("all providers failed")})
	if _, err := g.GeneratePlan(context.Background(), planner.GenerateRequest{}); err == nil {
		t.Error("expected provider error")
	}

	g = New(log.NewNop(), &fakeLLM{resp: &llmprovider.Response{Text: "  ", ProviderName: "qwen"}})
	if _, err := g.GeneratePlan(context.Background(), planner.GenerateRequest{}); err == nil || !strings.Contains(err.Error(), "qwen") {
		t.Errorf("expected empty response error, got %v", err)
	}
}
