package rules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"day-planner/pkg/log"
	"day-planner/pkg/notion"
)

type fakePageReader struct {
	calls  int
	blocks []notion.Block
	err    error
}

func (f *fakePageReader) FetchTree(_ context.Context, _ string) ([]notion.Block, error) {
	f.calls++
	return f.blocks, f.err
}

func heading(text string) notion.Block {
	var b notion.Block
	_ = b.UnmarshalJSON([]byte(`{"id":"h","type":"heading_2","heading_2":{"rich_text":[{"plain_text":"` + text + `"}]}}`))
	return b
}

func TestNotion_CachesWithinTTL(t *testing.T) {
	reader := &fakePageReader{blocks: []notion.Block{heading("Focus blocks")}}
	src, err := NewNotion(log.NewNop(), reader, "page-1", 100, time.Minute)
	if err != nil {
		t.Fatalf("NewNotion: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := src.FetchRules(context.Background())
		if err != nil {
			t.Fatalf("FetchRules: %v", err)
		}
		if got != "## Focus blocks" {
			t.Errorf("got %q", got)
		}
	}
	if reader.calls != 1 {
		t.Errorf("expected 1 upstream call, got %d", reader.calls)
	}
}

func TestNotion_NoCacheAndTruncate(t *testing.T) {
	reader := &fakePageReader{blocks: []notion.Block{heading("abcdefghij")}}
	src, _ := NewNotion(log.NewNop(), reader, "page-1", 6, 0)

	got, _ := src.FetchRules(context.Background())
	_, _ = src.FetchRules(context.Background())
	if got != "## abc" {
		t.Errorf("expected truncated text, got %q", got)
	}
	if reader.calls != 2 {
		t.Errorf("expected 2 upstream calls without cache, got %d", reader.calls)
	}
}

func TestNotion_ErrorNotCached(t *testing.T) {
	reader := &fakePageReader{err: errors.New("boom")}
	src, _ := NewNotion(log.NewNop(), reader, "page-1", 100, time.Minute)

	if _, err := src.FetchRules(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	reader.err = nil
	reader.blocks = []notion.Block{heading("ok")}
	got, err := src.FetchRules(context.Background())
	if err != nil || got != "## ok" {
		t.Errorf("expected recovery after error, got %q, %v", got, err)
	}
}

func TestNewNotion_RequiresPage(t *testing.T) {
	_, err := NewNotion(log.NewNop(), &fakePageReader{}, "", 100, 0)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.md")
	if err := os.WriteFile(path, []byte("\n- No meetings after 17:00\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := NewFile(path, 0)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	got, err := src.FetchRules(context.Background())
	if err != nil {
		t.Fatalf("FetchRules: %v", err)
	}
	if got != "- No meetings after 17:00" {
		t.Errorf("got %q", got)
	}

	missing, _ := NewFile(filepath.Join(t.TempDir(), "nope.md"), 0)
	if _, err := missing.FetchRules(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := NewFile(" ", 0); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestEmpty(t *testing.T) {
	got, err := Empty{}.FetchRules(context.Background())
	if got != "" || err != nil {
		t.Errorf("got %q, %v", got, err)
	}
}
