package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"day-planner/pkg/log"
	"day-planner/pkg/notion"
)

// PageReader fetches the block tree of a Notion page.
type PageReader interface {
	FetchTree(ctx context.Context, blockID string) ([]notion.Block, error)
}

// Notion renders a Notion page as plain text and caches it for ttl.
type Notion struct {
	l        log.Logger
	client   PageReader
	pageID   string
	maxChars int
	cache    *expirable.LRU[string, string]
}

func NewNotion(l log.Logger, client PageReader, pageID string, maxChars int, ttl time.Duration) (*Notion, error) {
	if client == nil || pageID == "" {
		return nil, fmt.Errorf("notion rules: %w", ErrNotConfigured)
	}
	n := &Notion{
		l:        l,
		client:   client,
		pageID:   pageID,
		maxChars: maxChars,
	}
	if ttl > 0 {
		n.cache = expirable.NewLRU[string, string](1, nil, ttl)
	}
	return n, nil
}

func (n *Notion) FetchRules(ctx context.Context) (string, error) {
	if n.cache != nil {
		if text, ok := n.cache.Get(n.pageID); ok {
			return text, nil
		}
	}

	blocks, err := n.client.FetchTree(ctx, n.pageID)
	if err != nil {
		n.l.Warnf(ctx, "rules.Notion.FetchRules: page %s: %v", n.pageID, err)
		return "", fmt.Errorf("failed to fetch notion rules: %w", err)
	}

	text := notion.Truncate(notion.PlainText(blocks), n.maxChars)
	if n.cache != nil {
		n.cache.Add(n.pageID, text)
	}
	n.l.Debugf(ctx, "rules.Notion.FetchRules: %d blocks, %d chars", len(blocks), len(text))
	return text, nil
}
