// Package notion is a minimal client for reading Notion page content.
package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	APIVersion     = "2022-06-28"
	pageSize       = 100
	defaultTimeout = 20 * time.Second
)

// Config holds Notion client configuration.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client is the HTTP wrapper for the Notion REST API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Notion client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("notion: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}, nil
}

// ListChildren fetches one page of a block's children.
func (c *Client) ListChildren(ctx context.Context, blockID, cursor string) (*BlockList, error) {
	q := url.Values{}
	q.Set("page_size", fmt.Sprint(pageSize))
	if cursor != "" {
		q.Set("start_cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/blocks/%s/children?%s", c.baseURL, url.PathEscape(blockID), q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list children request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Notion-Version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call notion children API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("notion API error %d (%s): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return nil, fmt.Errorf("notion API error %d: %s", resp.StatusCode, string(raw))
	}

	var list BlockList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode notion children response: %w", err)
	}
	return &list, nil
}

// FetchTree returns every child block of blockID, following pagination and
// recursing into blocks that have children.
func (c *Client) FetchTree(ctx context.Context, blockID string) ([]Block, error) {
	var blocks []Block
	cursor := ""
	for {
		page, err := c.ListChildren(ctx, blockID, cursor)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, page.Results...)
		if !page.HasMore || page.NextCursor == nil || *page.NextCursor == "" {
			break
		}
		cursor = *page.NextCursor
	}

	for i := range blocks {
		if !blocks[i].HasChildren {
			continue
		}
		children, err := c.FetchTree(ctx, blocks[i].ID)
		if err != nil {
			return nil, err
		}
		blocks[i].Children = children
	}
	return blocks, nil
}
