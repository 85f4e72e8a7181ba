package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newQwenImpl creates a new Qwen implementation
func newQwenImpl(cfg Config) *qwenImpl {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, fmt.Errorf("qwen: prompt is required")
	}

	body, err := json.Marshal(q.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		q.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}

	return transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

// transformRequest converts request to OpenAI-compatible format
func (q *qwenImpl) transformRequest(req *Request) *openAIRequest {
	out := &openAIRequest{
		Model:       q.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, 2),
	}

	if req.System != "" {
		out.Messages = append(out.Messages, openAIMessage{Role: "system", Content: req.System})
	}
	out.Messages = append(out.Messages, openAIMessage{Role: "user", Content: req.Prompt})

	if req.JSONOutput {
		out.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	return out
}

func transformResponse(resp *openAIResponse) *Response {
	out := &Response{
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}
	out.Text = resp.Choices[0].Message.Content
	out.FinishReason = resp.Choices[0].FinishReason
	return out
}
