package llmprovider

import (
	"context"
	"fmt"

	"day-planner/pkg/deepseek"
	"day-planner/pkg/gemini"
	"day-planner/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &qwen.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONOutput:  req.JSONOutput,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usageOf(resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.Usage.TotalTokens),
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: req.System})
	}
	dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "user", Content: req.Prompt})
	if req.JSONOutput {
		dsReq.ResponseFormat = &deepseek.ResponseFormat{Type: deepseek.FormatJSONObject}
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage:        usageOf(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns the provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns the model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func usageOf(in, out, total int) *Usage {
	return &Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}
