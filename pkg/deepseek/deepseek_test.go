package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateContent(t *testing.T) {
	var got Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		if got.Messages[0].Content == "fail" {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"error":{"message":"Insufficient Balance","type":"billing"}}`))
			return
		}
		w.Write([]byte(`{"model":"deepseek-chat","choices":[{"message":{"role":"assistant","content":"ok"}}],"usage":{"total_tokens":5}}`))
	}))
	defer ts.Close()

	c, err := New(Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &Request{
		Messages:       []Message{{Role: "user", Content: "hi"}},
		ResponseFormat: &ResponseFormat{Type: FormatJSONObject},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Model != DefaultModel {
		t.Errorf("model not defaulted: %q", got.Model)
	}
	if resp.Choices[0].Message.Content != "ok" || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected response: %+v", resp)
	}

	_, err = c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "fail"}}})
	if err == nil || !strings.Contains(err.Error(), "Insufficient Balance") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error")
	}
}
