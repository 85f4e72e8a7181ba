package notion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func para(id, text string, hasChildren bool) string {
	hc := "false"
	if hasChildren {
		hc = "true"
	}
	return `{"id":"` + id + `","type":"paragraph","has_children":` + hc + `,"paragraph":{"rich_text":[{"plain_text":"` + text + `"}]}}`
}

func TestFetchTreeAndRender(t *testing.T) {
	var sawCursor bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" || r.Header.Get("Notion-Version") != APIVersion {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"object":"error","code":"unauthorized","message":"API token is invalid."}`))
			return
		}
		if r.URL.Query().Get("page_size") != "100" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch r.URL.Path {
		case "/blocks/page/children":
			if r.URL.Query().Get("start_cursor") == "c2" {
				sawCursor = true
				w.Write([]byte(`{"results":[
					{"id":"b3","type":"bulleted_list_item","has_children":true,"bulleted_list_item":{"rich_text":[{"plain_text":"Deep work "},{"plain_text":"before noon"}]}},
					{"id":"b4","type":"to_do","has_children":false,"to_do":{"rich_text":[{"plain_text":"Review inbox"}],"checked":false}},
					{"id":"b5","type":"image","has_children":false,"image":{}}
				],"has_more":false,"next_cursor":null}`))
				return
			}
			w.Write([]byte(`{"results":[
				{"id":"b1","type":"heading_1","has_children":false,"heading_1":{"rich_text":[{"plain_text":"Rules"}]}},
				` + para("b2", "Keep mornings free", false) + `
			],"has_more":true,"next_cursor":"c2"}`))
		case "/blocks/b3/children":
			w.Write([]byte(`{"results":[
				{"id":"n1","type":"numbered_list_item","has_children":false,"numbered_list_item":{"rich_text":[{"plain_text":"Max 3 hours"}]}},
				` + para("n2", "", false) + `
			],"has_more":false,"next_cursor":null}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"object":"error","code":"object_not_found","message":"Could not find block."}`))
		}
	}))
	defer ts.Close()

	c, err := New(Config{APIKey: "secret", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	blocks, err := c.FetchTree(context.Background(), "page")
	if err != nil {
		t.Fatalf("FetchTree: %v", err)
	}
	if !sawCursor {
		t.Error("pagination cursor was not followed")
	}
	if len(blocks) != 5 || len(blocks[2].Children) != 2 {
		t.Fatalf("unexpected tree: %d blocks", len(blocks))
	}

	want := strings.Join([]string{
		"# Rules",
		"Keep mornings free",
		"- Deep work before noon",
		"  1) Max 3 hours",
		"- [ ] Review inbox",
	}, "\n")
	if got := PlainText(blocks); got != want {
		t.Errorf("PlainText =\n%s\nwant\n%s", got, want)
	}

	_, err = c.FetchTree(context.Background(), "missing")
	if err == nil || !strings.Contains(err.Error(), "Could not find block.") {
		t.Errorf("expected API message in error, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"ngày mới", 4, "ngày"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error")
	}
}
