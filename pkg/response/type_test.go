package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"day-planner/pkg/response"
)

func TestInstantMarshalJSON(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)

	b, err := json.Marshal(response.Instant(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling Instant: %v", err)
	}

	if got, want := string(b), `"2024-05-01T08:30:00Z"`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
