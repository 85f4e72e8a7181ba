package model

// Difficulty is the effort class of a planned task.
type Difficulty string

const (
	DifficultySimple Difficulty = "simple"
	DifficultyNormal Difficulty = "normal"
	DifficultyDeep   Difficulty = "deep"
)

const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 8 * 60
)

// PlannedTask is one candidate or confirmed task on a single local day.
type PlannedTask struct {
	Title           string     `json:"title"            validate:"required"`
	Date            string     `json:"date"             validate:"required,datetime=2006-01-02"`
	StartTime       string     `json:"start_time"       validate:"required,datetime=15:04"`
	DurationMinutes int        `json:"duration_minutes" validate:"min=5,max=480"`
	Difficulty      Difficulty `json:"difficulty"       validate:"required,oneof=simple normal deep"`
	Notes           *string    `json:"notes"`
}

// Plan is the ordered list of tasks produced by one generation request.
type Plan struct {
	Tasks []PlannedTask `json:"tasks" validate:"required,dive"`
}
