// Package commit writes approved tasks to a calendar one at a time.
package commit

import (
	"context"
	"fmt"

	"day-planner/internal/model"
	pkgLog "day-planner/pkg/log"

	"golang.org/x/time/rate"
)

// InsertFunc creates one calendar event for task and returns its id.
type InsertFunc func(ctx context.Context, task model.PlannedTask, zone string) (string, error)

// Sequencer inserts tasks strictly in order, awaiting each call before the next.
type Sequencer struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

// New creates a Sequencer. A positive ratePerSec paces insertions; zero or
// negative leaves them unpaced.
func New(l pkgLog.Logger, ratePerSec float64) *Sequencer {
	s := &Sequencer{l: l}
	if ratePerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}
	return s
}

// CommitTasks attempts every task and returns one outcome per task in input order.
// A failed insert is recorded and the sequence continues. Cancellation of ctx
// does not stop a started sequence.
func (s *Sequencer) CommitTasks(ctx context.Context, tasks []model.PlannedTask, zone string, insert InsertFunc) model.CommitResult {
	ctx = context.WithoutCancel(ctx)

	result := model.CommitResult{
		Results: make([]model.TaskOutcome, 0, len(tasks)),
		Errors:  []string{},
	}

	for i, task := range tasks {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				s.l.Warnf(ctx, "commit.CommitTasks: limiter wait failed: %v", err)
			}
		}

		id, err := insert(ctx, task, zone)
		if err != nil {
			msg := fmt.Sprintf("%s: %v", task.Title, err)
			s.l.Warnf(ctx, "commit.CommitTasks: task %d %q failed: %v", i, task.Title, err)
			result.Results = append(result.Results, model.TaskOutcome{Task: task, Error: err.Error()})
			result.Errors = append(result.Errors, msg)
			continue
		}

		result.Results = append(result.Results, model.TaskOutcome{Task: task, OK: true, EventID: id})
		result.CreatedCount++
	}

	s.l.Infof(ctx, "commit.CommitTasks: created %d of %d events", result.CreatedCount, len(tasks))
	return result
}
