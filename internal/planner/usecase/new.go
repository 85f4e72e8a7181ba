package usecase

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"day-planner/internal/commit"
	"day-planner/internal/planner"
	"day-planner/pkg/log"
)

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	l              log.Logger
	calendar       planner.Calendar
	generator      planner.Generator
	rules          planner.RulesSource
	sequencer      *commit.Sequencer
	validate       *validator.Validate
	maxInputLength int
	now            func() time.Time
}

// New creates a new planner UseCase implementation.
func New(
	l log.Logger,
	calendar planner.Calendar,
	generator planner.Generator,
	rules planner.RulesSource,
	sequencer *commit.Sequencer,
	maxInputLength int,
) *implUseCase {
	return &implUseCase{
		l:              l,
		calendar:       calendar,
		generator:      generator,
		rules:          rules,
		sequencer:      sequencer,
		validate:       newValidator(),
		maxInputLength: maxInputLength,
		now:            time.Now,
	}
}

// newValidator reports field errors by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
