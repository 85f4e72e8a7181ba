package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/planner"
	"day-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
	Conflicts(c *gin.Context)
	Commit(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          planner.UseCase
	defaultZone string
}

// New creates a new HTTP handler for the planner domain. defaultZone is used
// when a request omits time_zone.
func New(l log.Logger, uc planner.UseCase, defaultZone string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		defaultZone: defaultZone,
	}
}
