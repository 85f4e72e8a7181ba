package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/internal/middleware"
)

// RegisterRoutes maps the planner endpoints under rg. All routes are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plans := rg.Group("/plans", mw.RateLimit())
	{
		plans.POST("/generate", h.Generate)
		plans.POST("/conflicts", h.Conflicts)
		plans.POST("/commit", h.Commit)
	}
}
