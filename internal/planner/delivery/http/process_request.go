package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the generate request body and applies the default zone.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TimeZone = h.zoneOrDefault(req.TimeZone)
	return req, nil
}

// processTasksReq binds a task list body shared by conflicts and commit.
func (h *handler) processTasksReq(c *gin.Context) (tasksReq, error) {
	var req tasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TimeZone = h.zoneOrDefault(req.TimeZone)
	return req, nil
}

func (h *handler) zoneOrDefault(zone string) string {
	if zone = strings.TrimSpace(zone); zone != "" {
		return zone
	}
	return h.defaultZone
}
