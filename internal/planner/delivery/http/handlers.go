package http

import (
	"github.com/gin-gonic/gin"

	"day-planner/pkg/response"
)

// Generate godoc
// @Summary     Generate today's plan
// @Description Drafts a plan for today from free text and checks it against the calendar.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body generateReq true "Free text and IANA time zone"
// @Success     200  {object} generateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Scheduling conflict"
// @Failure     422  {object} response.Resp "Invalid generated plan"
// @Failure     502  {object} response.Resp "Calendar or generator failure"
// @Router      /api/v1/plans/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.GenerateAndValidatePlan(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateAndValidatePlan: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if out.HasConflicts() {
		response.Error(c, conflictError(h.newGenerateConflictResp(out)), nil)
		return
	}

	response.OK(c, h.newGenerateResp(out))
}

// Conflicts godoc
// @Summary     Re-check tasks for conflicts
// @Description Checks edited tasks against the live calendar and each other.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks and IANA time zone"
// @Success     200  {object} conflictReportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     502  {object} response.Resp "Calendar failure"
// @Router      /api/v1/plans/conflicts [POST]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.RevalidateConflicts(ctx, req.toRevalidateInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RevalidateConflicts: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConflictReportResp(out.Conflicts, out.SelfOverlaps))
}

// Commit godoc
// @Summary     Commit tasks to the calendar
// @Description Inserts today's tasks in order after a fresh conflict check.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body tasksReq true "Tasks and IANA time zone"
// @Success     200  {object} commitResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Scheduling conflict"
// @Failure     422  {object} response.Resp "Task outside today"
// @Failure     502  {object} response.Resp "Some or all inserts failed"
// @Failure     503  {object} response.Resp "No writable calendar"
// @Router      /api/v1/plans/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.CommitPlan(ctx, req.toCommitInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CommitPlan: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if out.Blocked() {
		response.Error(c, conflictError(newConflictReportResp(out.Conflicts, out.SelfOverlaps)), nil)
		return
	}

	resp := h.newCommitResp(out.Result)
	if failed := len(out.Result.Errors); failed > 0 {
		response.Error(c, commitFailedError(out.Result.CreatedCount, failed, resp), nil)
		return
	}

	response.OK(c, resp)
}
