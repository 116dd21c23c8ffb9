package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
	"smarttaskai/pkg/response"
)

// Plan godoc
// @Summary     Get the day plan
// @Description Builds the plan for a date: due tasks with best-time slots, high-priority focus list, overdue list and advice.
// @Tags        Planner
// @Produce     json
// @Param       date query string false "Plan date (YYYY-MM-DD, default today)"
// @Success     200 {object} planResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/planner [GET]
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	req := planReq{Date: c.Query("date")}

	output, err := h.uc.GetPlan(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetPlan: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPlanResp(output))
}

// Sync godoc
// @Summary     Sync the day plan to Google Calendar
// @Description Creates one calendar event per pending task due on the selected date.
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body syncReq true "Day to sync"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Calendar sync not configured"
// @Security    BearerAuth
// @Router      /api/v1/planner/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncToCalendar(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncToCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSyncResp(output))
}
