package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
	"smarttaskai/pkg/response"
)

// Summary godoc
// @Summary     Get productivity analytics
// @Description Derives completion rate, streak, weekly counts, breakdowns and recommendations from current tasks.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/analytics [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetSummary(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}
