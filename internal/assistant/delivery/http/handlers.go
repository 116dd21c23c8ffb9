package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
	"smarttaskai/pkg/response"
)

// Suggest godoc
// @Summary     Get an AI suggestion
// @Description Runs one of the enhance/analyze/subtasks/help features on the raw input. On model failure the response degrades to a fixed apology line.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Mode and input"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Security    BearerAuth
// @Router      /api/v1/assistant/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Insights godoc
// @Summary     Get daily planning insights
// @Description Summarizes the user's tasks and asks the model for planning advice; degrades to a local summary on model failure.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} insightsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/assistant/insights [POST]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Insights(ctx, middleware.GetScope(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInsightsResp(output))
}

// CreateTask godoc
// @Summary     Create a task from an AI response
// @Description Persists a task built from the raw input and a prior model response; numbered lines become subtasks.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Input and prior response"
// @Success     200 {object} createTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/v1/assistant/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateTaskFromResponse(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTaskFromResponse: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateTaskResp(output))
}
