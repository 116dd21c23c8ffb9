package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "smarttaskai/internal/assistant/delivery/http"
	assistantUC "smarttaskai/internal/assistant/usecase"
	"smarttaskai/internal/middleware"
	"smarttaskai/internal/task"
	taskRepo "smarttaskai/internal/task/repository"
)

// setupAssistantDomain initializes the assistant domain and registers
// its routes. Task creation goes through the task use case so it shares
// the form path's validation.
func (srv *HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks taskRepo.Repository, taskUC task.UseCase) {
	uc := assistantUC.New(srv.l, srv.gen, tasks, taskUC)
	h := assistantHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/assistant
	assistantHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
}
