package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
	"smarttaskai/internal/task"
	taskHTTP "smarttaskai/internal/task/delivery/http"
	taskRepo "smarttaskai/internal/task/repository"
	taskRepoPG "smarttaskai/internal/task/repository/postgrest"
	taskUC "smarttaskai/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
// The repository and use case are returned so sibling domains can read
// from the same store.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.store, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, taskRepo.Repository) {
	// 1. Repository
	repo := taskRepoPG.New(srv.store, srv.l)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc, repo
}
