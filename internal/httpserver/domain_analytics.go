package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "smarttaskai/internal/analytics/delivery/http"
	analyticsUC "smarttaskai/internal/analytics/usecase"
	"smarttaskai/internal/middleware"
	taskRepo "smarttaskai/internal/task/repository"
)

// setupAnalyticsDomain initializes the analytics domain and registers
// its routes. It reads from the task store; it never writes.
func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks taskRepo.Repository) {
	uc := analyticsUC.New(srv.l, tasks)
	h := analyticsHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/analytics
	analyticsHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analytics domain registered")
}
