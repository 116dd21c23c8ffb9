package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
	plannerHTTP "smarttaskai/internal/planner/delivery/http"
	plannerUC "smarttaskai/internal/planner/usecase"
	taskRepo "smarttaskai/internal/task/repository"
)

// setupPlannerDomain initializes the planner domain and registers its
// routes. Calendar sync stays registered without credentials; the use
// case rejects sync requests until a calendar client is configured.
func (srv *HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks taskRepo.Repository) {
	uc := plannerUC.New(srv.l, tasks, srv.calendar, srv.calendarID)
	h := plannerHTTP.New(srv.l, uc)

	// Routes: registers /api/v1/planner
	plannerHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Planner domain registered with calendar sync")
	} else {
		srv.l.Infof(ctx, "Planner domain registered")
	}
}
