package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	planner := rg.Group("/planner")
	{
		planner.GET("", mw.Auth(), h.Plan)
		planner.POST("/sync", mw.Auth(), h.Sync)
	}
}
