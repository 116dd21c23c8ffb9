package http

import (
	"github.com/gin-gonic/gin"

	"smarttaskai/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("", mw.Auth(), h.Summary)
	}
}
