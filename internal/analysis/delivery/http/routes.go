package http

import (
	"procurement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/analysis", h.Analyze)
		api.POST("/analysis/compliance", h.ComplianceReport)
		api.POST("/analysis/final-report", h.FinalReport)
	}
}
