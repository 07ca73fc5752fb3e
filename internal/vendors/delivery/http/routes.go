package http

import (
	"procurement-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/vendors", h.ListVendors)
		api.POST("/vendors/refresh", h.RefreshVendors)
		api.GET("/vendors/analytics", h.GetAnalytics)
	}
}
