package http

import (
	"procurement-srv/internal/analysis"
	"procurement-srv/internal/middleware"
	"procurement-srv/pkg/discord"
	"procurement-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the analysis HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
