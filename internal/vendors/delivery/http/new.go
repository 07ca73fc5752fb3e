package http

import (
	"procurement-srv/internal/middleware"
	"procurement-srv/internal/vendors"
	"procurement-srv/pkg/discord"
	"procurement-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the vendor HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      vendor.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc vendor.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
