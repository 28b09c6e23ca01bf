package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, authMw *middleware.AuthMiddleware) {
	rg.POST("/login", h.Login)
	rg.GET("/sso", h.SSOLogin)
	rg.GET("/sso/callback", h.SSOCallback)

	authed := rg.Group("", authMw.RequireAuth())
	authed.GET("/me", h.Me)
	authed.POST("/logout", h.Logout)
	authed.GET("/sessions", h.ListSessions)
	authed.POST("/sessions/revoke", h.RevokeSessions)
}
