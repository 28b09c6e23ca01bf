package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
)

// Tenant administration is reserved for platform operators.
func TenantRouter(rg *gin.RouterGroup, h *handler.TenantHandler) {
	rg.Use(middleware.RequirePlatformRole())

	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
