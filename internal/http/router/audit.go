package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
)

func AuditRouter(rg *gin.RouterGroup, h *handler.AuditHandler) {
	rg.GET("", middleware.RequireRole(model.RoleAdmin), h.List)
}
