package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/:id", h.Get)

	admin := rg.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.POST("", h.Create)
	admin.GET("/tenant/:tenantId", h.ListByTenant)
	admin.PUT("/:id", h.UpdateProfile)
	admin.POST("/:id/role", h.ChangeRole)
	admin.POST("/:id/deactivate", h.Deactivate)
}
