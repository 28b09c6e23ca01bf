package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
)

func TimeEntryRouter(rg *gin.RouterGroup, h *handler.TimeEntryHandler) {
	rg.POST("", h.Submit)
	rg.GET("/mine", h.ListMine)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)

	approve := rg.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	approve.POST("/:id/decide", h.Decide)
}
