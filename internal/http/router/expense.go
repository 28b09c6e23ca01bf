package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
)

func ExpenseRouter(rg *gin.RouterGroup, h *handler.ExpenseHandler) {
	rg.POST("", h.Submit)
	rg.GET("/mine", h.ListMine)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)

	approve := rg.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	approve.POST("/:id/decide", h.Decide)

	reimburse := rg.Group("", middleware.RequireRole(model.RoleAdmin))
	reimburse.POST("/:id/reimburse", h.MarkReimbursed)
}
