package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/model"
)

func ProjectRouter(
	rg *gin.RouterGroup,
	h *handler.ProjectHandler,
	sows *handler.SowHandler,
	raidd *handler.RaiddHandler,
	timeEntries *handler.TimeEntryHandler,
	expenses *handler.ExpenseHandler,
) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/time-entries", timeEntries.ListByProject)
	rg.GET("/:id/expenses", expenses.ListByProject)

	manage := rg.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
	manage.POST("", h.Create)
	manage.PUT("/:id", h.Update)
	manage.PATCH("/:id/status", h.UpdateStatus)
	manage.DELETE("/:id", h.Delete)

	// Statements of work hang off their project.
	rg.GET("/:id/sows", sows.ListByProject)
	rg.GET("/:id/sows/:sowId", sows.Get)
	manage.POST("/:id/sows", sows.Create)
	manage.PUT("/:id/sows/:sowId", sows.Update)
	manage.PATCH("/:id/sows/:sowId/status", sows.UpdateStatus)
	manage.DELETE("/:id/sows/:sowId", sows.Delete)

	// RAIDD log entries are visible to the whole project team.
	rg.GET("/:id/raidd", raidd.ListByProject)
	rg.GET("/:id/raidd/:entryId", raidd.Get)
	rg.POST("/:id/raidd", raidd.Create)
	rg.PUT("/:id/raidd/:entryId", raidd.Update)
	manage.DELETE("/:id/raidd/:entryId", raidd.Delete)
}
