package router

import (
	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/handler"
	"loomworks.app/api-server/internal/http/middleware"
	"loomworks.app/api-server/internal/service"
	"loomworks.app/api-server/internal/session"
	"loomworks.app/api-server/internal/store"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(
	router *gin.Engine,
	services *service.Services,
	cache *session.Cache,
	sessions store.SessionStore,
	cfg RouterConfig,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	authMw := middleware.NewAuthMiddleware(cache, sessions, authService)

	authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, authMw)

	v1 := router.Group("/api/v1", authMw.RequireAuth())
	{
		tenantHandler := handler.NewTenantHandler(services.Tenants())
		TenantRouter(v1.Group("/tenants"), tenantHandler)

		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(v1.Group("/users"), userHandler)

		timeEntryHandler := handler.NewTimeEntryHandler(services.TimeEntries())
		expenseHandler := handler.NewExpenseHandler(services.Expenses())

		projectHandler := handler.NewProjectHandler(services.Projects())
		sowHandler := handler.NewSowHandler(services.Sows())
		raiddHandler := handler.NewRaiddHandler(services.Raidd())
		ProjectRouter(v1.Group("/projects"), projectHandler, sowHandler, raiddHandler, timeEntryHandler, expenseHandler)

		TimeEntryRouter(v1.Group("/time-entries"), timeEntryHandler)
		ExpenseRouter(v1.Group("/expenses"), expenseHandler)

		auditHandler := handler.NewAuditHandler(services.Audit())
		AuditRouter(v1.Group("/audit"), auditHandler)
	}
}
