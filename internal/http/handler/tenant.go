package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

type TenantHandler struct {
	tenantService service.TenantService
}

func NewTenantHandler(tenantService service.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

func (h *TenantHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	actor, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Create(ctx, actor, req.Name, req.Slug)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "tenant with this slug already exists"})
			return
		}
		slog.ErrorContext(ctx, "failed to create tenant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tenant"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

func (h *TenantHandler) Get(c *gin.Context) {
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), tenantID)
	if err != nil {
		notFoundOr(c, err, "failed to get tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.tenantService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tenants"})
		return
	}

	resp := make([]*dto.TenantResponse, 0, len(tenants))
	for i := range tenants {
		resp = append(resp, dto.ToTenantResponse(&tenants[i]))
	}
	c.JSON(http.StatusOK, gin.H{"tenants": resp})
}

func (h *TenantHandler) Update(c *gin.Context) {
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), tenantID, req.Name, model.TenantStatus(req.Status))
	if err != nil {
		notFoundOr(c, err, "failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

func (h *TenantHandler) Delete(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	tenantID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), actor, tenantID); err != nil {
		notFoundOr(c, err, "failed to delete tenant")
		return
	}
	c.Status(http.StatusNoContent)
}
