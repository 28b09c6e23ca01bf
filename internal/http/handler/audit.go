package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/service"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List returns the caller's tenant audit trail, newest first. Platform
// operators may name any tenant via the tenant_id query parameter.
func (h *AuditHandler) List(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	var tenantID int64
	if raw := c.Query("tenant_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant_id"})
			return
		}
		tenantID = parsed
	} else if actor.ActiveTenantID != nil {
		tenantID = *actor.ActiveTenantID
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant_id is required"})
		return
	}

	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = int32(parsed)
	}

	logs, err := h.auditService.ListByTenant(c.Request.Context(), actor, tenantID, limit)
	if err != nil {
		notFoundOr(c, err, "failed to list audit logs")
		return
	}

	resp := make([]dto.AuditLogResponse, 0, len(logs))
	for _, entry := range logs {
		resp = append(resp, dto.ToAuditLogResponse(entry))
	}
	c.JSON(http.StatusOK, gin.H{"audit_logs": resp})
}
