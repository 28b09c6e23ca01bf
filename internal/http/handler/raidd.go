package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

type RaiddHandler struct {
	raiddService service.RaiddService
}

func NewRaiddHandler(raiddService service.RaiddService) *RaiddHandler {
	return &RaiddHandler{raiddService: raiddService}
}

func (h *RaiddHandler) Create(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateRaiddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.raiddService.Create(c.Request.Context(), actor, &model.RaiddEntry{
		ProjectID: projectID,
		Kind:      model.RaiddKind(req.Kind),
		Title:     req.Title,
		Detail:    req.Detail,
		Severity:  model.RaiddSeverity(req.Severity),
		Status:    model.RaiddStatusOpen,
		OwnerID:   req.OwnerID,
		DueOn:     req.DueOn,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
			return
		}
		notFoundOr(c, err, "failed to create entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRaiddResponse(entry))
}

func (h *RaiddHandler) Get(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "entryId")
	if !ok {
		return
	}

	entry, err := h.raiddService.Get(c.Request.Context(), actor, entryID)
	if err != nil {
		notFoundOr(c, err, "failed to get entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToRaiddResponse(entry))
}

func (h *RaiddHandler) ListByProject(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var kind *model.RaiddKind
	if raw := c.Query("kind"); raw != "" {
		k := model.RaiddKind(raw)
		kind = &k
	}

	entries, err := h.raiddService.ListByProject(c.Request.Context(), actor, projectID, kind)
	if err != nil {
		if errors.Is(err, service.ErrInvalidKind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid kind"})
			return
		}
		notFoundOr(c, err, "failed to list entries")
		return
	}

	resp := make([]*dto.RaiddResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.ToRaiddResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"entries": resp})
}

func (h *RaiddHandler) Update(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "entryId")
	if !ok {
		return
	}

	var req dto.UpdateRaiddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.raiddService.Update(c.Request.Context(), actor, &model.RaiddEntry{
		ID:       entryID,
		Title:    req.Title,
		Detail:   req.Detail,
		Severity: model.RaiddSeverity(req.Severity),
		Status:   model.RaiddStatus(req.Status),
		OwnerID:  req.OwnerID,
		DueOn:    req.DueOn,
	})
	if err != nil {
		notFoundOr(c, err, "failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToRaiddResponse(entry))
}

func (h *RaiddHandler) Delete(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "entryId")
	if !ok {
		return
	}

	if err := h.raiddService.Delete(c.Request.Context(), actor, entryID); err != nil {
		notFoundOr(c, err, "failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}
