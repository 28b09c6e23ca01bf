package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

type SowHandler struct {
	sowService service.SowService
}

func NewSowHandler(sowService service.SowService) *SowHandler {
	return &SowHandler{sowService: sowService}
}

func (h *SowHandler) Create(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateSowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	sow, err := h.sowService.Create(c.Request.Context(), actor, &model.Sow{
		ProjectID:  projectID,
		Title:      req.Title,
		ValueCents: req.ValueCents,
		Currency:   currency,
		StartsOn:   req.StartsOn,
		EndsOn:     req.EndsOn,
	})
	if err != nil {
		notFoundOr(c, err, "failed to create sow")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSowResponse(sow))
}

func (h *SowHandler) Get(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	sowID, ok := pathID(c, "sowId")
	if !ok {
		return
	}

	sow, err := h.sowService.Get(c.Request.Context(), actor, sowID)
	if err != nil {
		notFoundOr(c, err, "failed to get sow")
		return
	}
	c.JSON(http.StatusOK, dto.ToSowResponse(sow))
}

func (h *SowHandler) ListByProject(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	sows, err := h.sowService.ListByProject(c.Request.Context(), actor, projectID)
	if err != nil {
		notFoundOr(c, err, "failed to list sows")
		return
	}

	resp := make([]*dto.SowResponse, 0, len(sows))
	for i := range sows {
		resp = append(resp, dto.ToSowResponse(&sows[i]))
	}
	c.JSON(http.StatusOK, gin.H{"sows": resp})
}

func (h *SowHandler) Update(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	sowID, ok := pathID(c, "sowId")
	if !ok {
		return
	}

	var req dto.UpdateSowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sow, err := h.sowService.Update(c.Request.Context(), actor, &model.Sow{
		ID:         sowID,
		Title:      req.Title,
		ValueCents: req.ValueCents,
		Currency:   req.Currency,
		StartsOn:   req.StartsOn,
		EndsOn:     req.EndsOn,
	})
	if err != nil {
		notFoundOr(c, err, "failed to update sow")
		return
	}
	c.JSON(http.StatusOK, dto.ToSowResponse(sow))
}

func (h *SowHandler) UpdateStatus(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	sowID, ok := pathID(c, "sowId")
	if !ok {
		return
	}

	var req dto.UpdateSowStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sow, err := h.sowService.UpdateStatus(c.Request.Context(), actor, sowID, model.SowStatus(req.Status))
	if err != nil {
		notFoundOr(c, err, "failed to update sow status")
		return
	}
	c.JSON(http.StatusOK, dto.ToSowResponse(sow))
}

func (h *SowHandler) Delete(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	sowID, ok := pathID(c, "sowId")
	if !ok {
		return
	}

	if err := h.sowService.Delete(c.Request.Context(), actor, sowID); err != nil {
		notFoundOr(c, err, "failed to delete sow")
		return
	}
	c.Status(http.StatusNoContent)
}
