package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

type TimeEntryHandler struct {
	timeEntryService service.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntryService: timeEntryService}
}

func (h *TimeEntryHandler) Submit(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	var req dto.SubmitTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.timeEntryService.Submit(c.Request.Context(), actor, &model.TimeEntry{
		ProjectID: req.ProjectID,
		EntryDate: req.EntryDate,
		Minutes:   req.Minutes,
		Notes:     req.Notes,
	})
	if err != nil {
		notFoundOr(c, err, "failed to submit time entry")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) Get(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := h.timeEntryService.Get(c.Request.Context(), actor, entryID)
	if err != nil {
		notFoundOr(c, err, "failed to get time entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) ListByProject(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entries, err := h.timeEntryService.ListByProject(c.Request.Context(), actor, projectID)
	if err != nil {
		notFoundOr(c, err, "failed to list time entries")
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_entries": toTimeEntryResponses(entries)})
}

func (h *TimeEntryHandler) ListMine(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	entries, err := h.timeEntryService.ListMine(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list time entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_entries": toTimeEntryResponses(entries)})
}

func (h *TimeEntryHandler) Update(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.timeEntryService.Update(c.Request.Context(), actor, &model.TimeEntry{
		ID:        entryID,
		EntryDate: req.EntryDate,
		Minutes:   req.Minutes,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotPending) {
			c.JSON(http.StatusConflict, gin.H{"error": "entry is no longer pending"})
			return
		}
		notFoundOr(c, err, "failed to update time entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) Decide(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.timeEntryService.Decide(c.Request.Context(), actor, entryID, req.Approve)
	if err != nil {
		if errors.Is(err, service.ErrNotPending) {
			c.JSON(http.StatusConflict, gin.H{"error": "entry is no longer pending"})
			return
		}
		notFoundOr(c, err, "failed to decide time entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeEntryResponse(entry))
}

func (h *TimeEntryHandler) Delete(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	entryID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.timeEntryService.Delete(c.Request.Context(), actor, entryID); err != nil {
		if errors.Is(err, service.ErrNotPending) {
			c.JSON(http.StatusConflict, gin.H{"error": "entry is no longer pending"})
			return
		}
		notFoundOr(c, err, "failed to delete time entry")
		return
	}
	c.Status(http.StatusNoContent)
}

func toTimeEntryResponses(entries []model.TimeEntry) []*dto.TimeEntryResponse {
	resp := make([]*dto.TimeEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, dto.ToTimeEntryResponse(&entries[i]))
	}
	return resp
}
