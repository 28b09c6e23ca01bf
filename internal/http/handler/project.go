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

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	actor, ok := identity(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(ctx, actor, &model.Project{
		Name:        req.Name,
		Code:        req.Code,
		ClientName:  req.ClientName,
		Description: req.Description,
		StartsOn:    req.StartsOn,
		EndsOn:      req.EndsOn,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "project with this code already exists"})
			return
		}
		slog.ErrorContext(ctx, "failed to create project", "error", err)
		notFoundOr(c, err, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), actor, projectID)
	if err != nil {
		notFoundOr(c, err, "failed to get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) List(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	projects, err := h.projectService.List(c.Request.Context(), actor)
	if err != nil {
		notFoundOr(c, err, "failed to list projects")
		return
	}

	resp := make([]*dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, dto.ToProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, gin.H{"projects": resp})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), actor, &model.Project{
		ID:          projectID,
		Name:        req.Name,
		ClientName:  req.ClientName,
		Description: req.Description,
		StartsOn:    req.StartsOn,
		EndsOn:      req.EndsOn,
	})
	if err != nil {
		notFoundOr(c, err, "failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.UpdateStatus(c.Request.Context(), actor, projectID, model.ProjectStatus(req.Status))
	if err != nil {
		notFoundOr(c, err, "failed to update project status")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), actor, projectID); err != nil {
		notFoundOr(c, err, "failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}
