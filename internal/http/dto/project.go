package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Code        string     `json:"code" binding:"required,min=1,max=64"`
	ClientName  string     `json:"client_name" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=4096"`
	StartsOn    *time.Time `json:"starts_on,omitempty"`
	EndsOn      *time.Time `json:"ends_on,omitempty"`
}

type UpdateProjectRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	ClientName  string     `json:"client_name" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=4096"`
	StartsOn    *time.Time `json:"starts_on,omitempty"`
	EndsOn      *time.Time `json:"ends_on,omitempty"`
}

type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=planned active on_hold completed cancelled"`
}

type ProjectResponse struct {
	ID          int64      `json:"id,string"`
	TenantID    int64      `json:"tenant_id,string"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	ClientName  string     `json:"client_name"`
	Status      string     `json:"status"`
	Description *string    `json:"description,omitempty"`
	StartsOn    *time.Time `json:"starts_on,omitempty"`
	EndsOn      *time.Time `json:"ends_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToProjectResponse(project *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		TenantID:    project.TenantID,
		Name:        project.Name,
		Code:        project.Code,
		ClientName:  project.ClientName,
		Status:      string(project.Status),
		Description: project.Description,
		StartsOn:    project.StartsOn,
		EndsOn:      project.EndsOn,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
