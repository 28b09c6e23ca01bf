package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type CreateSowRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	ValueCents int64      `json:"value_cents" binding:"required,gt=0"`
	Currency   string     `json:"currency" binding:"omitempty,len=3"`
	StartsOn   *time.Time `json:"starts_on,omitempty"`
	EndsOn     *time.Time `json:"ends_on,omitempty"`
}

type UpdateSowRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	ValueCents int64      `json:"value_cents" binding:"required,gt=0"`
	Currency   string     `json:"currency" binding:"omitempty,len=3"`
	StartsOn   *time.Time `json:"starts_on,omitempty"`
	EndsOn     *time.Time `json:"ends_on,omitempty"`
}

type UpdateSowStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent signed expired"`
}

type SowResponse struct {
	ID         int64      `json:"id,string"`
	ProjectID  int64      `json:"project_id,string"`
	Title      string     `json:"title"`
	ValueCents int64      `json:"value_cents"`
	Currency   string     `json:"currency"`
	Status     string     `json:"status"`
	SignedAt   *time.Time `json:"signed_at,omitempty"`
	StartsOn   *time.Time `json:"starts_on,omitempty"`
	EndsOn     *time.Time `json:"ends_on,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func ToSowResponse(sow *model.Sow) *SowResponse {
	return &SowResponse{
		ID:         sow.ID,
		ProjectID:  sow.ProjectID,
		Title:      sow.Title,
		ValueCents: sow.ValueCents,
		Currency:   sow.Currency,
		Status:     string(sow.Status),
		SignedAt:   sow.SignedAt,
		StartsOn:   sow.StartsOn,
		EndsOn:     sow.EndsOn,
		CreatedAt:  sow.CreatedAt,
		UpdatedAt:  sow.UpdatedAt,
	}
}
