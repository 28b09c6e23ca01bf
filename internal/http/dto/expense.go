package dto

import (
	"time"

	"loomworks.app/api-server/internal/model"
)

type SubmitExpenseRequest struct {
	ProjectID   int64     `json:"project_id,string" binding:"required"`
	IncurredOn  time.Time `json:"incurred_on" binding:"required"`
	AmountCents int64     `json:"amount_cents" binding:"required,gt=0"`
	Currency    string    `json:"currency" binding:"omitempty,len=3"`
	Category    string    `json:"category" binding:"required,min=1,max=64"`
	Description *string   `json:"description,omitempty" binding:"omitempty,max=2048"`
}

type ExpenseResponse struct {
	ID          int64      `json:"id,string"`
	ProjectID   int64      `json:"project_id,string"`
	UserID      int64      `json:"user_id,string"`
	IncurredOn  time.Time  `json:"incurred_on"`
	AmountCents int64      `json:"amount_cents"`
	Currency    string     `json:"currency"`
	Category    string     `json:"category"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	ApproverID  *int64     `json:"approver_id,string,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToExpenseResponse(expense *model.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          expense.ID,
		ProjectID:   expense.ProjectID,
		UserID:      expense.UserID,
		IncurredOn:  expense.IncurredOn,
		AmountCents: expense.AmountCents,
		Currency:    expense.Currency,
		Category:    expense.Category,
		Description: expense.Description,
		Status:      string(expense.Status),
		ApproverID:  expense.ApproverID,
		DecidedAt:   expense.DecidedAt,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
