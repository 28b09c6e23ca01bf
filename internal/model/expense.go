package model

import "time"

type ExpenseStatus string

const (
	ExpenseStatusSubmitted  ExpenseStatus = "submitted"
	ExpenseStatusApproved   ExpenseStatus = "approved"
	ExpenseStatusRejected   ExpenseStatus = "rejected"
	ExpenseStatusReimbursed ExpenseStatus = "reimbursed"
)

type Expense struct {
	ID          int64         `json:"id"`
	TenantID    int64         `json:"tenant_id"`
	ProjectID   int64         `json:"project_id"`
	UserID      int64         `json:"user_id"`
	IncurredOn  time.Time     `json:"incurred_on"`
	AmountCents int64         `json:"amount_cents"`
	Currency    string        `json:"currency"`
	Category    string        `json:"category"`
	Description *string       `json:"description,omitempty"`
	Status      ExpenseStatus `json:"status"`
	ApproverID  *int64        `json:"approver_id,omitempty"`
	DecidedAt   *time.Time    `json:"decided_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
