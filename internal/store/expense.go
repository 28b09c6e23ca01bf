package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type expenseStore struct {
	queries *sqlc.Queries
}

func newExpenseStore(queries *sqlc.Queries) ExpenseStore {
	return &expenseStore{queries: queries}
}

func (s *expenseStore) GetByID(ctx context.Context, id int64) (*model.Expense, error) {
	row, err := s.queries.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toExpenseModel(row), nil
}

func (s *expenseStore) Create(ctx context.Context, expense *model.Expense) error {
	row, err := s.queries.CreateExpense(ctx, sqlc.CreateExpenseParams{
		ID:          expense.ID,
		TenantID:    expense.TenantID,
		ProjectID:   expense.ProjectID,
		UserID:      expense.UserID,
		IncurredOn:  pgtype.Date{Time: expense.IncurredOn, Valid: true},
		AmountCents: expense.AmountCents,
		Currency:    expense.Currency,
		Category:    expense.Category,
		Description: expense.Description,
	})
	if err != nil {
		return err
	}
	*expense = *toExpenseModel(row)
	return nil
}

func (s *expenseStore) SetStatus(ctx context.Context, id int64, status model.ExpenseStatus, approverID *int64) (*model.Expense, error) {
	row, err := s.queries.SetExpenseStatus(ctx, sqlc.SetExpenseStatusParams{
		ID:         id,
		Status:     string(status),
		ApproverID: approverID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toExpenseModel(row), nil
}

func (s *expenseStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteExpense(ctx, id)
}

func (s *expenseStore) ListByProject(ctx context.Context, projectID int64) ([]model.Expense, error) {
	rows, err := s.queries.ListExpensesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	expenses := make([]model.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, *toExpenseModel(row))
	}
	return expenses, nil
}

func (s *expenseStore) ListByUser(ctx context.Context, userID int64) ([]model.Expense, error) {
	rows, err := s.queries.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses := make([]model.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, *toExpenseModel(row))
	}
	return expenses, nil
}

func toExpenseModel(row sqlc.Expense) *model.Expense {
	return &model.Expense{
		ID:          row.ID,
		TenantID:    row.TenantID,
		ProjectID:   row.ProjectID,
		UserID:      row.UserID,
		IncurredOn:  row.IncurredOn.Time,
		AmountCents: row.AmountCents,
		Currency:    row.Currency,
		Category:    row.Category,
		Description: row.Description,
		Status:      model.ExpenseStatus(row.Status),
		ApproverID:  row.ApproverID,
		DecidedAt:   toTimePointer(row.DecidedAt),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
