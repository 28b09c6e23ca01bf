package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"loomworks.app/api-server/common/id"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/queue"
	"loomworks.app/api-server/internal/store"
)

var ErrAlreadyDecided = errors.New("expense already decided")

type ExpenseService interface {
	Submit(ctx context.Context, actor model.Identity, expense *model.Expense) (*model.Expense, error)
	Get(ctx context.Context, actor model.Identity, id int64) (*model.Expense, error)
	ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.Expense, error)
	ListMine(ctx context.Context, actor model.Identity) ([]model.Expense, error)
	// Decide approves or rejects a submitted expense; the approver is
	// recorded on the row.
	Decide(ctx context.Context, actor model.Identity, id int64, approve bool) (*model.Expense, error)
	// MarkReimbursed closes out an approved expense.
	MarkReimbursed(ctx context.Context, actor model.Identity, id int64) (*model.Expense, error)
	Delete(ctx context.Context, actor model.Identity, id int64) error
}

type expenseService struct {
	expenses store.ExpenseStore
	projects store.ProjectStore
	auditor  *Auditor
}

func NewExpenseService(expenses store.ExpenseStore, projects store.ProjectStore, auditor *Auditor) ExpenseService {
	return &expenseService{expenses: expenses, projects: projects, auditor: auditor}
}

func (s *expenseService) Submit(ctx context.Context, actor model.Identity, expense *model.Expense) (*model.Expense, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, expense.ProjectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}

	expense.ID = id.New()
	expense.TenantID = tenantID
	expense.UserID = actor.UserID
	if expense.Currency == "" {
		expense.Currency = "USD"
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, actor model.Identity, expenseID int64) (*model.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, expense.TenantID) {
		return nil, store.ErrNotFound
	}
	return expense, nil
}

func (s *expenseService) ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.Expense, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}
	return s.expenses.ListByProject(ctx, projectID)
}

func (s *expenseService) ListMine(ctx context.Context, actor model.Identity) ([]model.Expense, error) {
	return s.expenses.ListByUser(ctx, actor.UserID)
}

func (s *expenseService) Decide(ctx context.Context, actor model.Identity, expenseID int64, approve bool) (*model.Expense, error) {
	existing, err := s.Get(ctx, actor, expenseID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.ExpenseStatusSubmitted {
		return nil, ErrAlreadyDecided
	}

	status := model.ExpenseStatusRejected
	if approve {
		status = model.ExpenseStatusApproved
	}
	expense, err := s.expenses.SetStatus(ctx, expenseID, status, &actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("deciding expense: %w", err)
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionExpenseDecided,
		TenantID: &existing.TenantID,
		ActorID:  &actor.UserID,
		Entity:   "expense",
		EntityID: strconv.FormatInt(expenseID, 10),
		Detail:   string(status),
	})
	return expense, nil
}

func (s *expenseService) MarkReimbursed(ctx context.Context, actor model.Identity, expenseID int64) (*model.Expense, error) {
	existing, err := s.Get(ctx, actor, expenseID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.ExpenseStatusApproved {
		return nil, ErrAlreadyDecided
	}
	return s.expenses.SetStatus(ctx, expenseID, model.ExpenseStatusReimbursed, existing.ApproverID)
}

func (s *expenseService) Delete(ctx context.Context, actor model.Identity, expenseID int64) error {
	existing, err := s.Get(ctx, actor, expenseID)
	if err != nil {
		return err
	}
	if existing.Status != model.ExpenseStatusSubmitted {
		return ErrAlreadyDecided
	}
	return s.expenses.Delete(ctx, expenseID)
}
