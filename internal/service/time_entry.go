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

var ErrNotPending = errors.New("entry is no longer pending")

type TimeEntryService interface {
	Submit(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error)
	Get(ctx context.Context, actor model.Identity, id int64) (*model.TimeEntry, error)
	ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.TimeEntry, error)
	ListMine(ctx context.Context, actor model.Identity) ([]model.TimeEntry, error)
	Update(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error)
	// Decide approves or rejects a pending entry, recording the approver.
	Decide(ctx context.Context, actor model.Identity, id int64, approve bool) (*model.TimeEntry, error)
	Delete(ctx context.Context, actor model.Identity, id int64) error
}

type timeEntryService struct {
	entries  store.TimeEntryStore
	projects store.ProjectStore
	auditor  *Auditor
}

func NewTimeEntryService(entries store.TimeEntryStore, projects store.ProjectStore, auditor *Auditor) TimeEntryService {
	return &timeEntryService{entries: entries, projects: projects, auditor: auditor}
}

func (s *timeEntryService) Submit(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error) {
	tenantID, err := requireTenant(actor)
	if err != nil {
		return nil, err
	}
	project, err := s.projects.GetByID(ctx, entry.ProjectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}

	entry.ID = id.New()
	entry.TenantID = tenantID
	entry.UserID = actor.UserID
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating time entry: %w", err)
	}
	return entry, nil
}

func (s *timeEntryService) Get(ctx context.Context, actor model.Identity, entryID int64) (*model.TimeEntry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, entry.TenantID) {
		return nil, store.ErrNotFound
	}
	return entry, nil
}

func (s *timeEntryService) ListByProject(ctx context.Context, actor model.Identity, projectID int64) ([]model.TimeEntry, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}
	return s.entries.ListByProject(ctx, projectID)
}

func (s *timeEntryService) ListMine(ctx context.Context, actor model.Identity) ([]model.TimeEntry, error) {
	return s.entries.ListByUser(ctx, actor.UserID)
}

func (s *timeEntryService) Update(ctx context.Context, actor model.Identity, entry *model.TimeEntry) (*model.TimeEntry, error) {
	existing, err := s.Get(ctx, actor, entry.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.TimeEntryStatusPending {
		return nil, ErrNotPending
	}
	existing.EntryDate = entry.EntryDate
	existing.Minutes = entry.Minutes
	existing.Notes = entry.Notes
	if err := s.entries.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating time entry: %w", err)
	}
	return existing, nil
}

func (s *timeEntryService) Decide(ctx context.Context, actor model.Identity, entryID int64, approve bool) (*model.TimeEntry, error) {
	existing, err := s.Get(ctx, actor, entryID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.TimeEntryStatusPending {
		return nil, ErrNotPending
	}

	status := model.TimeEntryStatusRejected
	if approve {
		status = model.TimeEntryStatusApproved
	}
	entry, err := s.entries.SetStatus(ctx, entryID, status, &actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("deciding time entry: %w", err)
	}

	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionTimeDecided,
		TenantID: &existing.TenantID,
		ActorID:  &actor.UserID,
		Entity:   "time_entry",
		EntityID: strconv.FormatInt(entryID, 10),
		Detail:   string(status),
	})
	return entry, nil
}

func (s *timeEntryService) Delete(ctx context.Context, actor model.Identity, entryID int64) error {
	existing, err := s.Get(ctx, actor, entryID)
	if err != nil {
		return err
	}
	if existing.Status != model.TimeEntryStatusPending {
		return ErrNotPending
	}
	return s.entries.Delete(ctx, entryID)
}
