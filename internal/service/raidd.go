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

var ErrInvalidKind = errors.New("invalid raidd kind")

type RaiddService interface {
	Create(ctx context.Context, actor model.Identity, entry *model.RaiddEntry) (*model.RaiddEntry, error)
	Get(ctx context.Context, actor model.Identity, id int64) (*model.RaiddEntry, error)
	ListByProject(ctx context.Context, actor model.Identity, projectID int64, kind *model.RaiddKind) ([]model.RaiddEntry, error)
	Update(ctx context.Context, actor model.Identity, entry *model.RaiddEntry) (*model.RaiddEntry, error)
	Delete(ctx context.Context, actor model.Identity, id int64) error
}

type raiddService struct {
	raidd    store.RaiddStore
	projects store.ProjectStore
	auditor  *Auditor
}

func NewRaiddService(raidd store.RaiddStore, projects store.ProjectStore, auditor *Auditor) RaiddService {
	return &raiddService{raidd: raidd, projects: projects, auditor: auditor}
}

func (s *raiddService) guardProject(ctx context.Context, actor model.Identity, projectID int64) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, project.TenantID) {
		return nil, store.ErrNotFound
	}
	return project, nil
}

func (s *raiddService) Create(ctx context.Context, actor model.Identity, entry *model.RaiddEntry) (*model.RaiddEntry, error) {
	if !entry.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	project, err := s.guardProject(ctx, actor, entry.ProjectID)
	if err != nil {
		return nil, err
	}

	entry.ID = id.New()
	entry.TenantID = project.TenantID
	if entry.Severity == "" {
		entry.Severity = model.RaiddSeverityMedium
	}
	if err := s.raidd.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("creating raidd entry: %w", err)
	}

	s.emitChange(ctx, actor, entry, "created")
	return entry, nil
}

func (s *raiddService) Get(ctx context.Context, actor model.Identity, entryID int64) (*model.RaiddEntry, error) {
	entry, err := s.raidd.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !canAccessTenant(actor, entry.TenantID) {
		return nil, store.ErrNotFound
	}
	return entry, nil
}

func (s *raiddService) ListByProject(ctx context.Context, actor model.Identity, projectID int64, kind *model.RaiddKind) ([]model.RaiddEntry, error) {
	if _, err := s.guardProject(ctx, actor, projectID); err != nil {
		return nil, err
	}
	if kind != nil {
		if !kind.Valid() {
			return nil, ErrInvalidKind
		}
		return s.raidd.ListByProjectAndKind(ctx, projectID, *kind)
	}
	return s.raidd.ListByProject(ctx, projectID)
}

func (s *raiddService) Update(ctx context.Context, actor model.Identity, entry *model.RaiddEntry) (*model.RaiddEntry, error) {
	existing, err := s.Get(ctx, actor, entry.ID)
	if err != nil {
		return nil, err
	}
	existing.Title = entry.Title
	existing.Detail = entry.Detail
	existing.Severity = entry.Severity
	existing.Status = entry.Status
	existing.OwnerID = entry.OwnerID
	existing.DueOn = entry.DueOn
	if err := s.raidd.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating raidd entry: %w", err)
	}

	s.emitChange(ctx, actor, existing, "updated")
	return existing, nil
}

func (s *raiddService) Delete(ctx context.Context, actor model.Identity, entryID int64) error {
	if _, err := s.Get(ctx, actor, entryID); err != nil {
		return err
	}
	return s.raidd.Delete(ctx, entryID)
}

func (s *raiddService) emitChange(ctx context.Context, actor model.Identity, entry *model.RaiddEntry, what string) {
	s.auditor.Emit(ctx, queue.Event{
		Action:   queue.ActionRaiddChanged,
		TenantID: &entry.TenantID,
		ActorID:  &actor.UserID,
		Entity:   "raidd_entry",
		EntityID: strconv.FormatInt(entry.ID, 10),
		Detail:   fmt.Sprintf("%s %s", string(entry.Kind), what),
	})
}
