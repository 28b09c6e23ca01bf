package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"loomworks.app/api-server/core/db/sqlc"
	"loomworks.app/api-server/internal/model"
)

type projectStore struct {
	queries *sqlc.Queries
}

func newProjectStore(queries *sqlc.Queries) ProjectStore {
	return &projectStore{queries: queries}
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row, err := s.queries.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProjectModel(row), nil
}

func (s *projectStore) Create(ctx context.Context, project *model.Project) error {
	row, err := s.queries.CreateProject(ctx, sqlc.CreateProjectParams{
		ID:          project.ID,
		TenantID:    project.TenantID,
		Name:        project.Name,
		Code:        project.Code,
		ClientName:  project.ClientName,
		Status:      string(project.Status),
		Description: project.Description,
		StartsOn:    toNullableDate(project.StartsOn),
		EndsOn:      toNullableDate(project.EndsOn),
	})
	if err != nil {
		return err
	}
	*project = *toProjectModel(row)
	return nil
}

func (s *projectStore) Update(ctx context.Context, project *model.Project) error {
	row, err := s.queries.UpdateProject(ctx, sqlc.UpdateProjectParams{
		ID:          project.ID,
		Name:        project.Name,
		ClientName:  project.ClientName,
		Description: project.Description,
		StartsOn:    toNullableDate(project.StartsOn),
		EndsOn:      toNullableDate(project.EndsOn),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*project = *toProjectModel(row)
	return nil
}

func (s *projectStore) UpdateStatus(ctx context.Context, id int64, status model.ProjectStatus) (*model.Project, error) {
	row, err := s.queries.UpdateProjectStatus(ctx, sqlc.UpdateProjectStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProjectModel(row), nil
}

func (s *projectStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteProject(ctx, id)
}

func (s *projectStore) ListByTenant(ctx context.Context, tenantID int64) ([]model.Project, error) {
	rows, err := s.queries.ListProjectsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	projects := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, *toProjectModel(row))
	}
	return projects, nil
}

func toProjectModel(row sqlc.Project) *model.Project {
	return &model.Project{
		ID:          row.ID,
		TenantID:    row.TenantID,
		Name:        row.Name,
		Code:        row.Code,
		ClientName:  row.ClientName,
		Status:      model.ProjectStatus(row.Status),
		Description: row.Description,
		StartsOn:    toDatePointer(row.StartsOn),
		EndsOn:      toDatePointer(row.EndsOn),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
