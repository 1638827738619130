package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/zedbuild/buildcalc/internal/common"
	"github.com/zedbuild/buildcalc/internal/models"
	"github.com/zedbuild/buildcalc/internal/repositories/projects"
)

// ProjectService manages saved projects. It owns the timestamp rules: the
// creation time is set once, LastModified on every save.
type ProjectService interface {
	// Create saves a new project built from a calculation run and returns
	// its assigned id.
	Create(ctx context.Context, name, description string, t models.CalcType, inputs json.RawMessage, results []models.ResultLine) (int64, error)
	// Update overwrites an existing project in place.
	Update(ctx context.Context, p *models.Project) error
	List(ctx context.Context) ([]models.Project, error)
	Load(ctx context.Context, id int64) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	repo projects.Repository
	now  func() time.Time
}

func NewProjectService(repo projects.Repository) ProjectService {
	return &projectService{repo: repo, now: time.Now}
}

func (s *projectService) Create(ctx context.Context, name, description string, t models.CalcType, inputs json.RawMessage, results []models.ResultLine) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("%w: project name is empty", common.ErrInvalidArgument)
	}
	now := s.now()
	p := &models.Project{
		Name:         name,
		Type:         t,
		Timestamp:    now,
		LastModified: now,
		Inputs:       inputs,
		Results:      results,
		Description:  description,
	}
	return s.repo.Save(ctx, p)
}

func (s *projectService) Update(ctx context.Context, p *models.Project) error {
	if p.ID == 0 {
		return fmt.Errorf("%w: project has no id", common.ErrInvalidArgument)
	}
	p.LastModified = s.now()
	_, err := s.repo.Save(ctx, p)
	return err
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListAll(ctx)
}

func (s *projectService) Load(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.Find(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Remove(ctx, id)
}
