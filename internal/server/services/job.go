package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/jobs"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/repomanager"
)

type JobService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewJobService(db *sql.DB, m repomanager.RepositoryManager) *JobService {
	return &JobService{db: db, repomanager: m}
}

// List returns one page of jobs; an empty page is common.ErrorNotFound.
func (s *JobService) List(ctx context.Context, page models.Page) ([]models.Job, error) {
	if err := page.Validate(jobs.SortableFields); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Jobs(s.db).List(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no jobs", common.ErrorNotFound)
	}
	return list, nil
}

func (s *JobService) Get(ctx context.Context, id int64) (*models.Job, error) {
	return s.repomanager.Jobs(s.db).Get(ctx, id)
}

func (s *JobService) Create(ctx context.Context, in models.JobInput) (*models.Job, error) {
	if err := in.ValidateForCreation(); err != nil {
		return nil, err
	}

	j := &models.Job{}
	in.ApplyTo(j)
	return s.repomanager.Jobs(s.db).Create(ctx, j)
}

func (s *JobService) Update(ctx context.Context, id int64, in models.JobInput) error {
	if err := in.ValidateForUpdate(); err != nil {
		return err
	}

	repo := s.repomanager.Jobs(s.db)
	j, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	in.ApplyTo(j)
	return repo.Update(ctx, j)
}

// Delete fails with common.ErrorReferenced while persons hold the job.
func (s *JobService) Delete(ctx context.Context, id int64) error {
	err := s.repomanager.Jobs(s.db).Delete(ctx, id)
	if errors.Is(err, common.ErrorReferenced) {
		return fmt.Errorf("%w: job is held by persons", common.ErrorReferenced)
	}
	return err
}

// Persons lists the persons holding the job. An unknown job and a job
// nobody holds are both common.ErrorNotFound.
func (s *JobService) Persons(ctx context.Context, id int64) ([]models.PersonInfo, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Persons(s.db).ListByJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: job is held by no one", common.ErrorNotFound)
	}
	return list, nil
}
