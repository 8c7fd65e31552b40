package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/departments"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/repomanager"
)

type DepartmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDepartmentService(db *sql.DB, m repomanager.RepositoryManager) *DepartmentService {
	return &DepartmentService{db: db, repomanager: m}
}

// List returns one page of departments; an empty page is common.ErrorNotFound.
func (s *DepartmentService) List(ctx context.Context, page models.Page) ([]models.Department, error) {
	if err := page.Validate(departments.SortableFields); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Departments(s.db).List(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no departments", common.ErrorNotFound)
	}
	return list, nil
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	return s.repomanager.Departments(s.db).Get(ctx, id)
}

func (s *DepartmentService) Create(ctx context.Context, in models.DepartmentInput) (*models.Department, error) {
	if err := in.ValidateForCreation(); err != nil {
		return nil, err
	}

	d := &models.Department{}
	in.ApplyTo(d)
	return s.repomanager.Departments(s.db).Create(ctx, d)
}

func (s *DepartmentService) Update(ctx context.Context, id int64, in models.DepartmentInput) error {
	if err := in.ValidateForUpdate(); err != nil {
		return err
	}

	repo := s.repomanager.Departments(s.db)
	d, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	in.ApplyTo(d)
	return repo.Update(ctx, d)
}

// Delete fails with common.ErrorReferenced while persons belong to the department.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	err := s.repomanager.Departments(s.db).Delete(ctx, id)
	if errors.Is(err, common.ErrorReferenced) {
		return fmt.Errorf("%w: department has persons", common.ErrorReferenced)
	}
	return err
}

// Persons lists the department's members. An unknown department and a
// department without members are both common.ErrorNotFound.
func (s *DepartmentService) Persons(ctx context.Context, id int64) ([]models.PersonInfo, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Persons(s.db).ListByDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: department has no persons", common.ErrorNotFound)
	}
	return list, nil
}
