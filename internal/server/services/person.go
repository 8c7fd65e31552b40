package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/dbx"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/persons"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/repomanager"
)

type PersonService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPersonService(db *sql.DB, m repomanager.RepositoryManager) *PersonService {
	return &PersonService{db: db, repomanager: m}
}

// List returns one page of persons; an empty page is common.ErrorNotFound.
func (s *PersonService) List(ctx context.Context, page models.Page) ([]models.PersonInfo, error) {
	if err := page.Validate(persons.SortableFields); err != nil {
		return nil, err
	}

	list, err := s.repomanager.Persons(s.db).List(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no persons", common.ErrorNotFound)
	}
	return list, nil
}

func (s *PersonService) Get(ctx context.Context, id int64) (*models.PersonDetails, error) {
	return s.repomanager.Persons(s.db).GetDetails(ctx, id)
}

// Create stores a new person. A job, department or manager that does not
// exist is a validation error.
func (s *PersonService) Create(ctx context.Context, in models.PersonInput) (*models.Person, error) {
	if err := in.ValidateForCreation(); err != nil {
		return nil, err
	}

	p := &models.Person{}
	in.ApplyTo(p)

	created, err := s.repomanager.Persons(s.db).Create(ctx, p)
	if err != nil {
		return nil, unknownReference(err)
	}
	return created, nil
}

// Update applies the present fields of in to the stored person.
func (s *PersonService) Update(ctx context.Context, id int64, in models.PersonInput) error {
	if err := in.ValidateForUpdate(); err != nil {
		return err
	}
	if in.ManagerID != nil && *in.ManagerID == id {
		return fmt.Errorf("%w: a person cannot be their own manager", common.ErrorValidation)
	}

	repo := s.repomanager.Persons(s.db)
	p, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	in.ApplyTo(p)

	return unknownReference(repo.Update(ctx, p))
}

// Delete removes a person. Their direct reports move to the deleted
// person's manager in the same transaction.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Persons(tx)

		p, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if _, err := repo.ReassignReports(ctx, id, p.ManagerID); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
}

// Reports lists the direct reports. An unknown person and a person without
// reports are both common.ErrorNotFound.
func (s *PersonService) Reports(ctx context.Context, id int64) ([]models.PersonInfo, error) {
	repo := s.repomanager.Persons(s.db)
	if _, err := repo.Get(ctx, id); err != nil {
		return nil, err
	}

	list, err := repo.ListReports(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: person has no reports", common.ErrorNotFound)
	}
	return list, nil
}

func unknownReference(err error) error {
	if errors.Is(err, common.ErrorReferenced) {
		return fmt.Errorf("%w: job, department or manager does not exist", common.ErrorValidation)
	}
	return err
}
