// Package persons stores persons and reads them joined with their job,
// department and manager.
package persons

import (
	"context"

	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

// SortableFields lists the fields a person list may be sorted by.
var SortableFields = []string{"id", "first_name", "last_name", "hire_date"}

type Repository interface {
	List(ctx context.Context, page models.Page) ([]models.PersonInfo, error)
	ListReports(ctx context.Context, managerID int64) ([]models.PersonInfo, error)
	ListByDepartment(ctx context.Context, departmentID int64) ([]models.PersonInfo, error)
	ListByJob(ctx context.Context, jobID int64) ([]models.PersonInfo, error)

	Get(ctx context.Context, id int64) (*models.Person, error)
	GetDetails(ctx context.Context, id int64) (*models.PersonDetails, error)
	GetPhotoKey(ctx context.Context, id int64) (string, error)

	Create(ctx context.Context, p *models.Person) (*models.Person, error)
	Update(ctx context.Context, p *models.Person) error
	SetPhotoKey(ctx context.Context, id int64, key string) error
	ReassignReports(ctx context.Context, fromManagerID int64, toManagerID *int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
