// Package departments stores departments.
package departments

import (
	"context"

	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

// SortableFields lists the columns a department list may be sorted by.
var SortableFields = []string{"id", "name"}

type Repository interface {
	List(ctx context.Context, page models.Page) ([]models.Department, error)
	Get(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, d *models.Department) (*models.Department, error)
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id int64) error
}
