// Package jobs stores jobs.
package jobs

import (
	"context"

	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

// SortableFields lists the columns a job list may be sorted by.
var SortableFields = []string{"id", "title"}

type Repository interface {
	List(ctx context.Context, page models.Page) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, j *models.Job) (*models.Job, error)
	Update(ctx context.Context, j *models.Job) error
	Delete(ctx context.Context, id int64) error
}
