package jobs

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/orgchart/internal/dbx"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns one page of jobs. page must already be validated
// against SortableFields.
func (r *PostgresRepository) List(ctx context.Context, page models.Page) ([]models.Job, error) {
	query := fmt.Sprintf(
		`SELECT id, title FROM jobs
		 ORDER BY %s %s
		 LIMIT $1 OFFSET $2`, page.SortField, page.SortOrder)

	rows, err := r.db.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, dbx.MapError(err)
	}
	defer rows.Close()

	var result []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title); err != nil {
			return nil, dbx.MapError(err)
		}
		result = append(result, j)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError(err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Job, error) {
	query := `SELECT id, title FROM jobs WHERE id = $1`

	j := &models.Job{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.Title); err != nil {
		return nil, dbx.MapError(err)
	}
	return j, nil
}

func (r *PostgresRepository) Create(ctx context.Context, j *models.Job) (*models.Job, error) {
	query := `INSERT INTO jobs (title) VALUES ($1) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, j.Title).Scan(&j.ID); err != nil {
		return nil, dbx.MapError(err)
	}
	return j, nil
}

func (r *PostgresRepository) Update(ctx context.Context, j *models.Job) error {
	query := `UPDATE jobs SET title = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, j.Title, j.ID)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}

// Delete removes the job. While persons still hold it the
// delete fails with common.ErrorReferenced.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}
