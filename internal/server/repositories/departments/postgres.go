package departments

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

// List returns one page of departments. page must already be validated
// against SortableFields.
func (r *PostgresRepository) List(ctx context.Context, page models.Page) ([]models.Department, error) {
	query := fmt.Sprintf(
		`SELECT id, name FROM departments
		 ORDER BY %s %s
		 LIMIT $1 OFFSET $2`, page.SortField, page.SortOrder)

	rows, err := r.db.QueryContext(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, dbx.MapError(err)
	}
	defer rows.Close()

	var result []models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, dbx.MapError(err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError(err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Department, error) {
	query := `SELECT id, name FROM departments WHERE id = $1`

	d := &models.Department{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name); err != nil {
		return nil, dbx.MapError(err)
	}
	return d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *models.Department) (*models.Department, error) {
	query := `INSERT INTO departments (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, d.Name).Scan(&d.ID); err != nil {
		return nil, dbx.MapError(err)
	}
	return d, nil
}

func (r *PostgresRepository) Update(ctx context.Context, d *models.Department) error {
	query := `UPDATE departments SET name = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, d.Name, d.ID)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}

// Delete removes the department. While persons still belong to it the
// delete fails with common.ErrorReferenced.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}
