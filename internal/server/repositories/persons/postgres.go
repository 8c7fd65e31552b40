package persons

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/orgchart/internal/dbx"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

const infoSelect = `SELECT p.id, p.job_id, p.department_id, p.manager_id,
       p.first_name, p.last_name, p.hire_date::text,
       j.title, d.name,
       COALESCE(m.first_name || ' ' || m.last_name, ''),
       COALESCE(p.photo_key, '')
  FROM persons p
  JOIN jobs j ON j.id = p.job_id
  JOIN departments d ON d.id = p.department_id
  LEFT JOIN persons m ON m.id = p.manager_id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns one page of persons. page must already be validated
// against SortableFields.
func (r *PostgresRepository) List(ctx context.Context, page models.Page) ([]models.PersonInfo, error) {
	query := fmt.Sprintf(`%s
 ORDER BY p.%s %s
 LIMIT $1 OFFSET $2`, infoSelect, page.SortField, page.SortOrder)

	return r.queryInfo(ctx, query, page.Limit, page.Offset)
}

func (r *PostgresRepository) ListReports(ctx context.Context, managerID int64) ([]models.PersonInfo, error) {
	return r.queryInfo(ctx, infoSelect+"\n WHERE p.manager_id = $1 ORDER BY p.id", managerID)
}

func (r *PostgresRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.PersonInfo, error) {
	return r.queryInfo(ctx, infoSelect+"\n WHERE p.department_id = $1 ORDER BY p.id", departmentID)
}

func (r *PostgresRepository) ListByJob(ctx context.Context, jobID int64) ([]models.PersonInfo, error) {
	return r.queryInfo(ctx, infoSelect+"\n WHERE p.job_id = $1 ORDER BY p.id", jobID)
}

func (r *PostgresRepository) queryInfo(ctx context.Context, query string, args ...any) ([]models.PersonInfo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbx.MapError(err)
	}
	defer rows.Close()

	var result []models.PersonInfo
	for rows.Next() {
		var (
			info    models.PersonInfo
			manager sql.NullInt64
		)
		err := rows.Scan(&info.ID, &info.JobID, &info.DepartmentID, &manager,
			&info.FirstName, &info.LastName, &info.HireDate,
			&info.JobTitle, &info.DepartmentName, &info.ManagerFullName, &info.PhotoKey)
		if err != nil {
			return nil, dbx.MapError(err)
		}
		info.ManagerID = nullableID(manager)
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError(err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Person, error) {
	query :=
		`SELECT id, job_id, department_id, manager_id, first_name, last_name, hire_date::text
		   FROM persons
		  WHERE id = $1`

	p := &models.Person{}
	var manager sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.JobID, &p.DepartmentID, &manager, &p.FirstName, &p.LastName, &p.HireDate)
	if err != nil {
		return nil, dbx.MapError(err)
	}
	p.ManagerID = nullableID(manager)

	return p, nil
}

func (r *PostgresRepository) GetDetails(ctx context.Context, id int64) (*models.PersonDetails, error) {
	query :=
		`SELECT p.id, p.first_name, p.last_name, p.hire_date::text,
		        m.id, COALESCE(m.first_name || ' ' || m.last_name, ''),
		        d.id, d.name, j.id, j.title
		   FROM persons p
		   JOIN jobs j ON j.id = p.job_id
		   JOIN departments d ON d.id = p.department_id
		   LEFT JOIN persons m ON m.id = p.manager_id
		  WHERE p.id = $1`

	var (
		d           models.PersonDetails
		managerID   sql.NullInt64
		managerName string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.HireDate,
		&managerID, &managerName,
		&d.Department.ID, &d.Department.Name, &d.Job.ID, &d.Job.Title)
	if err != nil {
		return nil, dbx.MapError(err)
	}
	if managerID.Valid {
		d.Manager = &models.ManagerRef{ID: managerID.Int64, FullName: managerName}
	}

	return &d, nil
}

// GetPhotoKey returns the stored photo key, or "" when none was set.
func (r *PostgresRepository) GetPhotoKey(ctx context.Context, id int64) (string, error) {
	var key sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT photo_key FROM persons WHERE id = $1`, id).Scan(&key)
	if err != nil {
		return "", dbx.MapError(err)
	}
	return key.String, nil
}

// Create inserts p and fills in its id. An unknown job, department or
// manager fails with common.ErrorReferenced.
func (r *PostgresRepository) Create(ctx context.Context, p *models.Person) (*models.Person, error) {
	query :=
		`INSERT INTO persons (job_id, department_id, manager_id, first_name, last_name, hire_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		p.JobID, p.DepartmentID, nullInt64(p.ManagerID), p.FirstName, p.LastName, p.HireDate).Scan(&p.ID)
	if err != nil {
		return nil, dbx.MapError(err)
	}

	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Person) error {
	query :=
		`UPDATE persons
		    SET job_id = $1, department_id = $2, manager_id = $3,
		        first_name = $4, last_name = $5, hire_date = $6
		  WHERE id = $7`

	res, err := r.db.ExecContext(ctx, query,
		p.JobID, p.DepartmentID, nullInt64(p.ManagerID), p.FirstName, p.LastName, p.HireDate, p.ID)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}

func (r *PostgresRepository) SetPhotoKey(ctx context.Context, id int64, key string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE persons SET photo_key = $1 WHERE id = $2`, key, id)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}

// ReassignReports moves every direct report of fromManagerID to
// toManagerID (nil makes them top-level) and returns how many moved.
func (r *PostgresRepository) ReassignReports(ctx context.Context, fromManagerID int64, toManagerID *int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE persons SET manager_id = $1 WHERE manager_id = $2`, nullInt64(toManagerID), fromManagerID)
	if err != nil {
		return 0, dbx.MapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, dbx.MapError(err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if err != nil {
		return dbx.MapError(err)
	}
	return dbx.ExpectAffected(res)
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
