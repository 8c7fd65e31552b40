package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/orgchart/internal/dbx"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/departments"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/jobs"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/persons"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a handle, which is
// either the pool or an open transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Persons(db dbx.DBTX) persons.Repository
	Departments(db dbx.DBTX) departments.Repository
	Jobs(db dbx.DBTX) jobs.Repository
}
