package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/dbx"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/departments"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/jobs"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/persons"
	"github.com/dmitrijs2005/orgchart/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func ptr[T any](v T) *T { return &v }

type fakeRepoManager struct {
	users       users.Repository
	persons     persons.Repository
	departments departments.Repository
	jobs        jobs.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Persons(dbx.DBTX) persons.Repository          { return m.persons }
func (m *fakeRepoManager) Departments(dbx.DBTX) departments.Repository  { return m.departments }
func (m *fakeRepoManager) Jobs(dbx.DBTX) jobs.Repository                { return m.jobs }

// memUsers is an in-memory users repository with sequential ids.
type memUsers struct {
	mu      sync.Mutex
	byName  map[string]*models.User
	nextID  int64
	creates int

	getErr    error
	createErr error
}

func newMemUsers() *memUsers {
	return &memUsers{byName: map[string]*models.User{}, nextID: 1}
}

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byName[u.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.creates++
	u.ID = r.nextID
	r.nextID++
	stored := *u
	r.byName[u.Username] = &stored
	return u, nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakePersons struct {
	listOut []models.PersonInfo
	listErr error
	gotPage models.Page

	subOut []models.PersonInfo

	getOut *models.Person
	getErr error

	detailsOut *models.PersonDetails

	createErr error
	created   *models.Person

	updateErr error
	updated   *models.Person

	photoKey    string
	photoKeyErr error
	setKey      string
	setKeyErr   error

	reassignErr  error
	reassignFrom int64
	reassignTo   *int64
	deleteErr    error
	deleted      []int64
}

func (f *fakePersons) List(_ context.Context, page models.Page) ([]models.PersonInfo, error) {
	f.gotPage = page
	return f.listOut, f.listErr
}
func (f *fakePersons) ListReports(context.Context, int64) ([]models.PersonInfo, error) {
	return f.subOut, nil
}
func (f *fakePersons) ListByDepartment(context.Context, int64) ([]models.PersonInfo, error) {
	return f.subOut, nil
}
func (f *fakePersons) ListByJob(context.Context, int64) ([]models.PersonInfo, error) {
	return f.subOut, nil
}
func (f *fakePersons) Get(_ context.Context, id int64) (*models.Person, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return &models.Person{ID: id}, nil
	}
	cp := *f.getOut
	return &cp, nil
}
func (f *fakePersons) GetDetails(context.Context, int64) (*models.PersonDetails, error) {
	if f.detailsOut == nil {
		return nil, common.ErrorNotFound
	}
	return f.detailsOut, nil
}
func (f *fakePersons) GetPhotoKey(context.Context, int64) (string, error) {
	return f.photoKey, f.photoKeyErr
}
func (f *fakePersons) Create(_ context.Context, p *models.Person) (*models.Person, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = 10
	f.created = p
	return p, nil
}
func (f *fakePersons) Update(_ context.Context, p *models.Person) error {
	f.updated = p
	return f.updateErr
}
func (f *fakePersons) SetPhotoKey(_ context.Context, _ int64, key string) error {
	f.setKey = key
	return f.setKeyErr
}
func (f *fakePersons) ReassignReports(_ context.Context, from int64, to *int64) (int64, error) {
	f.reassignFrom, f.reassignTo = from, to
	return 0, f.reassignErr
}
func (f *fakePersons) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDepartments struct {
	listOut   []models.Department
	getOut    *models.Department
	getErr    error
	createErr error
	updated   *models.Department
	deleteErr error
}

func (f *fakeDepartments) List(context.Context, models.Page) ([]models.Department, error) {
	return f.listOut, nil
}
func (f *fakeDepartments) Get(_ context.Context, id int64) (*models.Department, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return &models.Department{ID: id}, nil
	}
	cp := *f.getOut
	return &cp, nil
}
func (f *fakeDepartments) Create(_ context.Context, d *models.Department) (*models.Department, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	d.ID = 1
	return d, nil
}
func (f *fakeDepartments) Update(_ context.Context, d *models.Department) error {
	f.updated = d
	return nil
}
func (f *fakeDepartments) Delete(context.Context, int64) error { return f.deleteErr }

type fakeJobs struct {
	listOut   []models.Job
	getErr    error
	updated   *models.Job
	deleteErr error
}

func (f *fakeJobs) List(context.Context, models.Page) ([]models.Job, error) { return f.listOut, nil }
func (f *fakeJobs) Get(_ context.Context, id int64) (*models.Job, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.Job{ID: id, Title: "Engineer"}, nil
}
func (f *fakeJobs) Create(_ context.Context, j *models.Job) (*models.Job, error) {
	j.ID = 1
	return j, nil
}
func (f *fakeJobs) Update(_ context.Context, j *models.Job) error {
	f.updated = j
	return nil
}
func (f *fakeJobs) Delete(context.Context, int64) error { return f.deleteErr }
