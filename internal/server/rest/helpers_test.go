package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/common"
	"github.com/dmitrijs2005/orgchart/internal/logging"
	"github.com/dmitrijs2005/orgchart/internal/server/auth"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/stretchr/testify/require"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func testCodec() *auth.Codec {
	return auth.NewCodec("test-secret", time.Hour, "auth0")
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := testCodec().Encode(common.UserIDClaim, "7")
	require.NoError(t, err)
	return tok
}

func newTestRouter(s Services) http.Handler {
	return NewRESTServer(":0", discardLogger(), s, testCodec()).Router()
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

type decoderFunc func(string) (auth.Claims, error)

func (f decoderFunc) Decode(token string) (auth.Claims, error) { return f(token) }

type stubUsers struct {
	register func(username, password string) (*models.UserWithToken, error)
	login    func(username, password string) (*models.UserWithToken, error)
}

func (s *stubUsers) Register(_ context.Context, u, p string) (*models.UserWithToken, error) {
	return s.register(u, p)
}

func (s *stubUsers) Login(_ context.Context, u, p string) (*models.UserWithToken, error) {
	return s.login(u, p)
}

// stubPersons records the last id and input it saw.
type stubPersons struct {
	listOut    []models.PersonInfo
	getOut     *models.PersonDetails
	createOut  *models.Person
	reportsOut []models.PersonInfo
	err        error

	page  models.Page
	id    int64
	input models.PersonInput
}

func (s *stubPersons) List(_ context.Context, page models.Page) ([]models.PersonInfo, error) {
	s.page = page
	return s.listOut, s.err
}

func (s *stubPersons) Get(_ context.Context, id int64) (*models.PersonDetails, error) {
	s.id = id
	return s.getOut, s.err
}

func (s *stubPersons) Create(_ context.Context, in models.PersonInput) (*models.Person, error) {
	s.input = in
	return s.createOut, s.err
}

func (s *stubPersons) Update(_ context.Context, id int64, in models.PersonInput) error {
	s.id, s.input = id, in
	return s.err
}

func (s *stubPersons) Delete(_ context.Context, id int64) error {
	s.id = id
	return s.err
}

func (s *stubPersons) Reports(_ context.Context, id int64) ([]models.PersonInfo, error) {
	s.id = id
	return s.reportsOut, s.err
}

type stubDepartments struct {
	listOut    []models.Department
	getOut     *models.Department
	createOut  *models.Department
	personsOut []models.PersonInfo
	err        error

	page  models.Page
	id    int64
	input models.DepartmentInput
}

func (s *stubDepartments) List(_ context.Context, page models.Page) ([]models.Department, error) {
	s.page = page
	return s.listOut, s.err
}

func (s *stubDepartments) Get(_ context.Context, id int64) (*models.Department, error) {
	s.id = id
	return s.getOut, s.err
}

func (s *stubDepartments) Create(_ context.Context, in models.DepartmentInput) (*models.Department, error) {
	s.input = in
	return s.createOut, s.err
}

func (s *stubDepartments) Update(_ context.Context, id int64, in models.DepartmentInput) error {
	s.id, s.input = id, in
	return s.err
}

func (s *stubDepartments) Delete(_ context.Context, id int64) error {
	s.id = id
	return s.err
}

func (s *stubDepartments) Persons(_ context.Context, id int64) ([]models.PersonInfo, error) {
	s.id = id
	return s.personsOut, s.err
}

type stubJobs struct {
	listOut    []models.Job
	getOut     *models.Job
	createOut  *models.Job
	personsOut []models.PersonInfo
	err        error

	page  models.Page
	id    int64
	input models.JobInput
}

func (s *stubJobs) List(_ context.Context, page models.Page) ([]models.Job, error) {
	s.page = page
	return s.listOut, s.err
}

func (s *stubJobs) Get(_ context.Context, id int64) (*models.Job, error) {
	s.id = id
	return s.getOut, s.err
}

func (s *stubJobs) Create(_ context.Context, in models.JobInput) (*models.Job, error) {
	s.input = in
	return s.createOut, s.err
}

func (s *stubJobs) Update(_ context.Context, id int64, in models.JobInput) error {
	s.id, s.input = id, in
	return s.err
}

func (s *stubJobs) Delete(_ context.Context, id int64) error {
	s.id = id
	return s.err
}

func (s *stubJobs) Persons(_ context.Context, id int64) ([]models.PersonInfo, error) {
	s.id = id
	return s.personsOut, s.err
}

type stubPhotos struct {
	upload   *models.PhotoUpload
	download *models.PhotoDownload
	err      error
	id       int64
}

func (s *stubPhotos) UploadURL(_ context.Context, id int64) (*models.PhotoUpload, error) {
	s.id = id
	return s.upload, s.err
}

func (s *stubPhotos) DownloadURL(_ context.Context, id int64) (*models.PhotoDownload, error) {
	s.id = id
	return s.download, s.err
}
