// Package rest exposes the org chart over HTTP: account endpoints, the
// token filter guarding everything else, and CRUD handlers for persons,
// departments and jobs.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/logging"
	"github.com/dmitrijs2005/orgchart/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Users interface {
	Register(ctx context.Context, username, password string) (*models.UserWithToken, error)
	Login(ctx context.Context, username, password string) (*models.UserWithToken, error)
}

type Persons interface {
	List(ctx context.Context, page models.Page) ([]models.PersonInfo, error)
	Get(ctx context.Context, id int64) (*models.PersonDetails, error)
	Create(ctx context.Context, in models.PersonInput) (*models.Person, error)
	Update(ctx context.Context, id int64, in models.PersonInput) error
	Delete(ctx context.Context, id int64) error
	Reports(ctx context.Context, id int64) ([]models.PersonInfo, error)
}

type Departments interface {
	List(ctx context.Context, page models.Page) ([]models.Department, error)
	Get(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, in models.DepartmentInput) (*models.Department, error)
	Update(ctx context.Context, id int64, in models.DepartmentInput) error
	Delete(ctx context.Context, id int64) error
	Persons(ctx context.Context, id int64) ([]models.PersonInfo, error)
}

type Jobs interface {
	List(ctx context.Context, page models.Page) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, in models.JobInput) (*models.Job, error)
	Update(ctx context.Context, id int64, in models.JobInput) error
	Delete(ctx context.Context, id int64) error
	Persons(ctx context.Context, id int64) ([]models.PersonInfo, error)
}

type Photos interface {
	UploadURL(ctx context.Context, personID int64) (*models.PhotoUpload, error)
	DownloadURL(ctx context.Context, personID int64) (*models.PhotoDownload, error)
}

// Services bundles what the handlers call into.
type Services struct {
	Users       Users
	Persons     Persons
	Departments Departments
	Jobs        Jobs
	Photos      Photos
}

type RESTServer struct {
	address  string
	logger   logging.Logger
	services Services
	tokens   TokenDecoder
}

func NewRESTServer(address string, l logging.Logger, services Services, tokens TokenDecoder) *RESTServer {
	return &RESTServer{
		address:  address,
		logger:   l.With("module", "rest_server"),
		services: services,
		tokens:   tokens,
	}
}

// Router builds the route tree. Only /auth/* and /healthz are reachable
// without a token.
func (s *RESTServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.register)
		r.Post("/login", s.login)
	})

	r.Group(func(r chi.Router) {
		r.Use(AccessFilter(s.tokens, s.logger))

		r.Route("/persons", func(r chi.Router) {
			r.Get("/", s.listPersons)
			r.Post("/", s.createPerson)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getPerson)
				r.Put("/", s.updatePerson)
				r.Delete("/", s.deletePerson)
				r.Get("/reports", s.personReports)
				r.Post("/photo", s.uploadPhoto)
				r.Get("/photo", s.downloadPhoto)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", s.listDepartments)
			r.Post("/", s.createDepartment)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getDepartment)
				r.Put("/", s.updateDepartment)
				r.Delete("/", s.deleteDepartment)
				r.Get("/persons", s.departmentPersons)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", s.listJobs)
			r.Post("/", s.createJob)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getJob)
				r.Put("/", s.updateJob)
				r.Delete("/", s.deleteJob)
				r.Get("/persons", s.jobPersons)
			})
		})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *RESTServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
