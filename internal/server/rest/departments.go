package rest

import (
	"net/http"

	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

func (s *RESTServer) listDepartments(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r.URL.Query())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	list, err := s.services.Departments.List(r.Context(), page)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *RESTServer) getDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	d, err := s.services.Departments.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *RESTServer) createDepartment(w http.ResponseWriter, r *http.Request) {
	var in models.DepartmentInput
	if err := decodeBody(w, r, &in); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	d, err := s.services.Departments.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *RESTServer) updateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var in models.DepartmentInput
	if err := decodeBody(w, r, &in); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if err := s.services.Departments.Update(r.Context(), id, in); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *RESTServer) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if err := s.services.Departments.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *RESTServer) departmentPersons(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	list, err := s.services.Departments.Persons(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
