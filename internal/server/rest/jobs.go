package rest

import (
	"net/http"

	"github.com/dmitrijs2005/orgchart/internal/server/models"
)

func (s *RESTServer) listJobs(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r.URL.Query())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	list, err := s.services.Jobs.List(r.Context(), page)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *RESTServer) getJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	j, err := s.services.Jobs.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, j)
}

func (s *RESTServer) createJob(w http.ResponseWriter, r *http.Request) {
	var in models.JobInput
	if err := decodeBody(w, r, &in); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	j, err := s.services.Jobs.Create(r.Context(), in)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, j)
}

func (s *RESTServer) updateJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var in models.JobInput
	if err := decodeBody(w, r, &in); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if err := s.services.Jobs.Update(r.Context(), id, in); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *RESTServer) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if err := s.services.Jobs.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *RESTServer) jobPersons(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	list, err := s.services.Jobs.Persons(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
