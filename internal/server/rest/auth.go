package rest

import (
	"net/http"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *RESTServer) register(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := decodeBody(w, r, &c); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	res, err := s.services.Users.Register(r.Context(), c.Username, c.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", res.ID)
	writeJSON(w, http.StatusCreated, res)
}

func (s *RESTServer) login(w http.ResponseWriter, r *http.Request) {
	var c credentials
	if err := decodeBody(w, r, &c); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	res, err := s.services.Users.Login(r.Context(), c.Username, c.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
