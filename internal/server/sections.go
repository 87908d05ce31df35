package server

import (
	"context"
	"net/http"
)

// BulletRequest is the body of PUT /resume/experience/{index}/bullets/{pos}
type BulletRequest struct {
	Value string `json:"value"`
}

// registerSections wires the add/replace/remove routes for the list sections.
// Every route answers with the full résumé after the change.
func (s *Server) registerSections(mux *http.ServeMux) {
	mux.HandleFunc("POST /resume/education", s.handleAppend(s.session.AddEducation))
	mux.HandleFunc("PUT /resume/education/{index}", handleReplace(s, s.session.UpdateEducation))
	mux.HandleFunc("DELETE /resume/education/{index}", s.handleAt(s.session.RemoveEducation, http.StatusOK))

	mux.HandleFunc("POST /resume/experience", s.handleAppend(s.session.AddExperience))
	mux.HandleFunc("PUT /resume/experience/{index}", handleReplace(s, s.session.UpdateExperience))
	mux.HandleFunc("DELETE /resume/experience/{index}", s.handleAt(s.session.RemoveExperience, http.StatusOK))
	mux.HandleFunc("POST /resume/experience/{index}/bullets", s.handleAt(s.session.AddExperienceBullet, http.StatusCreated))
	mux.HandleFunc("PUT /resume/experience/{index}/bullets/{pos}", s.handleSetBullet)
	mux.HandleFunc("DELETE /resume/experience/{index}/bullets/{pos}", s.handleRemoveBullet)

	mux.HandleFunc("POST /resume/projects", s.handleAppend(s.session.AddProject))
	mux.HandleFunc("PUT /resume/projects/{index}", handleReplace(s, s.session.UpdateProject))
	mux.HandleFunc("DELETE /resume/projects/{index}", s.handleAt(s.session.RemoveProject, http.StatusOK))

	mux.HandleFunc("POST /resume/links", s.handleAppend(s.session.AddLink))
	mux.HandleFunc("PUT /resume/links/{index}", handleReplace(s, s.session.UpdateLink))
	mux.HandleFunc("DELETE /resume/links/{index}", s.handleAt(s.session.RemoveLink, http.StatusOK))
}

func (s *Server) handleAppend(add func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := add(r.Context()); err != nil {
			s.mutationError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusCreated, s.session.Snapshot())
	}
}

// handleReplace decodes a whole entry of type T and stores it at {index}
func handleReplace[T any](s *Server, update func(context.Context, int, T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := s.pathIndex(w, r, "index")
		if !ok {
			return
		}
		var entry T
		if !s.decode(w, r, &entry) {
			return
		}
		if err := update(r.Context(), index, entry); err != nil {
			s.mutationError(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
	}
}

// handleAt runs an operation addressed by {index} alone
func (s *Server) handleAt(op func(context.Context, int) error, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := s.pathIndex(w, r, "index")
		if !ok {
			return
		}
		if err := op(r.Context(), index); err != nil {
			s.mutationError(w, err)
			return
		}
		s.jsonResponse(w, status, s.session.Snapshot())
	}
}

func (s *Server) handleSetBullet(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndex(w, r, "index")
	if !ok {
		return
	}
	pos, ok := s.pathIndex(w, r, "pos")
	if !ok {
		return
	}
	var req BulletRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.session.SetExperienceBullet(r.Context(), index, pos, req.Value); err != nil {
		s.mutationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleRemoveBullet(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndex(w, r, "index")
	if !ok {
		return
	}
	pos, ok := s.pathIndex(w, r, "pos")
	if !ok {
		return
	}

	if err := s.session.RemoveExperienceBullet(r.Context(), index, pos); err != nil {
		s.mutationError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}
