package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// SetFieldRequest is the body of PUT /resume/fields/{field}
type SetFieldRequest struct {
	Value string `json:"value"`
}

// AddTechRequest is the body of POST /resume/projects/{index}/tech
type AddTechRequest struct {
	Tech string `json:"tech"`
}

// AddSkillRequest is the body of POST /resume/skills/{category}
type AddSkillRequest struct {
	Skill string `json:"skill"`
}

// TagResponse reports the list after an add and whether the add changed it
type TagResponse struct {
	Added bool     `json:"added"`
	Items []string `json:"items"`
}

// WarningsResponse is the body of GET /resume/warnings
type WarningsResponse struct {
	Warnings []types.Warning `json:"warnings"`
}

func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.session.SetField(r.Context(), r.PathValue("field"), req.Value); err != nil {
		s.mutationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleAddTech(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndex(w, r, "index")
	if !ok {
		return
	}
	var req AddTechRequest
	if !s.decode(w, r, &req) {
		return
	}

	added, err := s.session.AddTech(r.Context(), index, req.Tech)
	if err != nil {
		s.mutationError(w, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, TagResponse{Added: added, Items: s.session.Snapshot().Projects[index].TechStack})
}

func (s *Server) handleRemoveTech(w http.ResponseWriter, r *http.Request) {
	index, ok := s.pathIndex(w, r, "index")
	if !ok {
		return
	}
	pos, ok := s.pathIndex(w, r, "pos")
	if !ok {
		return
	}

	if err := s.session.RemoveTech(r.Context(), index, pos); err != nil {
		s.mutationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, TagResponse{Items: s.session.Snapshot().Projects[index].TechStack})
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	category := types.SkillCategory(r.PathValue("category"))
	var req AddSkillRequest
	if !s.decode(w, r, &req) {
		return
	}

	added, err := s.session.AddSkill(r.Context(), category, req.Skill)
	if err != nil {
		s.mutationError(w, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	s.jsonResponse(w, status, TagResponse{Added: added, Items: s.session.Snapshot().CategorizedSkills.Get(category)})
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	category := types.SkillCategory(r.PathValue("category"))
	pos, ok := s.pathIndex(w, r, "pos")
	if !ok {
		return
	}

	if err := s.session.RemoveSkill(r.Context(), category, pos); err != nil {
		s.mutationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, TagResponse{Items: s.session.Snapshot().CategorizedSkills.Get(category)})
}

func (s *Server) handleText(w http.ResponseWriter, _ *http.Request) {
	text := rendering.ToPlainText(s.session.Snapshot())
	s.recordRender("text", nil)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Printf("Error writing text response: %v", err)
	}
}

func (s *Server) handleWarnings(w http.ResponseWriter, _ *http.Request) {
	warnings := validation.Validate(s.session.Snapshot())
	if s.metrics != nil {
		s.metrics.SetWarnings(len(warnings))
	}
	s.jsonResponse(w, http.StatusOK, WarningsResponse{Warnings: warnings})
}

func (s *Server) handlePreview(w http.ResponseWriter, _ *http.Request) {
	html, err := rendering.RenderHTML(s.session.Snapshot())
	s.recordRender("html", err)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("Error writing preview response: %v", err)
	}
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	html, err := rendering.RenderHTML(s.session.Snapshot())
	if err != nil {
		s.recordRender("pdf", err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	pdf, err := s.printPDF(r.Context(), html, s.print)
	s.recordRender("pdf", err)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if s.metrics != nil {
		s.metrics.ObservePDF(len(pdf))
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

func (s *Server) recordRender(format string, err error) {
	if s.metrics != nil {
		s.metrics.RecordRender(format, err)
	}
}

// decode reads a JSON body into v, writing a 400 on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// pathIndex parses a non-negative integer path value, writing a 400 on failure
func (s *Server) pathIndex(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	i, err := strconv.Atoi(r.PathValue(name))
	if err != nil || i < 0 {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid %s: %q", name, r.PathValue(name)))
		return 0, false
	}
	return i, true
}

func (s *Server) mutationError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[session %s] mutation failed: %v", s.session.ID(), err)
	}
	s.errorResponse(w, status, err.Error())
}
