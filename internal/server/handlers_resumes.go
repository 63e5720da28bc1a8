package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resumepilot/internal/db"
	"github.com/jonathan/resumepilot/internal/document"
	"github.com/jonathan/resumepilot/internal/export"
	"github.com/jonathan/resumepilot/internal/schema"
	"github.com/jonathan/resumepilot/internal/server/middleware"
)

// EditOperation is a single mutation applied to a resume document.
// For "set" the path addresses the value to replace. For "insert" and
// "remove" the path addresses a section list and index selects the entry;
// an insert without a value uses the empty template for that section,
// named by the last path segment unless section overrides it.
type EditOperation struct {
	Op      string `json:"op" validate:"required,oneof=set insert remove"`
	Path    string `json:"path" validate:"required"`
	Value   any    `json:"value,omitempty"`
	Index   int    `json:"index,omitempty"`
	Section string `json:"section,omitempty"`
}

// EditRequest represents the request body for /resumes/{id}/edits
type EditRequest struct {
	Operations []EditOperation `json:"operations" validate:"required,min=1,dive"`
}

// EditResponse represents the response for /resumes/{id}/edits
type EditResponse struct {
	Resume map[string]any `json:"resume"`
}

// ResumeResponse represents a stored resume.
type ResumeResponse struct {
	Resume *db.ResumeRecord `json:"resume"`
}

// ListResumesResponse represents the response for GET /resumes
type ListResumesResponse struct {
	Resumes []db.ResumeSummary `json:"resumes"`
}

// loadOwnedResume parses the {id} path value and loads the resume if it
// belongs to the caller. Resumes owned by other users are reported as
// not found rather than forbidden.
func (s *Server) loadOwnedResume(r *http.Request, userID uuid.UUID) (*db.ResumeRecord, error) {
	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}

	rec, err := s.resumes.LoadResume(r.Context(), resumeID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, &ErrResumeNotFound{ResumeID: resumeID}
	}
	return rec, nil
}

// handleListResumes returns the caller's resumes, most recent first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.resumes.ListResumes(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes: "+err.Error())
		return
	}
	if resumes == nil {
		resumes = []db.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, ListResumesResponse{Resumes: resumes})
}

// handleGetResume returns a single resume with its content document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rec, err := s.loadOwnedResume(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ResumeResponse{Resume: rec})
}

// handleUpdateResume replaces a resume's content document. The body is
// the document itself.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rec, err := s.loadOwnedResume(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	content, warnings, err := schema.Normalize(schema.KindResume, body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := schema.Validate(schema.KindResume, content); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.resumes.UpdateResume(r.Context(), rec.ID, content); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProfileResponse{
		Profile:  content,
		Warnings: warnings,
	})
}

// handleDeleteResume removes a resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rec, err := s.loadOwnedResume(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.resumes.DeleteResume(r.Context(), rec.ID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleEditResume applies a batch of path-addressed mutations to a
// resume's content. Operations apply in order; if any fails, nothing is
// saved.
func (s *Server) handleEditResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rec, err := s.loadOwnedResume(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	content, err := applyEdits(rec.Content, req.Operations)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.resumes.UpdateResume(r.Context(), rec.ID, content); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, EditResponse{Resume: content})
}

// applyEdits folds the operations over the document, returning the new
// document. The input document is never modified.
func applyEdits(content map[string]any, ops []EditOperation) (map[string]any, error) {
	var doc any = content
	for i, op := range ops {
		path := document.ParsePath(op.Path)
		if len(path) == 0 {
			return nil, &ErrValidation{
				Field:   fmt.Sprintf("operations[%d].path", i),
				Message: "must not be empty",
			}
		}

		var err error
		switch op.Op {
		case "set":
			doc, err = document.Set(doc, path, op.Value)
		case "insert":
			template := op.Value
			if template == nil {
				section := op.Section
				if section == "" {
					section = path[len(path)-1].String()
				}
				tmpl := schema.SectionTemplate(schema.KindResume, section)
				if tmpl == nil {
					return nil, &ErrValidation{
						Field:   fmt.Sprintf("operations[%d]", i),
						Message: "no template for section " + section + "; provide a value",
					}
				}
				template = map[string]any(tmpl)
			}
			doc, err = document.InsertAt(doc, path, op.Index, template)
		case "remove":
			doc, err = document.RemoveAt(doc, path, op.Index)
		default:
			return nil, &ErrValidation{
				Field:   fmt.Sprintf("operations[%d].op", i),
				Message: "must be one of set, insert, remove",
			}
		}
		if err != nil {
			return nil, err
		}
	}

	result, ok := doc.(map[string]any)
	if !ok {
		return nil, &ErrValidation{
			Field:   "operations",
			Message: "edits must leave the document an object",
		}
	}
	return result, nil
}

// handleExportResume renders a resume as plain text.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	rec, err := s.loadOwnedResume(r, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	text := export.RenderPlainText(rec.Content)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.txt"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		return
	}
}
