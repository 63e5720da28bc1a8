package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resumepilot/internal/ingestion"
	"github.com/jonathan/resumepilot/internal/jobfetch"
	"github.com/jonathan/resumepilot/internal/pipeline"
	"github.com/jonathan/resumepilot/internal/schema"
	"github.com/jonathan/resumepilot/internal/server/middleware"
)

// ExtractRequest represents the request body for /extract
type ExtractRequest struct {
	RawText  string `json:"raw_text" validate:"required"`
	FileName string `json:"file_name,omitempty"`
}

// ExtractResponse represents the response for /extract
type ExtractResponse struct {
	Profile  map[string]any   `json:"profile"`
	Warnings []schema.Warning `json:"warnings,omitempty"`
}

// GenerateRequest represents the request body for /generate
type GenerateRequest struct {
	JobTitle       string `json:"job_title" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// GenerateResponse represents the response for /generate
type GenerateResponse struct {
	ResumeID uuid.UUID        `json:"resume_id"`
	Resume   map[string]any   `json:"resume"`
	Warnings []schema.Warning `json:"warnings,omitempty"`
}

// ProfileResponse represents a profile document with normalization warnings.
type ProfileResponse struct {
	Profile  map[string]any   `json:"profile"`
	Warnings []schema.Warning `json:"warnings,omitempty"`
}

// handleExtract runs the extraction stage over raw resume text and saves
// the resulting profile.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	rawText, err := ingestion.PrepareRawText(req.RawText, req.FileName)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := pipeline.ExtractProfile(r.Context(), s.model, rawText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.profiles.SaveProfile(r.Context(), userID, result.Document); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ExtractResponse{
		Profile:  result.Document,
		Warnings: result.Warnings,
	})
}

// handleGetProfile returns the caller's saved profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.profiles.LoadProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{UserID: userID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProfileResponse{Profile: profile})
}

// handlePutProfile replaces the caller's saved profile. The body is the
// profile document itself; unknown fields are preserved.
func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	profile, warnings, err := schema.Normalize(schema.KindProfile, body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := schema.Validate(schema.KindProfile, profile); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.profiles.SaveProfile(r.Context(), userID, profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ProfileResponse{
		Profile:  profile,
		Warnings: warnings,
	})
}

// handleGenerate runs the tailoring stage against the caller's saved
// profile and stores the generated resume.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	profile, err := s.profiles.LoadProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}
	if profile == nil {
		notFound := &ErrProfileNotFound{UserID: userID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		jobDescription, err = jobfetch.JobDescription(r.Context(), req.JobURL, s.fetchOpts)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	result, err := pipeline.TailorResume(r.Context(), s.model, profile, req.JobTitle, jobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumeID, err := s.resumes.SaveResume(r.Context(), userID, result.Document, req.JobTitle, jobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, GenerateResponse{
		ResumeID: resumeID,
		Resume:   result.Document,
		Warnings: result.Warnings,
	})
}
