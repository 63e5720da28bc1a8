// Package server provides the HTTP REST API for the resume pilot.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resumepilot/internal/document"
	"github.com/jonathan/resumepilot/internal/ingestion"
	"github.com/jonathan/resumepilot/internal/jobfetch"
	"github.com/jonathan/resumepilot/internal/llm"
	"github.com/jonathan/resumepilot/internal/pipeline"
	"github.com/jonathan/resumepilot/internal/schema"
)

// ErrResumeNotFound indicates the requested resume does not exist or
// belongs to another user.
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrProfileNotFound indicates the user has no saved profile yet.
type ErrProfileNotFound struct {
	UserID uuid.UUID
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("no profile for user: %s", e.UserID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		missingTitle *pipeline.MissingJobTitleError
		malformed    *pipeline.MalformedResponseError
		notObject    *schema.NotAnObjectError
		schemaErr    *schema.ValidationError
		pathNotFound *document.NotFoundError
		outOfRange   *document.OutOfRangeError
		inputErr     *ingestion.InputError
		rateLimit    *llm.RateLimitError
		quota        *llm.QuotaError
		fetchErr     *jobfetch.Error
	)

	switch {
	case errors.As(err, &missingTitle),
		errors.As(err, &schemaErr),
		errors.As(err, &pathNotFound),
		errors.As(err, &outOfRange),
		errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &rateLimit):
		return http.StatusTooManyRequests
	case errors.As(err, &quota):
		return http.StatusPaymentRequired
	case errors.As(err, &malformed),
		errors.As(err, &notObject),
		errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		var resumeNotFound *ErrResumeNotFound
		var profileNotFound *ErrProfileNotFound
		var validation *ErrValidation
		switch {
		case errors.As(err, &resumeNotFound), errors.As(err, &profileNotFound):
			return http.StatusNotFound
		case errors.As(err, &validation):
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
