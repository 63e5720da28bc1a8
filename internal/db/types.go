package db

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is a stored resume document with its originating job target.
type ResumeRecord struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	JobTitle       string         `json:"job_title"`
	JobDescription string         `json:"job_description,omitempty"`
	Content        map[string]any `json:"content"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ResumeSummary is a lightweight view of a resume for listing.
type ResumeSummary struct {
	ID             uuid.UUID `json:"id"`
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
