package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores a newly generated resume and returns its ID.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, content map[string]any, jobTitle, jobDescription string) (uuid.UUID, error) {
	data, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, job_title, job_description, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, jobTitle, jobDescription, data,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// LoadResume retrieves a resume by ID, or nil if it does not exist.
func (db *DB) LoadResume(ctx context.Context, resumeID uuid.UUID) (*ResumeRecord, error) {
	var rec ResumeRecord
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_title, COALESCE(job_description, ''), content, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&rec.ID, &rec.UserID, &rec.JobTitle, &rec.JobDescription, &data, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	if err := json.Unmarshal(data, &rec.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume content: %w", err)
	}
	return &rec, nil
}

// UpdateResume replaces a resume's content document.
func (db *DB) UpdateResume(ctx context.Context, resumeID uuid.UUID, content map[string]any) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET content = $1, updated_at = NOW() WHERE id = $2`,
		data, resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

// DeleteResume removes a resume.
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}

// ListResumes retrieves a user's resumes, most recent first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, COALESCE(job_description, ''), created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var r ResumeSummary
		if err := rows.Scan(&r.ID, &r.JobTitle, &r.JobDescription, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}
