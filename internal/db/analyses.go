package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Analysis is one persisted resume analysis result.
type Analysis struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	ResumeScore        int       `json:"resume_score"`
	PageCount          int       `json:"page_count"`
	PredictedField     string    `json:"predicted_field"`
	Skills             []string  `json:"skills"`
	RecommendedCourses []string  `json:"recommended_courses"`
	CreatedAt          time.Time `json:"created_at"`
}

// SaveAnalysis writes one analysis record and returns its generated ID.
// A nil receiver means persistence is disabled; the write is skipped.
func (db *DB) SaveAnalysis(ctx context.Context, a *Analysis) (uuid.UUID, error) {
	if db == nil || db.pool == nil {
		return uuid.Nil, nil
	}

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	courses := a.RecommendedCourses
	if courses == nil {
		courses = []string{}
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO analyses (id, name, email, resume_score, page_count, predicted_field, skills, recommended_courses)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, a.Name, a.Email, a.ResumeScore, a.PageCount, a.PredictedField, skills, courses,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// ListAnalyses returns the most recent analyses, newest first.
// A nil receiver returns an empty list.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]Analysis, error) {
	if db == nil || db.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, email, resume_score, page_count, predicted_field, skills, recommended_courses, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.ResumeScore, &a.PageCount,
			&a.PredictedField, &a.Skills, &a.RecommendedCourses, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", err)
	}
	return out, nil
}
