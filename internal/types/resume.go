// Package types provides type definitions for structured data used throughout the InternHunt system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strconv"

// ResumeRecord represents the structured output of parsing an uploaded resume.
// It is created once per upload and treated as immutable for the session.
type ResumeRecord struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Skills      []string `json:"skills"`
	Sections    Sections `json:"sections"`
	Links       Links    `json:"links"`
	RawText     string   `json:"raw_text,omitempty"`
	PageCount   int      `json:"page_count"`
	SourceName  string   `json:"source_name,omitempty"`
	SourceBytes int64    `json:"source_bytes,omitempty"`
}

// Sections records which standard resume sections were detected.
type Sections struct {
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
	Summary    bool `json:"summary"`
	Projects   bool `json:"projects"`
}

// Links records profile links detected in the resume text.
type Links struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ID identifies a parsed resume for session caching purposes.
// A new upload with the same name but a different size is a different resume.
func (r *ResumeRecord) ID() string {
	if r == nil {
		return ""
	}
	return r.SourceName + ":" + strconv.FormatInt(r.SourceBytes, 10)
}
