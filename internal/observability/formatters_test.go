package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shubham/internhunt/internal/courses"
	"github.com/shubham/internhunt/internal/skills"
	"github.com/shubham/internhunt/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ResumeRecord{
		Name:      "Priya Sharma",
		Email:     "priya@example.com",
		Phone:     "+91 9876543210",
		PageCount: 2,
		Skills:    []string{"Python", "SQL"},
		Sections:  types.Sections{Experience: true, Skills: true},
	}

	p.PrintResume(record)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "Priya Sharma")
	assert.Contains(t, output, "priya@example.com")
	assert.Contains(t, output, "experience, skills")
	assert.Contains(t, output, "Skills (2)")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &types.ScoreBreakdown{
		Total: 72,
		Components: []types.ScoreComponent{
			{Name: "Contact details", Value: 10, Max: 10},
			{Name: "Skill coverage", Value: 12, Max: 25},
		},
		Suggestions: []string{"Add a projects section"},
	}

	p.PrintScore(score)
	output := buf.String()

	assert.Contains(t, output, "RESUME SCORE")
	assert.Contains(t, output, "Total: 72/100")
	assert.Contains(t, output, "Contact details")
	assert.Contains(t, output, "Add a projects section")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", 10), scoreBar(10, 10, 10))
	assert.Equal(t, strings.Repeat("░", 10), scoreBar(0, 10, 10))
	assert.Equal(t, "█████░░░░░", scoreBar(5, 10, 10))
	// Out-of-range values clamp instead of panicking.
	assert.Equal(t, strings.Repeat("█", 10), scoreBar(15, 10, 10))
	assert.Equal(t, strings.Repeat("░", 10), scoreBar(-1, 10, 10))
}

func TestPrintSkillGroups(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	groups := []skills.CategoryGroup{
		{Name: "Programming Languages", Skills: []string{"Python", "Java"}},
		{Name: "Databases", Skills: []string{"PostgreSQL"}},
	}

	p.PrintSkillGroups(groups)
	output := buf.String()

	assert.Contains(t, output, "SKILL GROUPS")
	assert.Contains(t, output, "Programming Languages (2)")
	assert.Contains(t, output, "PostgreSQL")
}

func TestPrintSkillGroups_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGroups(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCategory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prediction := &types.CategoryPrediction{
		Category:   "Data Science",
		Confidence: 0.62,
		Alternatives: []types.Alternative{
			{Category: "Web Development", Probability: 0.25},
		},
	}

	p.PrintCategory(prediction)
	output := buf.String()

	assert.Contains(t, output, "CAREER CATEGORY")
	assert.Contains(t, output, "Data Science (62%)")
	assert.Contains(t, output, "Web Development (25%)")
}

func TestPrintRoleAlignment(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	alignment := &types.RoleAlignment{
		Best: &types.RoleScore{Role: "Data Scientist", Score: 14, Capped: 7},
		Ranked: []types.RoleScore{
			{Role: "Data Scientist", Score: 14, Capped: 7, Matched: []string{"python", "pandas"}},
			{Role: "Backend Developer", Score: 6, Capped: 3, Explicit: true},
		},
	}

	p.PrintRoleAlignment(alignment)
	output := buf.String()

	assert.Contains(t, output, "ROLE ALIGNMENT")
	assert.Contains(t, output, "Best fit: Data Scientist (7/8)")
	assert.Contains(t, output, "python, pandas")
	assert.Contains(t, output, "(requested)")
}

func TestPrintCourses(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recommended := []courses.Course{
		{Title: "Machine Learning Crash Course", URL: "https://example.com/ml"},
		{Title: "SQL for Data Analysis", URL: "https://example.com/sql"},
	}

	p.PrintCourses(recommended)
	output := buf.String()

	assert.Contains(t, output, "COURSE RECOMMENDATIONS")
	assert.Contains(t, output, "Recommended 2 courses")
	assert.Contains(t, output, "Machine Learning Crash Course")
}

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.JobSearchResult{
		Jobs: []types.JobListing{
			{Title: "Data Science Intern", Company: "Acme", Location: "Remote", Source: "Jooble"},
			{Title: "ML Engineer", Company: "Beta", Location: "Pune", Source: "Internshala"},
		},
		Filtered:     true,
		TotalFetched: 10,
	}

	p.PrintJobs(result)
	output := buf.String()

	assert.Contains(t, output, "JOB LISTINGS")
	assert.Contains(t, output, "Showing 2 of 10 fetched jobs")
	assert.Contains(t, output, "Acme · Remote · Jooble")
}

func TestPrintJobs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobs(&types.JobSearchResult{})

	assert.Contains(t, buf.String(), "No matching jobs found.")
}
