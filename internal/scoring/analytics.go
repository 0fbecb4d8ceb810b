// Package scoring computes the resume quality score: independent component
// sub-scores combined into a 0-100 total with improvement suggestions and
// strong/weak area lists.
package scoring

import (
	"regexp"
	"strings"
	"time"

	"github.com/shubham/internhunt/internal/roles"
	"github.com/shubham/internhunt/internal/types"
)

// Component names shared between the sub-scorers and the suggestion
// templates.
const (
	ComponentBasicInfo        = "basic_info"
	ComponentSkills           = "skills"
	ComponentSections         = "sections"
	ComponentAchievements     = "achievements"
	ComponentRecency          = "recency"
	ComponentLinks            = "links"
	ComponentContentQuality   = "content_quality"
	ComponentKeywordRelevance = "keyword_relevance"
	ComponentFormatting       = "formatting"
	ComponentExperienceImpact = "experience_impact"
	ComponentReadability      = "readability"
)

// Analytics computes the component sub-scores for a resume. The aggregator
// owns the combination contract; implementations own the numbers. Each
// returned component carries its own maximum, and maxima must sum to 100.
type Analytics interface {
	Components(resume *types.ResumeRecord, targetRole string) []types.ScoreComponent
}

// StandardAnalytics is the fixed-weight scheme: basic info 15, skills 30,
// sections 25, achievements 15, recency 10, links 5.
type StandardAnalytics struct{}

var achievementPattern = regexp.MustCompile(`(?i)\b(achiev\w*|award\w*|led|improved|increased|reduced|launched|delivered|won)\b|\d+\s*%`)

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// Components scores the resume on the standard scheme. A missing field never
// errors; it simply contributes zero to its component.
func (StandardAnalytics) Components(resume *types.ResumeRecord, _ string) []types.ScoreComponent {
	if resume == nil {
		resume = &types.ResumeRecord{}
	}

	basic := 0
	if strings.TrimSpace(resume.Name) != "" {
		basic += 5
	}
	if strings.TrimSpace(resume.Email) != "" {
		basic += 5
	}
	if strings.TrimSpace(resume.Phone) != "" {
		basic += 5
	}

	// Two points per distinct skill, capped at 15 skills.
	skillCount := len(resume.Skills)
	if skillCount > 15 {
		skillCount = 15
	}
	skillScore := skillCount * 2

	sections := 0
	for _, present := range []bool{
		resume.Sections.Experience,
		resume.Sections.Education,
		resume.Sections.Skills,
		resume.Sections.Summary,
		resume.Sections.Projects,
	} {
		if present {
			sections += 5
		}
	}

	achievements := 0
	if hits := achievementPattern.FindAllString(resume.RawText, 6); hits != nil {
		achievements = len(hits) * 3
		if achievements > 15 {
			achievements = 15
		}
	}

	recency := recencyScore(resume.RawText, time.Now())

	links := 0
	if resume.Links.LinkedIn != "" {
		links += 2
	}
	if resume.Links.GitHub != "" {
		links += 3
	}

	return []types.ScoreComponent{
		{Name: ComponentBasicInfo, Value: basic, Max: 15},
		{Name: ComponentSkills, Value: skillScore, Max: 30},
		{Name: ComponentSections, Value: sections, Max: 25},
		{Name: ComponentAchievements, Value: achievements, Max: 15},
		{Name: ComponentRecency, Value: recency, Max: 10},
		{Name: ComponentLinks, Value: links, Max: 5},
	}
}

// recencyScore rewards resumes that mention recent years: full marks for a
// year within the last two, half within the last four, otherwise zero.
func recencyScore(text string, now time.Time) int {
	latest := 0
	for _, match := range yearPattern.FindAllString(text, -1) {
		year := int(match[0]-'0')*1000 + int(match[1]-'0')*100 + int(match[2]-'0')*10 + int(match[3]-'0')
		if year > latest && year <= now.Year()+1 {
			latest = year
		}
	}
	if latest == 0 {
		return 0
	}
	switch age := now.Year() - latest; {
	case age <= 2:
		return 10
	case age <= 4:
		return 5
	default:
		return 0
	}
}

// DetailedAnalytics is the extended scheme: content quality 50, keyword
// relevance 20, formatting 15, experience impact 10, readability 5. Keyword
// relevance is computed against the target role's keyword vocabulary, or the
// best auto-detected role when none is given.
type DetailedAnalytics struct {
	Roles *roles.Scorer
}

// Components scores the resume on the extended scheme.
func (a DetailedAnalytics) Components(resume *types.ResumeRecord, targetRole string) []types.ScoreComponent {
	if resume == nil {
		resume = &types.ResumeRecord{}
	}

	words := len(strings.Fields(resume.RawText))

	// Content quality: skills breadth plus section coverage plus enough body
	// text to work with.
	content := 0
	skillCount := len(resume.Skills)
	if skillCount > 10 {
		skillCount = 10
	}
	content += skillCount * 2 // up to 20
	for _, present := range []bool{
		resume.Sections.Experience,
		resume.Sections.Education,
		resume.Sections.Skills,
		resume.Sections.Summary,
		resume.Sections.Projects,
	} {
		if present {
			content += 4 // up to 20
		}
	}
	switch {
	case words >= 300:
		content += 10
	case words >= 150:
		content += 5
	}

	relevance := a.keywordRelevance(resume, targetRole)

	formatting := 0
	if resume.PageCount >= 1 && resume.PageCount <= 2 {
		formatting += 5
	}
	if strings.TrimSpace(resume.Email) != "" && strings.TrimSpace(resume.Phone) != "" {
		formatting += 5
	}
	if resume.Sections.Skills {
		formatting += 5
	}

	impact := 0
	if hits := achievementPattern.FindAllString(resume.RawText, 5); hits != nil {
		impact = len(hits) * 2
	}
	if impact > 10 {
		impact = 10
	}

	readability := 0
	if words >= 100 && words <= 900 {
		readability = 5
	} else if words > 0 {
		readability = 2
	}

	return []types.ScoreComponent{
		{Name: ComponentContentQuality, Value: content, Max: 50},
		{Name: ComponentKeywordRelevance, Value: relevance, Max: 20},
		{Name: ComponentFormatting, Value: formatting, Max: 15},
		{Name: ComponentExperienceImpact, Value: impact, Max: 10},
		{Name: ComponentReadability, Value: readability, Max: 5},
	}
}

// keywordRelevance maps role-alignment hits onto the 0-20 relevance band.
func (a DetailedAnalytics) keywordRelevance(resume *types.ResumeRecord, targetRole string) int {
	if a.Roles == nil || len(resume.Skills) == 0 {
		return 0
	}
	alignment := a.Roles.Align(resume.Skills, targetRole)
	if alignment.Best == nil {
		return 0
	}
	relevance := len(alignment.Best.Matched) * 3
	if relevance > 20 {
		relevance = 20
	}
	return relevance
}
