// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/shubham/internhunt/internal/courses"
	"github.com/shubham/internhunt/internal/skills"
	"github.com/shubham/internhunt/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintResume(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", record.Name))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", record.Email))
	if record.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", record.Phone))
	}
	sb.WriteString(fmt.Sprintf("Pages:  %d\n", record.PageCount))

	var sections []string
	if record.Sections.Summary {
		sections = append(sections, "summary")
	}
	if record.Sections.Experience {
		sections = append(sections, "experience")
	}
	if record.Sections.Education {
		sections = append(sections, "education")
	}
	if record.Sections.Skills {
		sections = append(sections, "skills")
	}
	if record.Sections.Projects {
		sections = append(sections, "projects")
	}
	if len(sections) > 0 {
		sb.WriteString(fmt.Sprintf("\nSections: %s\n", strings.Join(sections, ", ")))
	}

	if len(record.Skills) > 0 {
		skillLine := strings.Join(record.Skills, ", ")
		if len(skillLine) > 45 {
			skillLine = skillLine[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(record.Skills), skillLine))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScore outputs the score breakdown with per-component bars.
func (p *Printer) PrintScore(score *types.ScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d/100\n\n", score.Total))

	for _, c := range score.Components {
		bar := scoreBar(c.Value, c.Max, 10)
		sb.WriteString(fmt.Sprintf("%-22s %s %d/%d\n", c.Name, bar, c.Value, c.Max))
	}

	if len(score.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(score.Suggestions), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", score.Suggestions[i]))
		}
		if len(score.Suggestions) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(score.Suggestions)-3))
		}
	}

	p.printBox("RESUME SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// scoreBar renders value/max as a fixed-width bar.
func scoreBar(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// PrintSkillGroups outputs the categorized skill groups.
func (p *Printer) PrintSkillGroups(groups []skills.CategoryGroup) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for i, g := range groups {
		line := strings.Join(g.Skills, ", ")
		if len(line) > 40 {
			line = line[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s (%d)\n", g.Name, len(g.Skills)))
		sb.WriteString(fmt.Sprintf("  %s\n", line))
		if i < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL GROUPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCategory outputs the predicted career category with alternatives.
func (p *Printer) PrintCategory(prediction *types.CategoryPrediction) {
	if prediction == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Predicted: %s (%.0f%%)\n", prediction.Category, prediction.Confidence*100))

	if len(prediction.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		for _, alt := range prediction.Alternatives {
			sb.WriteString(fmt.Sprintf("  • %s (%.0f%%)\n", alt.Category, alt.Probability*100))
		}
	}

	p.printBox("CAREER CATEGORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleAlignment outputs the top ranked roles with matched keywords.
func (p *Printer) PrintRoleAlignment(alignment *types.RoleAlignment) {
	if alignment == nil || len(alignment.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	if alignment.Best != nil {
		sb.WriteString(fmt.Sprintf("Best fit: %s (%d/8)\n\n", alignment.Best.Role, alignment.Best.Capped))
	}

	count := min(len(alignment.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		role := alignment.Ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, role.Role))
		sb.WriteString(fmt.Sprintf("    Score: %d", role.Score))
		if role.Explicit {
			sb.WriteString(" (requested)")
		}
		sb.WriteString("\n")
		if len(role.Matched) > 0 {
			matched := strings.Join(role.Matched, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", matched))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(alignment.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(alignment.Ranked)-maxItemsToShow))
	}

	p.printBox("ROLE ALIGNMENT", sb.String())
}

// PrintCourses outputs the recommended courses.
func (p *Printer) PrintCourses(recommended []courses.Course) {
	if len(recommended) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommended %d courses:\n\n", len(recommended)))

	count := min(len(recommended), maxItemsToShow)
	for i := 0; i < count; i++ {
		title := recommended[i].Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
	}
	if len(recommended) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(recommended)-maxItemsToShow))
	}

	p.printBox("COURSE RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs the merged and ranked job listings.
func (p *Printer) PrintJobs(result *types.JobSearchResult) {
	if result == nil || len(result.Jobs) == 0 {
		p.printBox("JOB LISTINGS", "No matching jobs found.")
		return
	}

	var sb strings.Builder
	if result.Filtered {
		sb.WriteString(fmt.Sprintf("Showing %d of %d fetched jobs\n\n", len(result.Jobs), result.TotalFetched))
	} else {
		sb.WriteString(fmt.Sprintf("Showing all %d fetched jobs\n\n", len(result.Jobs)))
	}

	count := min(len(result.Jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := result.Jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, job.Title))
		sb.WriteString(fmt.Sprintf("    %s · %s · %s\n", job.Company, job.Location, job.Source))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(result.Jobs)-maxItemsToShow))
	}

	p.printBox("JOB LISTINGS", sb.String())
}
