// Package parser turns an uploaded PDF resume into a structured record:
// extracted text plus the contact, section, link, and skill signals the
// scoring and classification layers consume.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/skills"
	"github.com/shubham/internhunt/internal/types"
)

var (
	// ErrNotPDF means the upload is not a PDF document.
	ErrNotPDF = errors.New("file is not a PDF")
	// ErrNoText means the PDF opened but yielded no extractable text,
	// typically a scanned image resume.
	ErrNoText = errors.New("no extractable text in PDF")
)

var pdfMagic = []byte("%PDF-")

var (
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-]?)?(?:\(\d{2,4}\)[\s\-]?)?\d{3,5}[\s\-]?\d{3,5}(?:[\s\-]?\d{2,4})?`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_\-%.]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_\-]+`)
)

// sectionHeadings maps each section flag to the heading spellings that
// count as evidence for it.
var sectionHeadings = map[string][]string{
	"experience": {"experience", "work experience", "employment", "internship", "internships", "work history"},
	"education":  {"education", "academic", "qualifications"},
	"skills":     {"skills", "technical skills", "skill set", "technologies"},
	"summary":    {"summary", "objective", "about me", "profile"},
	"projects":   {"projects", "personal projects", "academic projects"},
}

// Parser extracts structured resume records from PDF bytes.
type Parser struct {
	matcher *keywords.Matcher
	lexicon []string
}

// New returns a Parser with the known-skill lexicon loaded.
func New() *Parser {
	return &Parser{
		matcher: keywords.NewMatcher(),
		lexicon: skills.Known(),
	}
}

// Parse extracts text from the PDF and derives the structured record.
// sourceName is the uploaded filename, kept for session identity.
func (p *Parser) Parse(data []byte, sourceName string) (*types.ResumeRecord, error) {
	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, ErrNotPDF
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer func() { _ = doc.Close() }()

	pageCount := doc.NumPage()
	var sb strings.Builder
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	raw := strings.TrimSpace(sb.String())
	if raw == "" {
		return nil, ErrNoText
	}

	record := &types.ResumeRecord{
		RawText:     raw,
		PageCount:   pageCount,
		SourceName:  sourceName,
		SourceBytes: int64(len(data)),
	}
	p.populate(record)
	return record, nil
}

// populate fills the derived fields from the raw text.
func (p *Parser) populate(r *types.ResumeRecord) {
	r.Name = firstLine(r.RawText)
	r.Email = emailPattern.FindString(r.RawText)
	r.Phone = findPhone(r.RawText)
	r.Links = types.Links{
		LinkedIn: normalizeLink(linkedinPattern.FindString(r.RawText)),
		GitHub:   normalizeLink(githubPattern.FindString(r.RawText)),
	}
	r.Sections = detectSections(r.RawText)
	r.Skills = p.extractSkills(r.RawText)
}

// firstLine returns the first non-empty line, which on nearly every resume
// layout is the candidate's name. Lines that are clearly contact data are
// skipped.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if emailPattern.MatchString(line) && len(strings.Fields(line)) <= 2 {
			continue
		}
		// Headings in all-caps longer than a name are section titles.
		if len(line) > 60 {
			continue
		}
		return line
	}
	return ""
}

// findPhone returns the first plausible phone number: at least seven digits
// once separators are stripped, and not part of a longer digit run like a
// zip+id string.
func findPhone(text string) string {
	for _, cand := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range cand {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 7 && digits <= 15 {
			return strings.TrimSpace(cand)
		}
	}
	return ""
}

func normalizeLink(link string) string {
	if link == "" {
		return ""
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		link = "https://" + link
	}
	return link
}

// detectSections flags which standard resume sections appear as headings.
// A heading is a short line that consists of (or starts with) one of the
// known spellings.
func detectSections(text string) types.Sections {
	found := make(map[string]bool, len(sectionHeadings))
	for _, line := range strings.Split(text, "\n") {
		line = strings.ToLower(strings.TrimSpace(strings.TrimRight(line, ": \t")))
		if line == "" || len(line) > 40 {
			continue
		}
		for section, headings := range sectionHeadings {
			if found[section] {
				continue
			}
			for _, h := range headings {
				if line == h || strings.HasPrefix(line, h+" ") || strings.HasPrefix(line, h+":") {
					found[section] = true
					break
				}
			}
		}
	}
	return types.Sections{
		Experience: found["experience"],
		Education:  found["education"],
		Skills:     found["skills"],
		Summary:    found["summary"],
		Projects:   found["projects"],
	}
}

// extractSkills scans the text for every skill in the lexicon using the
// boundary-aware matcher, returning normalized names in lexicon order.
func (p *Parser) extractSkills(text string) []string {
	var out []string
	for _, skill := range p.lexicon {
		if p.matcher.Matches(skill, text) {
			out = append(out, skill)
		}
	}
	return out
}
