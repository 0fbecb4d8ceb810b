package chat

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/shubham/internhunt/internal/types"
)

// Style selects the assistant's answer format.
type Style string

// Response styles offered to the user.
const (
	StyleConcise  Style = "concise"
	StyleDetailed Style = "detailed"
	StyleShort    Style = "short"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	// maxHistoryMessages keeps the prompt within quota: three exchanges.
	maxHistoryMessages = 6
	// maxContextChars truncates oversized resume context.
	maxContextChars = 3000
)

var stylePrompts = map[Style]string{
	StyleConcise:  "You are InternHunt Assistant. Be concise and practical. Use short bullet points and emojis sparingly.",
	StyleDetailed: "You are InternHunt Assistant. Provide detailed bullet points with 1-line rationale for each. Be comprehensive but organized.",
	StyleShort:    "You are InternHunt Assistant. Answer in 2-3 short sentences, directly addressing the user's request. Be friendly and encouraging.",
}

// Assistant answers career questions grounded in the candidate's resume.
// A nil Assistant (no API key configured) degrades to ErrUnavailable.
type Assistant struct {
	gen Generator
}

// ErrUnavailable is returned when no generator is configured.
var ErrUnavailable = fmt.Errorf("chat assistant is not configured")

func NewAssistant(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Reply builds a prompt from the conversation history, the resume context,
// and the selected style, and returns the assistant's answer.
func (a *Assistant) Reply(ctx context.Context, history []Message, resumeContext string, style Style) (string, error) {
	if a == nil || a.gen == nil {
		return "", ErrUnavailable
	}

	system, ok := stylePrompts[style]
	if !ok {
		system = stylePrompts[StyleConcise]
	}

	formatted := "No resume information available. Ask the user to upload their resume for personalized advice."
	if len(resumeContext) > 10 {
		if len(resumeContext) > maxContextChars {
			resumeContext = resumeContext[:maxContextChars]
		}
		formatted = resumeContext
	}

	var lines []string
	start := 0
	if len(history) > maxHistoryMessages {
		start = len(history) - maxHistoryMessages
	}
	for _, m := range history[start:] {
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		prefix := "User"
		if m.Role == "assistant" {
			prefix = "Assistant"
		}
		lines = append(lines, prefix+": "+content)
	}
	historyText := "User: Hello"
	if len(lines) > 0 {
		historyText = strings.Join(lines, "\n")
	}

	prompt := fmt.Sprintf(
		"%s\n\nResume summary (use this context in your answer):\n%s\n\nConversation so far:\n%s\n\nAssistant:",
		system, formatted, historyText,
	)
	return a.gen.Generate(ctx, prompt)
}

// Close releases the underlying generator.
func (a *Assistant) Close() error {
	if a == nil || a.gen == nil {
		return nil
	}
	return a.gen.Close()
}

// BuildResumeContext summarizes a parsed resume into the compact text block
// injected into the assistant prompt.
func BuildResumeContext(r *types.ResumeRecord) string {
	if r == nil {
		return "No resume data available."
	}

	var parts []string
	if r.Name != "" {
		parts = append(parts, "Candidate: "+r.Name)
	}
	if r.Email != "" {
		parts = append(parts, "Email: "+r.Email)
	}
	if r.Sections.Experience {
		parts = append(parts, "Has work or internship experience listed")
	} else {
		parts = append(parts, "Experience: Fresh graduate/Entry level")
	}

	if len(r.Skills) > 0 {
		uniq := make([]string, 0, len(r.Skills))
		seen := make(map[string]bool, len(r.Skills))
		for _, s := range r.Skills {
			s = strings.TrimSpace(s)
			if s == "" || seen[strings.ToLower(s)] {
				continue
			}
			seen[strings.ToLower(s)] = true
			uniq = append(uniq, s)
		}
		sort.Slice(uniq, func(i, j int) bool {
			return strings.ToLower(uniq[i]) < strings.ToLower(uniq[j])
		})
		parts = append(parts, fmt.Sprintf("Skills (%d): %s", len(uniq), strings.Join(uniq, ", ")))
	}

	if r.Links.GitHub != "" {
		parts = append(parts, "GitHub: "+r.Links.GitHub)
	}
	if r.Links.LinkedIn != "" {
		parts = append(parts, "LinkedIn: "+r.Links.LinkedIn)
	}
	if len(parts) == 0 {
		return "No resume data available."
	}
	return strings.Join(parts, "\n")
}

// genericQuestions are offered when no resume has been uploaded.
var genericQuestions = []string{
	"What skills should I focus on for my career?",
	"How can I improve my resume?",
	"What jobs should I apply for?",
	"Tell me about current industry trends",
	"How do I prepare for technical interviews?",
}

// maxSuggestedQuestions bounds the suggestion list shown in the UI.
const maxSuggestedQuestions = 6

// SuggestedQuestions proposes conversation starters tailored to the resume.
// A nil rng falls back to the global source.
func SuggestedQuestions(r *types.ResumeRecord, rng *rand.Rand) []string {
	if r == nil {
		return append([]string(nil), genericQuestions...)
	}

	var qs []string
	if r.Sections.Experience {
		qs = append(qs,
			"How can I leverage my internship experience in applications?",
			"What skills gap should I address?",
			"How do I present my experience on my resume?",
		)
	} else {
		qs = append(qs,
			"What entry-level positions should I target?",
			"How can I gain experience as a fresh graduate?",
			"What projects should I build to stand out?",
		)
	}

	lower := strings.ToLower(strings.Join(r.Skills, " "))
	if strings.Contains(lower, "python") {
		qs = append(qs, "What Python frameworks should I learn next?")
	}
	if strings.Contains(lower, "javascript") {
		qs = append(qs, "Should I focus on frontend or backend JavaScript?")
	}
	if strings.Contains(lower, "data") || strings.Contains(lower, "machine learning") {
		qs = append(qs, "What data science certifications are worth pursuing?")
	}

	qs = append(qs,
		"How competitive is my profile in the current market?",
		"What's missing from my skill set?",
		"What are the latest trends in my field?",
	)

	if len(qs) <= maxSuggestedQuestions {
		return qs
	}
	var perm []int
	if rng != nil {
		perm = rng.Perm(len(qs))
	} else {
		perm = rand.Perm(len(qs))
	}
	out := make([]string, maxSuggestedQuestions)
	for i := range out {
		out[i] = qs[perm[i]]
	}
	return out
}
