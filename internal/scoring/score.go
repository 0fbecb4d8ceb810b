package scoring

import (
	"fmt"

	"github.com/shubham/internhunt/internal/types"
)

// Thresholds for deriving qualitative areas from component ratios.
const (
	strongAreaRatio = 0.8
	weakAreaRatio   = 0.5
	suggestionRatio = 0.6
)

// suggestionTemplates maps a component to the improvement hint emitted when
// it scores under the suggestion threshold.
var suggestionTemplates = map[string]string{
	ComponentBasicInfo:        "Add your full name, email address and phone number at the top of the resume.",
	ComponentSkills:           "List more concrete skills; aim for 10-15 specific tools and technologies.",
	ComponentSections:         "Add the missing standard sections: a 2-3 sentence summary, work experience in STAR-format bullets, education, skills and projects.",
	ComponentAchievements:     "Quantify your impact: use action verbs and numbers (\"improved X by 30%\").",
	ComponentRecency:          "Show recent activity; include dates for your latest roles and projects.",
	ComponentLinks:            "Add your LinkedIn and GitHub profile links.",
	ComponentContentQuality:   "Flesh out the resume body: more skills, complete sections and enough descriptive text.",
	ComponentKeywordRelevance: "Mirror the vocabulary of your target role; weave its key technologies into your bullets.",
	ComponentFormatting:       "Keep the resume to 1-2 pages with contact details and a dedicated skills section.",
	ComponentExperienceImpact: "Describe outcomes, not duties: what changed because of your work?",
	ComponentReadability:      "Aim for a concise resume body; very short or very long resumes read poorly.",
}

// Aggregator combines component sub-scores into a ScoreBreakdown. The
// numeric sub-scoring is delegated to the Analytics collaborator; the
// aggregator owns clamping, suggestion derivation and the strong/weak split.
type Aggregator struct {
	analytics Analytics
}

// NewAggregator returns an Aggregator over the given sub-scorer.
func NewAggregator(analytics Analytics) *Aggregator {
	return &Aggregator{analytics: analytics}
}

// Score computes the full breakdown for a resume. When targetRole is
// non-empty it is threaded into the keyword-relevance sub-component so
// alignment is computed against that role instead of an auto-detected one.
// Scoring is deterministic and never fails: missing resume fields simply
// contribute zero to their components.
func (a *Aggregator) Score(resume *types.ResumeRecord, targetRole string) *types.ScoreBreakdown {
	components := a.analytics.Components(resume, targetRole)

	breakdown := &types.ScoreBreakdown{
		Components:  components,
		Suggestions: []string{},
		StrongAreas: []string{},
		WeakAreas:   []string{},
	}

	total := 0
	for _, c := range components {
		total += c.Value

		ratio := 0.0
		if c.Max > 0 {
			ratio = float64(c.Value) / float64(c.Max)
		}

		switch {
		case ratio >= strongAreaRatio:
			breakdown.StrongAreas = append(breakdown.StrongAreas, c.Name)
		case ratio <= weakAreaRatio:
			breakdown.WeakAreas = append(breakdown.WeakAreas, c.Name)
		}

		if ratio < suggestionRatio {
			if tmpl, ok := suggestionTemplates[c.Name]; ok {
				breakdown.Suggestions = append(breakdown.Suggestions, tmpl)
			} else {
				breakdown.Suggestions = append(breakdown.Suggestions,
					fmt.Sprintf("Improve the %s portion of your resume (%d/%d).", c.Name, c.Value, c.Max))
			}
		}
	}

	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	breakdown.Total = total
	return breakdown
}
