package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/roles"
	"github.com/shubham/internhunt/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResume() *types.ResumeRecord {
	year := time.Now().Year()
	return &types.ResumeRecord{
		Name:   "Priya Sharma",
		Email:  "priya@example.com",
		Phone:  "+91 98765 43210",
		Skills: []string{"Python", "SQL", "Pandas", "NumPy", "Machine Learning", "TensorFlow", "Docker", "Git", "Linux", "Statistics", "Tableau", "Excel", "AWS", "Flask", "REST"},
		Sections: types.Sections{
			Experience: true, Education: true, Skills: true, Summary: true, Projects: true,
		},
		Links: types.Links{
			LinkedIn: "https://linkedin.com/in/priya",
			GitHub:   "https://github.com/priya",
		},
		RawText: fmt.Sprintf(
			"Summary. Led a team of 4 and improved model accuracy by 23%%. "+
				"Launched a data pipeline in %d that reduced costs by 15%%. "+
				"Education %d. Delivered dashboards and won a hackathon award.",
			year, year-3),
		PageCount: 1,
	}
}

func TestScore_FullResumeScoresHigh(t *testing.T) {
	agg := NewAggregator(StandardAnalytics{})

	breakdown := agg.Score(fullResume(), "")

	assert.GreaterOrEqual(t, breakdown.Total, 90)
	assert.LessOrEqual(t, breakdown.Total, 100)
	assert.Empty(t, breakdown.WeakAreas)
	assert.Empty(t, breakdown.Suggestions)
}

func TestScore_TotalEqualsComponentSum(t *testing.T) {
	agg := NewAggregator(StandardAnalytics{})

	resumes := []*types.ResumeRecord{
		fullResume(),
		{},
		{Name: "Only Name"},
		{Skills: []string{"python"}},
		nil,
	}
	for _, r := range resumes {
		breakdown := agg.Score(r, "")
		sum := 0
		maxSum := 0
		for _, c := range breakdown.Components {
			sum += c.Value
			maxSum += c.Max
			assert.LessOrEqual(t, c.Value, c.Max)
			assert.GreaterOrEqual(t, c.Value, 0)
		}
		assert.Equal(t, sum, breakdown.Total)
		assert.Equal(t, 100, maxSum)
		assert.GreaterOrEqual(t, breakdown.Total, 0)
		assert.LessOrEqual(t, breakdown.Total, 100)
	}
}

func TestScore_EmptyResumeDegradesGracefully(t *testing.T) {
	agg := NewAggregator(StandardAnalytics{})

	breakdown := agg.Score(&types.ResumeRecord{}, "")

	assert.Equal(t, 0, breakdown.Total)
	assert.NotEmpty(t, breakdown.Suggestions)
	assert.NotEmpty(t, breakdown.WeakAreas)
	assert.Empty(t, breakdown.StrongAreas)
}

func TestScore_MissingEmailOnlyLowersBasicInfo(t *testing.T) {
	agg := NewAggregator(StandardAnalytics{})

	full := agg.Score(fullResume(), "")

	partial := fullResume()
	partial.Email = ""
	got := agg.Score(partial, "")

	assert.Equal(t, full.Total-5, got.Total)
	require.NotNil(t, got.Component(ComponentBasicInfo))
	assert.Equal(t, 10, got.Component(ComponentBasicInfo).Value)
}

func TestScore_MissingSectionsProduceSuggestions(t *testing.T) {
	agg := NewAggregator(StandardAnalytics{})

	r := fullResume()
	r.Sections = types.Sections{Education: true}
	breakdown := agg.Score(r, "")

	assert.Contains(t, breakdown.WeakAreas, ComponentSections)
	assert.Contains(t, breakdown.Suggestions, suggestionTemplates[ComponentSections])
}

func TestScore_Deterministic(t *testing.T) {
	agg := NewAggregator(StandardAnalytics{})
	r := fullResume()

	first := agg.Score(r, "")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, agg.Score(r, ""))
	}
}

func TestScore_DetailedSchemeUsesTargetRole(t *testing.T) {
	tables, err := keywords.LoadTables()
	require.NoError(t, err)
	agg := NewAggregator(DetailedAnalytics{Roles: roles.NewScorer(tables, keywords.NewMatcher())})

	r := fullResume()
	withRole := agg.Score(r, "Data Scientist")
	withoutSkills := agg.Score(&types.ResumeRecord{RawText: r.RawText}, "Data Scientist")

	require.NotNil(t, withRole.Component(ComponentKeywordRelevance))
	assert.Greater(t, withRole.Component(ComponentKeywordRelevance).Value, 0)
	assert.Equal(t, 0, withoutSkills.Component(ComponentKeywordRelevance).Value)

	sum := 0
	maxSum := 0
	for _, c := range withRole.Components {
		sum += c.Value
		maxSum += c.Max
	}
	assert.Equal(t, sum, withRole.Total)
	assert.Equal(t, 100, maxSum)
}
