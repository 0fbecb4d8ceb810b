package roles

import (
	"testing"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer(t *testing.T) *Scorer {
	t.Helper()
	tables, err := keywords.LoadTables()
	require.NoError(t, err)
	return NewScorer(tables, keywords.NewMatcher())
}

func TestAlign_AutoDetectsBestRole(t *testing.T) {
	s := newTestScorer(t)

	alignment := s.Align([]string{"React", "JavaScript", "CSS", "HTML", "Redux"}, "")

	require.NotNil(t, alignment.Best)
	assert.Equal(t, "Frontend Developer", alignment.Best.Role)
	assert.False(t, alignment.Best.Explicit)
	assert.Greater(t, alignment.Best.Score, 0)
	assert.Contains(t, alignment.Best.Matched, "react")
}

func TestAlign_ExplicitTargetReportedEvenIfNotTop(t *testing.T) {
	s := newTestScorer(t)

	// Frontend-heavy skills with an explicit DevOps target.
	alignment := s.Align([]string{"React", "JavaScript", "CSS", "Docker"}, "DevOps Engineer")

	require.NotNil(t, alignment.Best)
	assert.Equal(t, "DevOps Engineer", alignment.Best.Role)
	assert.True(t, alignment.Best.Explicit)

	// The ranked list itself is still score-ordered.
	assert.Equal(t, "Frontend Developer", alignment.Ranked[0].Role)
}

func TestAlign_UnknownTargetFallsBackToAutoDetect(t *testing.T) {
	s := newTestScorer(t)

	alignment := s.Align([]string{"python", "machine learning", "pandas"}, "Chief Vibes Officer")

	require.NotNil(t, alignment.Best)
	assert.False(t, alignment.Best.Explicit)
}

func TestAlign_NoSignalMeansNoBestRole(t *testing.T) {
	s := newTestScorer(t)

	alignment := s.Align([]string{"zzqux", "flurble"}, "")

	assert.Nil(t, alignment.Best)
	require.NotEmpty(t, alignment.Ranked)
	for _, r := range alignment.Ranked {
		assert.Zero(t, r.Score)
	}
}

func TestAlign_RankedDescendingWithStableTies(t *testing.T) {
	s := newTestScorer(t)

	alignment := s.Align([]string{"python", "sql", "docker"}, "")
	tables, err := keywords.LoadTables()
	require.NoError(t, err)

	for i := 1; i < len(alignment.Ranked); i++ {
		prev, cur := alignment.Ranked[i-1], alignment.Ranked[i]
		assert.GreaterOrEqual(t, prev.Score, cur.Score)
		if prev.Score == cur.Score {
			assert.Less(t, tables.RoleOrder(prev.Role), tables.RoleOrder(cur.Role))
		}
	}
}

func TestAlignTitleAndBody_TitleHitsOutweighBodyHits(t *testing.T) {
	s := newTestScorer(t)
	tables, err := keywords.LoadTables()
	require.NoError(t, err)
	set, ok := tables.Category("Data Science")
	require.True(t, ok)

	titleScore, _ := s.AlignTitleAndBody("senior data scientist", "senior data scientist", set)
	bodyScore, _ := s.AlignTitleAndBody("", "senior data scientist", set)

	assert.Greater(t, titleScore, bodyScore)
	// Two core hits in the title alone are worth at least 10.
	assert.GreaterOrEqual(t, titleScore, 10)
}

func TestAlignText_DisplayScaleIsCapped(t *testing.T) {
	s := newTestScorer(t)

	alignment := s.Align([]string{
		"python", "machine learning", "statistics", "pandas", "numpy",
		"tensorflow", "pytorch", "scikit-learn", "sql", "deep learning",
	}, "")

	require.NotNil(t, alignment.Best)
	assert.LessOrEqual(t, alignment.Best.Capped, 8)
}
