package analysis

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham/internhunt/internal/types"
)

func sampleRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		Name:   "Asha Rao",
		Email:  "asha@example.com",
		Phone:  "+91 98765 43210",
		Skills: []string{"python", "pandas", "machine learning", "sql", "react"},
		Sections: types.Sections{
			Experience: true,
			Education:  true,
			Skills:     true,
			Summary:    true,
			Projects:   true,
		},
		Links: types.Links{
			LinkedIn: "https://linkedin.com/in/asha",
			GitHub:   "https://github.com/asha",
		},
		RawText: "Asha Rao. Data scientist with machine learning, statistics and analytics " +
			"experience. Built models with pandas and sql. Some react frontend work.",
		PageCount: 1,
	}
}

func TestAnalyzeRecordFullResult(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)

	got := a.AnalyzeRecord(context.Background(), sampleRecord(), Options{
		Rand: rand.New(rand.NewSource(1)),
	})

	require.NotNil(t, got.Score)
	assert.Greater(t, got.Score.Total, 0)
	assert.LessOrEqual(t, got.Score.Total, 100)

	require.NotEmpty(t, got.SkillGroups)

	require.NotNil(t, got.Category)
	assert.Equal(t, "Data Science", got.Category.Category)

	require.NotNil(t, got.RoleAlignment)
	require.NotNil(t, got.RoleAlignment.Best)

	assert.Len(t, got.Courses, defaultCourseCount, "python and react trigger course domains")
}

func TestAnalyzeRecordSparseResume(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)

	got := a.AnalyzeRecord(context.Background(), &types.ResumeRecord{RawText: "hello"}, Options{})

	require.NotNil(t, got.Score)
	assert.Nil(t, got.Category, "no category signal")
	assert.Empty(t, got.SkillGroups)
	assert.Empty(t, got.Courses)
}

func TestAnalyzeRecordExplicitTargetRole(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)

	got := a.AnalyzeRecord(context.Background(), sampleRecord(), Options{TargetRole: "Frontend Developer"})

	require.NotNil(t, got.RoleAlignment)
	require.NotNil(t, got.RoleAlignment.Best)
	assert.Equal(t, "Frontend Developer", got.RoleAlignment.Best.Role)
	assert.True(t, got.RoleAlignment.Best.Explicit)
}

func TestAnalyzeRejectsNonPDF(t *testing.T) {
	a, err := New(nil)
	require.NoError(t, err)

	_, err = a.Analyze(context.Background(), []byte("plain text"), "resume.txt", Options{})
	assert.Error(t, err)
}
