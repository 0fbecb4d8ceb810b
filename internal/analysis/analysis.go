// Package analysis provides the high-level orchestration for a resume
// analysis: parse, classify, score, align, and recommend in one pass.
package analysis

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/shubham/internhunt/internal/classifier"
	"github.com/shubham/internhunt/internal/courses"
	"github.com/shubham/internhunt/internal/db"
	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/parser"
	"github.com/shubham/internhunt/internal/roles"
	"github.com/shubham/internhunt/internal/scoring"
	"github.com/shubham/internhunt/internal/skills"
	"github.com/shubham/internhunt/internal/types"
)

// defaultCourseCount is how many course recommendations an analysis carries
// unless the caller asks for a different number.
const defaultCourseCount = 5

// Result is the complete outcome of analyzing one resume.
type Result struct {
	Resume        *types.ResumeRecord       `json:"resume"`
	Score         *types.ScoreBreakdown     `json:"score"`
	SkillGroups   []skills.CategoryGroup    `json:"skill_groups"`
	Category      *types.CategoryPrediction `json:"category,omitempty"`
	RoleAlignment *types.RoleAlignment      `json:"role_alignment,omitempty"`
	Courses       []courses.Course          `json:"courses,omitempty"`
}

// Options tunes a single analysis run.
type Options struct {
	TargetRole  string
	CourseCount int
	Rand        *rand.Rand // course sampling source; nil uses the global one
}

// Analyzer wires the analysis collaborators together. Construct once and
// reuse; it is safe for concurrent use.
type Analyzer struct {
	parser     *parser.Parser
	classifier classifier.Classifier
	scorer     *scoring.Aggregator
	roles      *roles.Scorer
	courses    *courses.Recommender
	store      *db.DB // nil disables persistence
}

// New builds an Analyzer from the embedded keyword and course tables.
func New(store *db.DB) (*Analyzer, error) {
	tables, err := keywords.LoadTables()
	if err != nil {
		return nil, fmt.Errorf("load keyword tables: %w", err)
	}
	recommender, err := courses.NewRecommender()
	if err != nil {
		return nil, fmt.Errorf("load course tables: %w", err)
	}

	roleScorer := roles.NewScorer(tables, keywords.NewMatcher())
	return &Analyzer{
		parser:     parser.New(),
		classifier: classifier.NewKeywordClassifier(tables),
		scorer:     scoring.NewAggregator(scoring.DetailedAnalytics{Roles: roleScorer}),
		roles:      roleScorer,
		courses:    recommender,
		store:      store,
	}, nil
}

// Analyze parses the PDF and derives every analysis artifact. Only a parse
// failure is an error; every downstream collaborator degrades to an absent
// result instead.
func (a *Analyzer) Analyze(ctx context.Context, pdfData []byte, sourceName string, opts Options) (*Result, error) {
	resume, err := a.parser.Parse(pdfData, sourceName)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeRecord(ctx, resume, opts), nil
}

// AnalyzeRecord derives every analysis artifact for an already-parsed
// record.
func (a *Analyzer) AnalyzeRecord(ctx context.Context, resume *types.ResumeRecord, opts Options) *Result {
	result := &Result{Resume: resume}

	// The derivation stages are independent once the record exists.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Score = a.scorer.Score(resume, opts.TargetRole)
		return nil
	})
	g.Go(func() error {
		result.SkillGroups = skills.Categorize(resume.Skills)
		return nil
	})
	g.Go(func() error {
		result.Category = a.classifier.Predict(resume.RawText)
		return nil
	})
	g.Go(func() error {
		result.RoleAlignment = a.roles.Align(resume.Skills, opts.TargetRole)
		return nil
	})
	g.Go(func() error {
		n := opts.CourseCount
		if n <= 0 {
			n = defaultCourseCount
		}
		result.Courses = a.courses.Recommend(resume.Skills, n, opts.Rand)
		return nil
	})
	_ = g.Wait()

	a.persist(ctx, result)
	return result
}

// persist saves the analysis when a database is configured. Failures are
// logged, never surfaced: persistence is a convenience, not a dependency.
func (a *Analyzer) persist(ctx context.Context, r *Result) {
	if a.store == nil {
		return
	}

	record := &db.Analysis{
		Name:      r.Resume.Name,
		Email:     r.Resume.Email,
		PageCount: r.Resume.PageCount,
		Skills:    r.Resume.Skills,
	}
	if r.Score != nil {
		record.ResumeScore = r.Score.Total
	}
	if r.Category != nil {
		record.PredictedField = r.Category.Category
	}
	for _, c := range r.Courses {
		record.RecommendedCourses = append(record.RecommendedCourses, c.Title)
	}

	if _, err := a.store.SaveAnalysis(ctx, record); err != nil {
		log.Printf("failed to persist analysis: %v", err)
	}
}
