// Package ranking filters and orders merged job listings by relevance to a
// predicted career category.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/types"
)

// Keyword weights, matching the role-alignment scale: core terms in a title
// are the strongest signal, related terms in the body the weakest.
const (
	coreTitleWeight    = 5
	relatedTitleWeight = 2
	coreBodyWeight     = 3
	relatedBodyWeight  = 1

	// Keep thresholds: a job survives filtering when a core keyword appears
	// anywhere, or its title/total score clears these floors.
	minTitleScore = 3
	minTotalScore = 4
)

// FallbackFloor controls the anti-over-filtering safeguard: when filtering
// keeps fewer than max(MinKept, Fraction*N) jobs, the filter result is
// discarded and the original pool returned unchanged.
type FallbackFloor struct {
	MinKept  int
	Fraction float64
}

// DefaultFallbackFloor mirrors the tuning the product shipped with.
var DefaultFallbackFloor = FallbackFloor{MinKept: 3, Fraction: 0.2}

// Ranker scores jobs against per-category keyword sets.
type Ranker struct {
	tables  *keywords.Tables
	matcher *keywords.Matcher
	floor   FallbackFloor
}

// NewRanker returns a Ranker with the default fallback floor.
func NewRanker(tables *keywords.Tables, matcher *keywords.Matcher) *Ranker {
	return &Ranker{tables: tables, matcher: matcher, floor: DefaultFallbackFloor}
}

// WithFallbackFloor overrides the anti-over-filtering thresholds.
func (r *Ranker) WithFallbackFloor(floor FallbackFloor) *Ranker {
	r.floor = floor
	return r
}

// scored pairs a job with its relevance scores; index keeps the stable
// tie-break on input order.
type scored struct {
	job        types.JobListing
	titleScore int
	totalScore int
	coreInBody int
	index      int
}

// Rank filters the job pool down to listings relevant to the category and
// orders them by descending relevance. It is pure: the input slice is never
// mutated and identical input yields identical output.
//
// Escape hatches, in order: an empty or unknown category returns the input
// unchanged (filtering never happens without a known taxonomy entry), and
// when the kept set falls under the fallback floor the whole filter result
// is discarded in favor of the unfiltered input. The second case is a
// deliberate safeguard against over-pruning when signal is sparse, not an
// error.
func (r *Ranker) Rank(jobs []types.JobListing, category string) ([]types.JobListing, bool) {
	if len(jobs) == 0 || category == "" {
		return jobs, false
	}
	set, ok := r.tables.Category(category)
	if !ok || set.Empty() {
		return jobs, false
	}

	kept := make([]scored, 0, len(jobs))
	for i, job := range jobs {
		s := r.scoreJob(job, set)
		s.index = i
		if s.coreInBody >= 1 || s.titleScore >= minTitleScore || s.totalScore >= minTotalScore {
			kept = append(kept, s)
		}
	}

	floor := math.Max(float64(r.floor.MinKept), r.floor.Fraction*float64(len(jobs)))
	if float64(len(kept)) < floor {
		return jobs, false
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].totalScore > kept[j].totalScore
	})

	out := make([]types.JobListing, len(kept))
	for i, s := range kept {
		out[i] = s.job
	}
	return out, true
}

func (r *Ranker) scoreJob(job types.JobListing, set keywords.Set) scored {
	title := strings.ToLower(strings.ReplaceAll(job.Title, "-", " "))
	body := strings.ToLower(strings.Join([]string{
		title,
		job.Description,
		job.Company,
		strings.Join(job.Tags, " "),
	}, " "))

	coreTitle, _ := r.matcher.CountMatches(set.Core, title)
	relatedTitle, _ := r.matcher.CountMatches(set.Related, title)
	coreBody, _ := r.matcher.CountMatches(set.Core, body)
	relatedBody, _ := r.matcher.CountMatches(set.Related, body)

	titleScore := coreTitleWeight*coreTitle + relatedTitleWeight*relatedTitle
	bodyScore := coreBodyWeight*coreBody + relatedBodyWeight*relatedBody

	return scored{
		job:        job,
		titleScore: titleScore,
		totalScore: titleScore + bodyScore,
		coreInBody: coreBody,
	}
}
