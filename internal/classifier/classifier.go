// Package classifier predicts a resume's career category from its text.
package classifier

import (
	"sort"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/types"
)

// Classifier predicts a career category for a block of resume text.
// Implementations return nil when they cannot make a confident call;
// downstream ranking is simply skipped in that case.
type Classifier interface {
	Predict(text string) *types.CategoryPrediction
	PredictProba(text string) []types.Alternative
}

// maxAlternatives is how many runner-up categories are surfaced alongside
// the top prediction.
const maxAlternatives = 2

// KeywordClassifier scores each career category by counting keyword hits in
// the resume text: core hits count double. Probabilities are the category's
// share of the total hit mass.
type KeywordClassifier struct {
	tables  *keywords.Tables
	matcher *keywords.Matcher
}

func NewKeywordClassifier(tables *keywords.Tables) *KeywordClassifier {
	return &KeywordClassifier{tables: tables, matcher: keywords.NewMatcher()}
}

// Predict returns the highest-scoring category with its share of hit mass
// as confidence, or nil when no category keyword appears at all.
func (c *KeywordClassifier) Predict(text string) *types.CategoryPrediction {
	proba := c.PredictProba(text)
	if len(proba) == 0 {
		return nil
	}

	top := proba[0]
	alts := proba[1:]
	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}
	return &types.CategoryPrediction{
		Category:     top.Category,
		Confidence:   top.Probability,
		Alternatives: alts,
	}
}

// PredictProba scores every category and returns those with nonzero mass,
// highest first. Ties keep table declaration order. Confidences sum to 1.
func (c *KeywordClassifier) PredictProba(text string) []types.Alternative {
	if text == "" {
		return nil
	}

	type scored struct {
		name  string
		order int
		hits  int
	}
	var all []scored
	total := 0
	for i, set := range c.tables.Categories {
		core, _ := c.matcher.CountMatches(set.Core, text)
		related, _ := c.matcher.CountMatches(set.Related, text)
		hits := 2*core + related
		if hits == 0 {
			continue
		}
		all = append(all, scored{name: set.Name, order: i, hits: hits})
		total += hits
	}
	if total == 0 {
		return nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].hits != all[j].hits {
			return all[i].hits > all[j].hits
		}
		return all[i].order < all[j].order
	})

	out := make([]types.Alternative, len(all))
	for i, s := range all {
		out[i] = types.Alternative{
			Category:    s.name,
			Probability: float64(s.hits) / float64(total),
		}
	}
	return out
}
