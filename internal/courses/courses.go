// Package courses recommends learning resources matched to the skills a
// resume already shows, grouped by career domain.
package courses

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/schemas"
)

//go:embed courses.json
var coursesJSON []byte

//go:embed courses_schema.json
var coursesSchemaJSON []byte

// Course is one recommendable learning resource.
type Course struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Domain groups courses under a career area with the skills that trigger it.
type Domain struct {
	Name     string   `json:"name"`
	Triggers []string `json:"triggers"`
	Courses  []Course `json:"courses"`
}

type tables struct {
	Domains []Domain `json:"domains"`
}

// Recommender samples courses from the domains a skill list triggers.
type Recommender struct {
	domains []Domain
}

// NewRecommender loads and validates the embedded course tables.
func NewRecommender() (*Recommender, error) {
	if err := schemas.ValidateBytes("courses", coursesSchemaJSON, coursesJSON); err != nil {
		return nil, err
	}
	var t tables
	if err := json.Unmarshal(coursesJSON, &t); err != nil {
		return nil, fmt.Errorf("failed to parse course tables: %w", err)
	}
	return &Recommender{domains: t.Domains}, nil
}

// Pool returns every course from domains triggered by the given skills, in
// domain declaration order. Skills are normalized before trigger matching.
func (r *Recommender) Pool(skillList []string) []Course {
	have := make(map[string]bool, len(skillList))
	for _, s := range keywords.NormalizeAll(skillList) {
		have[s] = true
	}

	var pool []Course
	for _, d := range r.domains {
		for _, trigger := range d.Triggers {
			if have[keywords.Normalize(trigger)] {
				pool = append(pool, d.Courses...)
				break
			}
		}
	}
	return pool
}

// Recommend returns up to n randomly sampled courses from the triggered
// pool, without replacement. A nil rng falls back to the global source.
// No triggered domains means no recommendations, not an error.
func (r *Recommender) Recommend(skillList []string, n int, rng *rand.Rand) []Course {
	pool := r.Pool(skillList)
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	var perm []int
	if rng != nil {
		perm = rng.Perm(len(pool))
	} else {
		perm = rand.Perm(len(pool))
	}
	out := make([]Course, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}
