// Package roles provides role-alignment scoring: a heuristic match between a
// candidate's skills (or a job's text) and a named role's expected keyword
// vocabulary.
package roles

import (
	"sort"
	"strings"

	"github.com/shubham/internhunt/internal/keywords"
	"github.com/shubham/internhunt/internal/types"
)

// Keyword weights. Hits in a title are strong signals; hits anywhere in the
// body are supportive.
const (
	coreTitleWeight    = 5
	relatedTitleWeight = 2
	coreBodyWeight     = 3
	relatedBodyWeight  = 1

	// displayScaleMax caps the per-role match count shown in the UI.
	displayScaleMax = 8
)

// Scorer computes role alignment against the static role keyword tables.
type Scorer struct {
	tables  *keywords.Tables
	matcher *keywords.Matcher
}

// NewScorer returns a Scorer over the given tables. The matcher is shared
// and safe for concurrent use.
func NewScorer(tables *keywords.Tables, matcher *keywords.Matcher) *Scorer {
	return &Scorer{tables: tables, matcher: matcher}
}

// AlignTitleAndBody scores one keyword set against a title and a full text
// blob. Both inputs are matched as-is, so callers lowercase beforehand.
func (s *Scorer) AlignTitleAndBody(title, blob string, set keywords.Set) (score int, matched []string) {
	coreTitle, _ := s.matcher.CountMatches(set.Core, title)
	relatedTitle, _ := s.matcher.CountMatches(set.Related, title)
	coreBody, coreHits := s.matcher.CountMatches(set.Core, blob)
	relatedBody, relatedHits := s.matcher.CountMatches(set.Related, blob)

	score = coreTitleWeight*coreTitle + relatedTitleWeight*relatedTitle +
		coreBodyWeight*coreBody + relatedBodyWeight*relatedBody
	matched = append(matched, coreHits...)
	matched = append(matched, relatedHits...)
	return score, matched
}

// AlignText scores one keyword set against a plain text blob with no title
// field, as when the subject is a resume rather than a job posting. Only the
// body-weighted terms apply.
func (s *Scorer) AlignText(blob string, set keywords.Set) (score int, matched []string) {
	return s.AlignTitleAndBody("", blob, set)
}

// Align ranks every known role against the candidate's skills and picks a
// target. Roles are ranked by descending score with ties broken by table
// declaration order. When targetRole names a role present in the table it is
// reported as the target even if not top-ranked; otherwise the top-ranked
// role with a non-zero score is auto-detected.
func (s *Scorer) Align(skillList []string, targetRole string) *types.RoleAlignment {
	blob := strings.ToLower(strings.Join(keywords.NormalizeAll(skillList), " "))

	ranked := make([]types.RoleScore, 0, len(s.tables.Roles))
	for _, role := range s.tables.Roles {
		if role.Empty() {
			continue
		}
		score, matched := s.AlignText(blob, role)
		ranked = append(ranked, types.RoleScore{
			Role:    role.Name,
			Score:   score,
			Matched: matched,
			Capped:  min(len(matched), displayScaleMax),
		})
	}

	// Stable sort over the declaration-ordered slice keeps ties in table
	// order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	alignment := &types.RoleAlignment{Ranked: ranked}

	if targetRole != "" {
		if _, ok := s.tables.Role(targetRole); ok {
			for i := range ranked {
				if ranked[i].Role == targetRole {
					chosen := ranked[i]
					chosen.Explicit = true
					alignment.Best = &chosen
					return alignment
				}
			}
		}
	}

	if len(ranked) > 0 && ranked[0].Score > 0 {
		best := ranked[0]
		alignment.Best = &best
	}
	return alignment
}
