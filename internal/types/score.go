//nolint:revive // types is a standard Go package name pattern
package types

// ScoreComponent is one weighted part of a resume score.
type ScoreComponent struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}

// ScoreBreakdown is the full result of scoring a resume. Total is clamped to
// [0,100] and always equals the sum of the component values. It is a pure
// function of the resume record and target role, never persisted as
// canonical state.
type ScoreBreakdown struct {
	Total       int              `json:"total"`
	Components  []ScoreComponent `json:"components"`
	Suggestions []string         `json:"suggestions"`
	StrongAreas []string         `json:"strong_areas"`
	WeakAreas   []string         `json:"weak_areas"`
}

// Component returns the named component, or nil if absent.
func (b *ScoreBreakdown) Component(name string) *ScoreComponent {
	for i := range b.Components {
		if b.Components[i].Name == name {
			return &b.Components[i]
		}
	}
	return nil
}
