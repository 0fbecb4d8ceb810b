//nolint:revive // types is a standard Go package name pattern
package types

// CategoryPrediction is the output of the career category classifier: the
// best label with its confidence plus the two next-best alternatives.
// A nil prediction means no usable classifier was available; downstream
// ranking treats that as "skip filtering".
type CategoryPrediction struct {
	Category     string        `json:"category"`
	Confidence   float64       `json:"confidence"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// Alternative is a runner-up category label with its probability.
type Alternative struct {
	Category    string  `json:"category"`
	Probability float64 `json:"probability"`
}

// RoleScore is the alignment score for a single role plus the keywords that
// produced it.
type RoleScore struct {
	Role     string   `json:"role"`
	Score    int      `json:"score"`
	Matched  []string `json:"matched"`
	Capped   int      `json:"capped"` // score mapped onto the 0-8 display scale
	Explicit bool     `json:"explicit,omitempty"`
}

// RoleAlignment ranks roles by alignment score. Best is the auto-detected or
// user-chosen target role; Ranked preserves descending score order with ties
// broken by role declaration order.
type RoleAlignment struct {
	Best   *RoleScore  `json:"best,omitempty"`
	Ranked []RoleScore `json:"ranked"`
}
