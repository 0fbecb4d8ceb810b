package keywords

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shubham/internhunt/internal/schemas"
)

//go:embed tables.json
var tablesJSON []byte

//go:embed tables_schema.json
var tablesSchemaJSON []byte

// Set holds the core and related keywords for one category or role. Core
// terms are strong signals and carry heavier weight in scoring; related
// terms are supportive.
type Set struct {
	Name    string   `json:"name"`
	Core    []string `json:"core"`
	Related []string `json:"related"`
}

// Empty reports whether the set has no keywords at all. Empty sets are
// excluded from ranking so they never filter anything.
func (s Set) Empty() bool {
	return len(s.Core) == 0 && len(s.Related) == 0
}

// Tables is the immutable keyword configuration loaded once at process start
// and passed by reference into the components that need it.
type Tables struct {
	Categories []Set `json:"categories"`
	Roles      []Set `json:"roles"`

	categoryIndex map[string]int
	roleIndex     map[string]int
}

// LoadTables parses and validates the embedded keyword tables.
func LoadTables() (*Tables, error) {
	if err := schemas.ValidateBytes("keyword tables", tablesSchemaJSON, tablesJSON); err != nil {
		return nil, fmt.Errorf("embedded keyword tables are invalid: %w", err)
	}

	var t Tables
	if err := json.Unmarshal(tablesJSON, &t); err != nil {
		return nil, fmt.Errorf("failed to parse keyword tables: %w", err)
	}

	t.categoryIndex = make(map[string]int, len(t.Categories))
	for i, c := range t.Categories {
		t.categoryIndex[c.Name] = i
	}
	t.roleIndex = make(map[string]int, len(t.Roles))
	for i, r := range t.Roles {
		t.roleIndex[r.Name] = i
	}
	return &t, nil
}

// Category returns the keyword set for a career category, if known.
func (t *Tables) Category(name string) (Set, bool) {
	i, ok := t.categoryIndex[name]
	if !ok {
		return Set{}, false
	}
	return t.Categories[i], true
}

// Role returns the keyword set for a role, if known.
func (t *Tables) Role(name string) (Set, bool) {
	i, ok := t.roleIndex[name]
	if !ok {
		return Set{}, false
	}
	return t.Roles[i], true
}

// RoleOrder returns the declaration index of a role, used as the stable
// tie-break when ranking roles by score. Unknown roles sort last.
func (t *Tables) RoleOrder(name string) int {
	if i, ok := t.roleIndex[name]; ok {
		return i
	}
	return len(t.Roles)
}
