// Package skills provides functionality to group extracted resume skills
// into display categories.
package skills

import (
	"sort"
	"strings"

	"github.com/shubham/internhunt/internal/keywords"
)

// CategoryGroup is one display category with the skills that fell into it,
// in first-seen input order and original casing.
type CategoryGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// category pairs a display name with its membership set. Categories are
// evaluated in declaration order and the first match wins; membership sets
// are disjoint by construction, so order only decides the catch-all.
type category struct {
	name    string
	members map[string]bool
}

// displayCategories is the fixed priority order for the grouped skill view.
var displayCategories = []category{
	{"Languages", set(
		"python", "java", "javascript", "typescript", "go", "c", "c++", "c#",
		"rust", "ruby", "php", "kotlin", "swift", "scala", "r", "matlab",
		"perl", "dart", "bash",
	)},
	{"Frontend", set(
		"react", "angular", "vue", "next.js", "html", "css", "sass", "redux",
		"tailwind", "bootstrap", "jquery", "webpack", "vite",
	)},
	{"Backend", set(
		"node.js", "express", "django", "flask", "fastapi", "spring",
		"hibernate", "rails", "laravel", "graphql", "rest", "grpc",
		"microservices", "celery",
	)},
	{"Libraries & Data/ML", set(
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"machine learning", "deep learning", "nlp", "computer vision",
		"data analysis", "matplotlib", "seaborn", "spark", "hadoop", "opencv",
	)},
	{"Databases", set(
		"sql", "postgresql", "mysql", "mongodb", "redis", "sqlite", "oracle",
		"cassandra", "elasticsearch", "dynamodb", "nosql",
	)},
	{"Cloud & DevOps", set(
		"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "terraform",
		"ansible", "jenkins", "linux", "nginx", "git", "github actions",
		"prometheus", "grafana",
	)},
	{"Mobile", set(
		"android", "ios", "flutter", "react native", "swiftui", "jetpack",
		"xcode",
	)},
	{"Tools & Platforms", set(
		"figma", "photoshop", "illustrator", "adobe xd", "sketch", "jira",
		"excel", "powerbi", "tableau", "postman", "firebase", "wordpress",
	)},
	{"Embedded & Hardware", set(
		"verilog", "vhdl", "fpga", "arduino", "raspberry pi", "embedded",
		"microcontroller", "iot", "pcb design",
	)},
	{"Soft Skills", set(
		"communication", "leadership", "teamwork", "problem solving",
		"time management", "public speaking", "mentoring", "collaboration",
	)},
	{"Concepts", set(
		"data structures", "algorithms", "oop", "design patterns", "agile",
		"scrum", "system design", "testing", "tdd", "security",
	)},
}

// OtherCategory is where skills land when no membership set claims them.
const OtherCategory = "Other"

// Categorize maps each input skill into exactly one category via its
// normalized form. The returned groups follow the fixed display priority,
// skills keep the original casing of their first occurrence, duplicates
// within a category are removed, and empty categories are omitted.
func Categorize(input []string) []CategoryGroup {
	grouped := make(map[string][]string, len(displayCategories)+1)
	seen := make(map[string]map[string]bool, len(displayCategories)+1)

	for _, raw := range input {
		normalized := keywords.Normalize(raw)
		if normalized == "" {
			continue
		}

		name := OtherCategory
		for _, c := range displayCategories {
			if c.members[normalized] {
				name = c.name
				break
			}
		}

		if seen[name] == nil {
			seen[name] = make(map[string]bool)
		}
		if seen[name][normalized] {
			continue
		}
		seen[name][normalized] = true
		grouped[name] = append(grouped[name], strings.TrimSpace(raw))
	}

	out := make([]CategoryGroup, 0, len(grouped))
	for _, c := range displayCategories {
		if skillsIn := grouped[c.name]; len(skillsIn) > 0 {
			out = append(out, CategoryGroup{Name: c.name, Skills: skillsIn})
		}
	}
	if other := grouped[OtherCategory]; len(other) > 0 {
		out = append(out, CategoryGroup{Name: OtherCategory, Skills: other})
	}
	return out
}

// Known lists every skill in the membership sets, normalized, in display
// category order. The resume parser uses it as the extraction lexicon.
func Known() []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range displayCategories {
		var members []string
		for m := range c.members {
			members = append(members, m)
		}
		sort.Strings(members)
		for _, m := range members {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

func set(members ...string) map[string]bool {
	m := make(map[string]bool, len(members))
	for _, s := range members {
		m[s] = true
	}
	return m
}
