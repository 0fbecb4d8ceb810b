// Package keywords provides skill/keyword normalization, fuzzy keyword
// matching, and the static keyword tables used for categorization, role
// alignment, and job relevance ranking.
package keywords

import "strings"

// aliases maps known variant spellings to canonical forms. Lookup happens
// after lowercasing, so only lowercase keys appear here.
var aliases = map[string]string{
	// JavaScript ecosystem
	"reactjs":    "react",
	"react.js":   "react",
	"react js":   "react",
	"nodejs":     "node.js",
	"node js":    "node.js",
	"vuejs":      "vue",
	"vue.js":     "vue",
	"vue js":     "vue",
	"angularjs":  "angular",
	"angular.js": "angular",
	"nextjs":     "next.js",
	"next js":    "next.js",
	"expressjs":  "express",
	"express.js": "express",
	"js":         "javascript",
	"ts":         "typescript",

	// Languages and runtimes
	"golang":  "go",
	"go lang": "go",
	"py":      "python",

	// Data and ML
	"ml":           "machine learning",
	"dl":           "deep learning",
	"tf":           "tensorflow",
	"sklearn":      "scikit-learn",
	"scikit learn": "scikit-learn",

	// Databases
	"postgres": "postgresql",
	"postgre":  "postgresql",
	"mongo":    "mongodb",

	// Cloud and DevOps
	"ci-cd":                 "ci/cd",
	"ci cd":                 "ci/cd",
	"cicd":                  "ci/cd",
	"k8s":                   "kubernetes",
	"amazon web services":   "aws",
	"google cloud":          "gcp",
	"google cloud platform": "gcp",

	// Design and tooling
	"ui ux":           "ui/ux",
	"ui-ux":           "ui/ux",
	"uiux":            "ui/ux",
	"html5":           "html",
	"css3":            "css",
	"restful":         "rest",
	"rest api":        "rest",
	"restful api":     "rest",
	"power bi":        "powerbi",
	"ms excel":        "excel",
	"microsoft excel": "excel",
}

// Normalize canonicalizes a raw skill/keyword string: trims whitespace,
// lowercases, resolves known alias spellings, and unifies punctuation
// variants of compound terms. An empty or whitespace-only input yields "".
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")

	if canonical, ok := aliases[s]; ok {
		return canonical
	}

	// Compound unification for terms the alias table doesn't list
	// explicitly: "foo js" and "foo.js" both mean the same runtime-suffixed
	// name, canonicalized to "foo.js".
	if base, ok := strings.CutSuffix(s, " js"); ok && base != "" {
		return Normalize(base + ".js")
	}
	if base, ok := strings.CutSuffix(s, ".js"); ok {
		if canonical, found := aliases[base]; found {
			return canonical
		}
	}

	return s
}

// NormalizeAll normalizes every entry, dropping empties and duplicates while
// preserving first-seen order.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, r := range raw {
		n := Normalize(r)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
