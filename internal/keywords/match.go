package keywords

import (
	"regexp"
	"strings"
	"sync"
)

// Matcher is a reusable fuzzy keyword predicate. For each keyword it builds a
// word-boundary pattern that tolerates a trailing "s" and hyphen/space
// variation ("full stack" matches "full-stack" and "full stacks"). Compiled
// patterns are cached, so a Matcher is cheap to share; it is safe for
// concurrent use.
type Matcher struct {
	mu    sync.RWMutex
	cache map[string]*regexp.Regexp
}

// NewMatcher returns an empty Matcher.
func NewMatcher() *Matcher {
	return &Matcher{cache: make(map[string]*regexp.Regexp)}
}

// Matches reports whether keyword occurs in text. Matching is
// case-insensitive and word-bounded; "+", "#" and "." count as word
// characters so terms like "c++", "c#" and "node.js" match exactly.
func (m *Matcher) Matches(keyword, text string) bool {
	if keyword == "" || text == "" {
		return false
	}
	re := m.pattern(keyword)
	if re == nil {
		return false
	}
	return re.MatchString(text)
}

// CountMatches returns how many of the given keywords occur in text, along
// with the matched keywords in input order. Each keyword counts at most once.
func (m *Matcher) CountMatches(kws []string, text string) (int, []string) {
	if text == "" || len(kws) == 0 {
		return 0, nil
	}
	var matched []string
	for _, kw := range kws {
		if m.Matches(kw, text) {
			matched = append(matched, kw)
		}
	}
	return len(matched), matched
}

func (m *Matcher) pattern(keyword string) *regexp.Regexp {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if key == "" {
		return nil
	}

	m.mu.RLock()
	re, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return re
	}

	re = compileKeywordPattern(key)

	m.mu.Lock()
	m.cache[key] = re
	m.mu.Unlock()
	return re
}

// compileKeywordPattern builds the fuzzy word-boundary pattern for a keyword.
// Tokens split on spaces/hyphens are rejoined with a separator class so
// hyphen and space spellings are interchangeable, and an optional plural "s"
// is allowed on the final token.
func compileKeywordPattern(key string) *regexp.Regexp {
	tokens := strings.FieldsFunc(key, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(tokens) == 0 {
		return nil
	}
	for i, tok := range tokens {
		tokens[i] = regexp.QuoteMeta(tok)
	}
	body := strings.Join(tokens, `[\s\-]+`)

	// \b misbehaves around "+", "#" and ".", so boundaries are expressed as
	// explicit non-word-character classes instead.
	expr := `(?i)(^|[^a-z0-9+#])` + body + `s?($|[^a-z0-9+#])`
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}
