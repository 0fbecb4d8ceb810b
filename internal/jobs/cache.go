package jobs

import (
	"sort"
	"strings"
	"sync"

	"github.com/shubham/internhunt/internal/types"
)

// Cache memoizes merged search results per (keywords, location) so repeated
// views of the same analysis do not re-hit the providers. Keys are
// order-insensitive over keywords. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]types.JobListing
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]types.JobListing)}
}

func cacheKey(skillKeywords []string, location string) string {
	sorted := make([]string, len(skillKeywords))
	for i, k := range skillKeywords {
		sorted[i] = strings.ToLower(strings.TrimSpace(k))
	}
	sort.Strings(sorted)
	return strings.Join(sorted, ",") + "|" + strings.ToLower(strings.TrimSpace(location))
}

// Get returns a copy of the cached listings for the search, if present.
func (c *Cache) Get(skillKeywords []string, location string) ([]types.JobListing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	listings, ok := c.entries[cacheKey(skillKeywords, location)]
	if !ok {
		return nil, false
	}
	out := make([]types.JobListing, len(listings))
	copy(out, listings)
	return out, true
}

// Put stores the listings for the search, replacing any previous entry.
func (c *Cache) Put(skillKeywords []string, location string, listings []types.JobListing) {
	stored := make([]types.JobListing, len(listings))
	copy(stored, listings)
	c.mu.Lock()
	c.entries[cacheKey(skillKeywords, location)] = stored
	c.mu.Unlock()
}

// Clear drops all cached searches.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string][]types.JobListing)
	c.mu.Unlock()
}
