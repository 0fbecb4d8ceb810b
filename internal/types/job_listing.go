//nolint:revive // types is a standard Go package name pattern
package types

// JobListing is the common schema all job sources are mapped into.
// Identity for deduplication is the URL; listings without a URL are dropped
// during the merge.
type JobListing struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
}

// JobSearchResult is the outcome of a merge + rank pass over the job pool.
type JobSearchResult struct {
	Jobs []JobListing `json:"jobs"`
	// Filtered reports whether category filtering was applied. It is false
	// when no category was available or when the anti-over-filtering
	// fallback reverted to the unfiltered pool.
	Filtered bool `json:"filtered"`
	// TotalFetched is the size of the merged pool before filtering.
	TotalFetched int `json:"total_fetched"`
}
