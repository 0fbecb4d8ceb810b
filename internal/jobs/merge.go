// Package jobs assembles the candidate job pool: it fetches from multiple
// heterogeneous sources concurrently, maps every provider record into the
// common listing schema, and deduplicates by canonical URL.
package jobs

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/shubham/internhunt/internal/types"
)

// Fetcher is one external job source. A fetch may fail or return nothing;
// either way it contributes zero listings without failing the merge.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, skillKeywords []string, location string) ([]types.JobListing, error)
}

// defaultWorkers bounds the fetch fan-out; sized to the number of sources
// the product ships with.
const defaultWorkers = 2

// Merger fans out to its sources and merges their results deterministically.
type Merger struct {
	sources []Fetcher
	workers int
}

// NewMerger returns a Merger over the given sources in declaration order.
func NewMerger(sources ...Fetcher) *Merger {
	return &Merger{sources: sources, workers: defaultWorkers}
}

// WithWorkers overrides the fetch worker-pool size.
func (m *Merger) WithWorkers(n int) *Merger {
	if n > 0 {
		m.workers = n
	}
	return m
}

// Merge fetches from every source concurrently and blocks until all
// complete. Results are concatenated in source-declaration order regardless
// of completion order, then deduplicated: the first occurrence per URL wins
// and listings without a URL are dropped. A source error is logged and
// isolated, never propagated.
func (m *Merger) Merge(ctx context.Context, skillKeywords []string, location string) []types.JobListing {
	results := make([][]types.JobListing, len(m.sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i, src := range m.sources {
		g.Go(func() error {
			listings, err := src.Fetch(gCtx, skillKeywords, location)
			if err != nil {
				log.Printf("job source %s failed: %v", src.Name(), err)
				return nil
			}
			results[i] = listings
			return nil
		})
	}
	// Goroutines swallow their own errors, so Wait only joins.
	_ = g.Wait()

	var merged []types.JobListing
	for _, listings := range results {
		merged = append(merged, listings...)
	}
	return Dedupe(merged)
}

// Dedupe keeps the first listing per URL and drops entries with an empty
// URL. Input order is preserved.
func Dedupe(listings []types.JobListing) []types.JobListing {
	seen := make(map[string]bool, len(listings))
	out := make([]types.JobListing, 0, len(listings))
	for _, l := range listings {
		if l.URL == "" || seen[l.URL] {
			continue
		}
		seen[l.URL] = true
		out = append(out, normalizeListing(l))
	}
	return out
}

// normalizeListing applies the common-schema defaults: blank locations mean
// remote work and tags are never nil.
func normalizeListing(l types.JobListing) types.JobListing {
	if l.Location == "" {
		l.Location = "Remote"
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}
	return l
}
