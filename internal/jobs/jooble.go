package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shubham/internhunt/internal/fetch"
	"github.com/shubham/internhunt/internal/types"
)

const (
	joobleBaseURL = "https://jooble.org/api/"
	// joobleMaxJobs caps how many listings a single search contributes.
	joobleMaxJobs = 10
	// jooblePages is how many result pages to walk before giving up.
	jooblePages = 2
)

// JoobleClient queries the Jooble job-search API. The API key is issued
// per account and forms part of the endpoint URL.
type JoobleClient struct {
	apiKey  string
	baseURL string
	opts    *fetch.Options
}

// NewJoobleClient returns a client for the given API key. An empty key
// produces a client whose Fetch reports a configuration error.
func NewJoobleClient(apiKey string) *JoobleClient {
	return &JoobleClient{apiKey: apiKey, baseURL: joobleBaseURL}
}

// WithBaseURL overrides the API endpoint, for tests.
func (c *JoobleClient) WithBaseURL(u string) *JoobleClient {
	c.baseURL = strings.TrimSuffix(u, "/") + "/"
	return c
}

func (c *JoobleClient) Name() string { return "jooble" }

type joobleRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	Page     string `json:"page"`
}

type joobleResponse struct {
	TotalCount int `json:"totalCount"`
	Jobs       []struct {
		Title    string `json:"title"`
		Location string `json:"location"`
		Snippet  string `json:"snippet"`
		Source   string `json:"source"`
		Type     string `json:"type"`
		Link     string `json:"link"`
		Company  string `json:"company"`
	} `json:"jobs"`
}

// Fetch searches Jooble for the given skill keywords, walking up to two
// result pages and returning at most ten listings.
func (c *JoobleClient) Fetch(ctx context.Context, skillKeywords []string, location string) ([]types.JobListing, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("jooble: api key not configured")
	}

	query := strings.Join(skillKeywords, " ")
	endpoint := c.baseURL + c.apiKey

	var listings []types.JobListing
	for page := 1; page <= jooblePages && len(listings) < joobleMaxJobs; page++ {
		payload, err := json.Marshal(joobleRequest{Keywords: query, Location: location, Page: strconv.Itoa(page)})
		if err != nil {
			return nil, fmt.Errorf("jooble: encode request: %w", err)
		}
		res, err := fetch.PostJSON(ctx, endpoint, string(payload), c.opts)
		if err != nil {
			// A failed later page should not discard earlier results.
			if page > 1 {
				break
			}
			return nil, err
		}

		var parsed joobleResponse
		if err := json.Unmarshal([]byte(res.Body), &parsed); err != nil {
			return nil, fmt.Errorf("jooble: decode response: %w", err)
		}
		if len(parsed.Jobs) == 0 {
			break
		}

		for _, j := range parsed.Jobs {
			if len(listings) >= joobleMaxJobs {
				break
			}
			tags := []string{}
			if t := strings.TrimSpace(j.Type); t != "" {
				tags = append(tags, t)
			}
			listings = append(listings, types.JobListing{
				Title:       strings.TrimSpace(j.Title),
				Company:     strings.TrimSpace(j.Company),
				Location:    strings.TrimSpace(j.Location),
				Tags:        tags,
				Description: fetch.CleanText(fetch.StripTags(j.Snippet)),
				URL:         strings.TrimSpace(j.Link),
				Source:      "Jooble",
			})
		}
	}
	return listings, nil
}
