package jobs

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/shubham/internhunt/internal/fetch"
	"github.com/shubham/internhunt/internal/types"
)

const (
	internshalaBaseURL = "https://internshala.com/api/internships/search"
	internshalaMaxJobs = 10
	// internshalaDefaultLocation is used when the caller gives no location;
	// the platform is India-centric.
	internshalaDefaultLocation = "India"
)

// fallbackQueries is the keyword sweep used when the caller's own keywords
// return too few internships. Ordered by how commonly freshers search them.
var fallbackQueries = []string{
	"software development", "web development", "frontend", "backend",
	"python", "java", "data analyst", "data science", "machine learning",
	"android", "ios", "ui ux", "product management", "qa testing",
}

// InternshalaClient queries Internshala's public internship search API.
// No API key is required, but the endpoint expects browser-like headers.
type InternshalaClient struct {
	baseURL string
	opts    *fetch.Options
}

// NewInternshalaClient returns a client against the public endpoint.
func NewInternshalaClient() *InternshalaClient {
	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{
		"Accept":          "application/json",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://internshala.com/",
	}
	return &InternshalaClient{baseURL: internshalaBaseURL, opts: opts}
}

// WithBaseURL overrides the API endpoint, for tests.
func (c *InternshalaClient) WithBaseURL(u string) *InternshalaClient {
	c.baseURL = u
	return c
}

func (c *InternshalaClient) Name() string { return "internshala" }

// internshalaItem covers the field variants the endpoint has been observed
// to emit across payload shapes.
type internshalaItem struct {
	Title       string `json:"title"`
	ProfileName string `json:"profile_name"`
	Company     string `json:"company"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Stipend     string `json:"stipend"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Link        string `json:"link"`
	URL         string `json:"url"`
}

// internshalaEnvelope tolerates the endpoint wrapping its list under
// different keys depending on the caller profile.
type internshalaEnvelope struct {
	Internships []internshalaItem `json:"internships"`
	Data        []internshalaItem `json:"data"`
	Results     []internshalaItem `json:"results"`
}

// Fetch searches Internshala, widening the query until enough internships
// accumulate: the full keyword query first, then the first keyword alone,
// then an empty query for the location, and finally a sweep across popular
// fresher domains. Results are deduplicated by link and capped at ten.
func (c *InternshalaClient) Fetch(ctx context.Context, skillKeywords []string, location string) ([]types.JobListing, error) {
	if location == "" {
		location = internshalaDefaultLocation
	}

	var collected []types.JobListing
	seen := make(map[string]bool)
	add := func(items []internshalaItem) {
		for _, it := range items {
			if len(collected) >= internshalaMaxJobs {
				return
			}
			l := it.listing()
			if l.URL == "" || seen[l.URL] {
				continue
			}
			seen[l.URL] = true
			collected = append(collected, l)
		}
	}

	query := strings.Join(skillKeywords, ", ")

	items, err := c.search(ctx, query, location)
	if err != nil {
		return nil, err
	}
	add(items)
	if len(collected) >= internshalaMaxJobs {
		return collected, nil
	}

	if len(skillKeywords) > 0 && skillKeywords[0] != "" {
		if items, err := c.search(ctx, skillKeywords[0], location); err == nil {
			add(items)
		}
		if len(collected) >= internshalaMaxJobs {
			return collected, nil
		}
	}

	if items, err := c.search(ctx, "", location); err == nil {
		add(items)
	}
	if len(collected) >= internshalaMaxJobs {
		return collected, nil
	}

	sweepLocations := []string{location, internshalaDefaultLocation, ""}
	for _, q := range fallbackQueries {
		for _, loc := range sweepLocations {
			if items, err := c.search(ctx, q, loc); err == nil {
				add(items)
			}
			if len(collected) >= internshalaMaxJobs {
				return collected, nil
			}
			if ctx.Err() != nil {
				return collected, nil
			}
		}
	}
	return collected, nil
}

func (c *InternshalaClient) search(ctx context.Context, query, location string) ([]internshalaItem, error) {
	q := url.Values{}
	q.Set("keywords", strings.TrimSpace(query))
	q.Set("location", strings.TrimSpace(location))
	res, err := fetch.Get(ctx, c.baseURL+"?"+q.Encode(), c.opts)
	if err != nil {
		return nil, err
	}

	var envelope internshalaEnvelope
	if err := json.Unmarshal([]byte(res.Body), &envelope); err == nil {
		switch {
		case len(envelope.Internships) > 0:
			return envelope.Internships, nil
		case len(envelope.Data) > 0:
			return envelope.Data, nil
		case len(envelope.Results) > 0:
			return envelope.Results, nil
		}
	}
	// Some responses are a bare array.
	var items []internshalaItem
	if err := json.Unmarshal([]byte(res.Body), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// listing maps an API item into the common schema, preferring the richer
// field variant when both are present.
func (it internshalaItem) listing() types.JobListing {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		title = strings.TrimSpace(it.ProfileName)
	}
	company := strings.TrimSpace(it.CompanyName)
	if company == "" {
		company = strings.TrimSpace(it.Company)
	}
	link := strings.TrimSpace(it.Link)
	if link == "" {
		link = strings.TrimSpace(it.URL)
	}
	if link != "" && strings.HasPrefix(link, "/") {
		link = "https://internshala.com" + link
	}

	tags := []string{}
	if s := strings.TrimSpace(it.Stipend); s != "" {
		tags = append(tags, s)
	}
	if d := strings.TrimSpace(it.Duration); d != "" {
		tags = append(tags, d)
	}
	return types.JobListing{
		Title:       title,
		Company:     company,
		Location:    strings.TrimSpace(it.Location),
		Tags:        tags,
		Description: fetch.CleanText(it.Description),
		URL:         link,
		Source:      "Internshala",
	}
}
