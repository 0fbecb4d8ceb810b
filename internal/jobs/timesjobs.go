package jobs

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shubham/internhunt/internal/fetch"
	"github.com/shubham/internhunt/internal/types"
)

const (
	timesJobsBaseURL = "https://www.timesjobs.com/candidate/job-search.html"
	timesJobsMaxJobs = 10
)

// TimesJobsScraper scrapes the TimesJobs search results page. The listing
// markup is static HTML, but when the static fetch comes back as a thin
// shell the scraper retries through a headless browser.
type TimesJobsScraper struct {
	baseURL    string
	opts       *fetch.Options
	useBrowser bool
}

// NewTimesJobsScraper returns a scraper. Browser fallback is off by default
// since it needs a local Chrome install.
func NewTimesJobsScraper() *TimesJobsScraper {
	return &TimesJobsScraper{baseURL: timesJobsBaseURL}
}

// WithBaseURL overrides the search URL, for tests.
func (s *TimesJobsScraper) WithBaseURL(u string) *TimesJobsScraper {
	s.baseURL = u
	return s
}

// WithBrowserFallback enables headless-browser rendering when the static
// fetch looks like an empty shell.
func (s *TimesJobsScraper) WithBrowserFallback(enabled bool) *TimesJobsScraper {
	s.useBrowser = enabled
	return s
}

func (s *TimesJobsScraper) Name() string { return "timesjobs" }

// Fetch runs a keyword search and parses the result cards.
func (s *TimesJobsScraper) Fetch(ctx context.Context, skillKeywords []string, location string) ([]types.JobListing, error) {
	q := url.Values{}
	q.Set("searchType", "personalizedSearch")
	q.Set("from", "submit")
	q.Set("txtKeywords", strings.Join(skillKeywords, ", "))
	q.Set("txtLocation", location)
	searchURL := s.baseURL + "?" + q.Encode()

	res, err := fetch.Get(ctx, searchURL, s.opts)
	if err != nil {
		return nil, err
	}
	html := res.Body

	if s.useBrowser && fetch.ShouldUseBrowser(html) {
		rendered, err := fetch.WithBrowser(ctx, searchURL, fetch.DefaultTimeout)
		if err == nil && rendered != "" {
			html = rendered
		}
	}

	doc, err := fetch.Document(html)
	if err != nil {
		return nil, err
	}
	return s.parse(doc), nil
}

func (s *TimesJobsScraper) parse(doc *goquery.Document) []types.JobListing {
	var listings []types.JobListing
	doc.Find("li.clearfix.job-bx").EachWithBreak(func(_ int, card *goquery.Selection) bool {
		titleLink := card.Find("h2 a").First()
		title := fetch.CleanText(titleLink.Text())
		href, _ := titleLink.Attr("href")
		if title == "" || href == "" {
			return true
		}

		company := fetch.CleanText(card.Find("h3.joblist-comp-name").First().Text())
		location := fetch.CleanText(card.Find("ul.top-jd-dtl li span").First().Text())
		description := fetch.CleanText(card.Find("ul.list-job-dtl li").First().Text())

		var tags []string
		for _, skill := range strings.Split(card.Find("span.srp-skills").First().Text(), ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				tags = append(tags, skill)
			}
		}

		listings = append(listings, types.JobListing{
			Title:       title,
			Company:     company,
			Location:    location,
			Tags:        tags,
			Description: description,
			URL:         strings.TrimSpace(href),
			Source:      "TimesJobs",
		})
		return len(listings) < timesJobsMaxJobs
	})
	return listings
}
