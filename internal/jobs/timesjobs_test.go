package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timesJobsFixture = `<!doctype html>
<html><body>
<ul>
  <li class="clearfix job-bx wht-shd-bx">
    <header class="clearfix">
      <h2><a href="https://www.timesjobs.com/job-detail/1">Junior Go Developer</a></h2>
      <h3 class="joblist-comp-name"> Acme Systems </h3>
    </header>
    <ul class="top-jd-dtl clearfix">
      <li><span>Bengaluru</span></li>
      <li><span>0 - 2 yrs</span></li>
    </ul>
    <ul class="list-job-dtl clearfix">
      <li>Work on backend services in Go and PostgreSQL.</li>
    </ul>
    <span class="srp-skills"> go , docker ,  postgresql </span>
  </li>
  <li class="clearfix job-bx">
    <header class="clearfix">
      <h2><a href="https://www.timesjobs.com/job-detail/2">Frontend Intern</a></h2>
      <h3 class="joblist-comp-name">Beta Web</h3>
    </header>
    <ul class="top-jd-dtl clearfix"><li><span>Remote</span></li></ul>
    <ul class="list-job-dtl clearfix"><li>React work.</li></ul>
    <span class="srp-skills">react, css</span>
  </li>
  <li class="clearfix job-bx">
    <header class="clearfix">
      <h2><a href="">Broken Card</a></h2>
    </header>
  </li>
</ul>
</body></html>`

func TestTimesJobsFetchParsesCards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "go, docker", r.URL.Query().Get("txtKeywords"))
		assert.Equal(t, "Bengaluru", r.URL.Query().Get("txtLocation"))
		_, _ = w.Write([]byte(timesJobsFixture))
	}))
	defer srv.Close()

	scraper := NewTimesJobsScraper().WithBaseURL(srv.URL)
	listings, err := scraper.Fetch(context.Background(), []string{"go", "docker"}, "Bengaluru")
	require.NoError(t, err)
	require.Len(t, listings, 2, "the card without a link is skipped")

	l := listings[0]
	assert.Equal(t, "Junior Go Developer", l.Title)
	assert.Equal(t, "Acme Systems", l.Company)
	assert.Equal(t, "Bengaluru", l.Location)
	assert.Equal(t, []string{"go", "docker", "postgresql"}, l.Tags)
	assert.Equal(t, "https://www.timesjobs.com/job-detail/1", l.URL)
	assert.Equal(t, "TimesJobs", l.Source)
	assert.Contains(t, l.Description, "backend services")

	assert.Equal(t, "Frontend Intern", listings[1].Title)
}

func TestTimesJobsFetchEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>No results found.</p></body></html>`))
	}))
	defer srv.Close()

	scraper := NewTimesJobsScraper().WithBaseURL(srv.URL)
	listings, err := scraper.Fetch(context.Background(), []string{"go"}, "")
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestTimesJobsFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	scraper := NewTimesJobsScraper().WithBaseURL(srv.URL)
	_, err := scraper.Fetch(context.Background(), []string{"go"}, "")
	assert.Error(t, err)
}
