package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham/internhunt/internal/analysis"
	"github.com/shubham/internhunt/internal/chat"
	"github.com/shubham/internhunt/internal/config"
	"github.com/shubham/internhunt/internal/jobs"
	"github.com/shubham/internhunt/internal/types"
)

type stubFetcher struct {
	name     string
	listings []types.JobListing
}

func (f *stubFetcher) Name() string { return f.name }

func (f *stubFetcher) Fetch(_ context.Context, _ []string, _ string) ([]types.JobListing, error) {
	return f.listings, nil
}

func newTestServer(t *testing.T, deps Deps) *Server {
	t.Helper()
	if deps.Analyzer == nil {
		analyzer, err := analysis.New(nil)
		require.NoError(t, err)
		deps.Analyzer = analyzer
	}
	s, err := New(config.Config{Port: 8080}, deps)
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, Deps{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, Deps{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/analyze", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAnalyzeRejectsMissingFile(t *testing.T) {
	s := newTestServer(t, Deps{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("target_role", "Data Scientist"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resume")
}

func TestAnalyzeRejectsNonPDF(t *testing.T) {
	s := newTestServer(t, Deps{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("plain text, not a pdf"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not a PDF")
}

func TestJobsRequiresSkills(t *testing.T) {
	s := newTestServer(t, Deps{Merger: jobs.NewMerger()})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/jobs", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "skills")
}

func TestJobsUnavailableWithoutSources(t *testing.T) {
	s := newTestServer(t, Deps{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/jobs?skills=python", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestJobsMergesAndCaches(t *testing.T) {
	source := &stubFetcher{name: "stub", listings: []types.JobListing{
		{Title: "Python Developer", Company: "Acme", URL: "https://example.com/1"},
		{Title: "Data Analyst", Company: "Beta", URL: "https://example.com/2"},
	}}
	s := newTestServer(t, Deps{Merger: jobs.NewMerger(source)})

	doGet := func() jobsResponse {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/jobs?skills=python,sql&location=Pune", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var resp jobsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	first := doGet()
	assert.Len(t, first.Jobs, 2)
	assert.Equal(t, 2, first.TotalFetched)
	assert.False(t, first.Cached)

	second := doGet()
	assert.Len(t, second.Jobs, 2)
	assert.True(t, second.Cached)
}

func TestJobsFallbackNoteWhenFilterKeepsTooFew(t *testing.T) {
	source := &stubFetcher{name: "stub", listings: []types.JobListing{
		{Title: "Chef de Partie", Company: "Hotel", URL: "https://example.com/1"},
		{Title: "Sous Chef", Company: "Hotel", URL: "https://example.com/2"},
	}}
	s := newTestServer(t, Deps{Merger: jobs.NewMerger(source)})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/jobs?skills=cooking&category=Data+Science", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp jobsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Filtered)
	assert.Len(t, resp.Jobs, 2)
	assert.NotEmpty(t, resp.Note)
}

type stubGenerator struct {
	reply string
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	return g.reply, nil
}

func (g *stubGenerator) Close() error { return nil }

func TestChatRepliesWithAssistant(t *testing.T) {
	s := newTestServer(t, Deps{Assistant: chat.NewAssistant(&stubGenerator{reply: "Focus on SQL projects."})})

	body := strings.NewReader(`{"messages":[{"role":"user","content":"What should I improve?"}],"style":"short"}`)
	req := httptest.NewRequest("POST", "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Focus on SQL projects.", resp["reply"])
}

func TestChatUnavailableWithoutAssistant(t *testing.T) {
	s := newTestServer(t, Deps{})

	body := strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`)
	req := httptest.NewRequest("POST", "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatRejectsInvalidJSON(t *testing.T) {
	s := newTestServer(t, Deps{})

	req := httptest.NewRequest("POST", "/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAnalysesEmptyWithoutDatabase(t *testing.T) {
	s := newTestServer(t, Deps{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/analyses", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body["analyses"])
}

func TestListAnalysesRejectsBadLimit(t *testing.T) {
	s := newTestServer(t, Deps{})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/analyses?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimitHeadersPresent(t *testing.T) {
	s := newTestServer(t, Deps{Merger: jobs.NewMerger()})

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/jobs?skills=python", nil))

	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}
