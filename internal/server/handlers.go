package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/shubham/internhunt/internal/analysis"
	"github.com/shubham/internhunt/internal/chat"
	"github.com/shubham/internhunt/internal/db"
	"github.com/shubham/internhunt/internal/parser"
	"github.com/shubham/internhunt/internal/types"
)

// maxUploadSize bounds resume uploads; anything bigger than 10 MB is not a
// resume.
const maxUploadSize = 10 << 20

// handleAnalyze accepts a multipart PDF upload and returns the full
// analysis: score breakdown, grouped skills, predicted field, role
// alignment and course recommendations.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Expected multipart form with a 'resume' file field")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'resume' file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	opts := analysis.Options{TargetRole: r.FormValue("target_role")}
	if v := r.FormValue("courses"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.CourseCount = n
		}
	}

	result, err := s.analyzer.Analyze(r.Context(), data, header.Filename, opts)
	if err != nil {
		switch {
		case errors.Is(err, parser.ErrNotPDF):
			s.errorResponse(w, http.StatusBadRequest, "Uploaded file is not a PDF")
		case errors.Is(err, parser.ErrNoText):
			s.errorResponse(w, http.StatusBadRequest, "Could not extract any text from the PDF")
		default:
			log.Printf("Analysis failed for %s: %v", header.Filename, err)
			s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		}
		return
	}

	// Carry the chat bootstrap alongside the analysis so the client can open
	// a conversation without another round trip.
	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		Result:             result,
		ResumeContext:      chat.BuildResumeContext(result.Resume),
		SuggestedQuestions: chat.SuggestedQuestions(result.Resume, nil),
	})
}

// analyzeResponse is the payload for POST /analyze: the analysis result plus
// the resume context and starter questions for the chat assistant.
type analyzeResponse struct {
	*analysis.Result
	ResumeContext      string   `json:"resume_context,omitempty"`
	SuggestedQuestions []string `json:"suggested_questions,omitempty"`
}

// jobsResponse is the payload for GET /jobs.
type jobsResponse struct {
	Jobs         []types.JobListing `json:"jobs"`
	TotalFetched int                `json:"total_fetched"`
	Filtered     bool               `json:"filtered"`
	Note         string             `json:"note,omitempty"`
	Cached       bool               `json:"cached"`
}

// handleJobs merges listings from the configured sources for the given
// skill keywords, then filters and ranks them against the predicted
// career category when one is supplied.
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	if s.merger == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No job sources are configured")
		return
	}

	skillParam := strings.TrimSpace(r.URL.Query().Get("skills"))
	if skillParam == "" {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'skills' query parameter")
		return
	}
	var skillKeywords []string
	for _, part := range strings.Split(skillParam, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skillKeywords = append(skillKeywords, part)
		}
	}
	location := strings.TrimSpace(r.URL.Query().Get("location"))
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	merged, cached := s.jobCache.Get(skillKeywords, location)
	if !cached {
		merged = s.merger.Merge(r.Context(), skillKeywords, location)
		if len(merged) > 0 {
			s.jobCache.Put(skillKeywords, location, merged)
		}
	}

	ranked, filtered := s.ranker.Rank(merged, category)

	resp := jobsResponse{
		Jobs:         ranked,
		TotalFetched: len(merged),
		Filtered:     filtered,
		Cached:       cached,
	}
	if resp.Jobs == nil {
		resp.Jobs = []types.JobListing{}
	}
	if category != "" && !filtered {
		resp.Note = "Showing all fetched jobs; too few matched the predicted field to filter."
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// chatRequest is the payload for POST /chat.
type chatRequest struct {
	Messages      []chat.Message `json:"messages"`
	ResumeContext string         `json:"resume_context"`
	Style         string         `json:"style"`
}

// handleChat relays a conversation to the career assistant.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	reply, err := s.assistant.Reply(r.Context(), req.Messages, req.ResumeContext, chat.Style(req.Style))
	if err != nil {
		if errors.Is(err, chat.ErrUnavailable) {
			s.errorResponse(w, http.StatusServiceUnavailable, "Chat assistant is not configured")
			return
		}
		log.Printf("Chat reply failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "Chat assistant request failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"reply": reply})
}

// handleListAnalyses returns recent stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid 'limit' query parameter")
			return
		}
		limit = n
	}

	records, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		log.Printf("Listing analyses failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}
	if records == nil {
		records = []db.Analysis{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": records})
}
