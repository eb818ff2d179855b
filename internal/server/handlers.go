package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-ranker/internal/db"
	"github.com/jonathan/candidate-ranker/internal/engine"
	"github.com/jonathan/candidate-ranker/internal/snapshot"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// RankResponse represents the response for /postings/{id}/rank
type RankResponse struct {
	RunID  string              `json:"run_id"`
	Status string              `json:"status"`
	Result *types.RankedResult `json:"result"`
}

// requestEngine builds an engine for one request, applying per-request
// overrides on top of the server defaults.
func (s *Server) requestEngine(limit, maxHops int) *engine.Engine {
	opts := s.opts
	if limit > 0 {
		opts.ResultLimit = limit
	}
	if maxHops > 0 {
		opts.MaxHops = maxHops
	}
	return engine.New(opts)
}

// handleRank ranks an inline snapshot without touching the database
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	snap := req.Snapshot
	report := snapshot.Normalize(&snap)

	result, err := s.requestEngine(req.Limit, req.MaxHops).Rank(&snap)
	if err != nil {
		var pre *engine.PreconditionError
		if errors.As(err, &pre) {
			s.errorResponse(w, http.StatusUnprocessableEntity, pre.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}
	result.Report.SkippedEntities += report.SkippedEntities
	result.Report.ClampedYears += report.ClampedYears

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRankPosting ranks a stored posting and persists the run
func (s *Server) handleRankPosting(w http.ResponseWriter, r *http.Request) {
	postingID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req types.RankPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	maxHops := s.opts.MaxHops
	if req.MaxHops > 0 {
		maxHops = req.MaxHops
	}

	snap, err := s.db.LoadSnapshot(r.Context(), postingID, maxHops)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if snap == nil {
		notFound := &ErrPostingNotFound{ID: postingID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	runID, err := s.db.CreateRun(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	report := snapshot.Normalize(snap)
	result, err := s.requestEngine(req.Limit, req.MaxHops).Rank(snap)
	if err != nil {
		if dbErr := s.db.CompleteRun(r.Context(), runID, db.RunStatusFailed); dbErr != nil {
			log.Printf("Failed to mark run %s failed: %v", runID, dbErr)
		}
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}
	result.Report.SkippedEntities += report.SkippedEntities
	result.Report.ClampedYears += report.ClampedYears

	if err := s.db.SaveResults(r.Context(), runID, result); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if err := s.db.CompleteRun(r.Context(), runID, db.RunStatusCompleted); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{
		RunID:  runID.String(),
		Status: "completed",
		Result: result,
	})
}

// handleListPostings returns all stored postings
func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := s.db.ListJobPostings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"postings": postings,
		"count":    len(postings),
	})
}

// handleGetPosting returns one posting with its requirements
func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	postingID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	posting, err := s.db.GetJobPosting(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if posting == nil {
		notFound := &ErrPostingNotFound{ID: postingID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleGetRun returns the status of a ranking run
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{ID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetRunResults returns the stored ranked result of a completed run
func (s *Server) handleGetRunResults(w http.ResponseWriter, r *http.Request) {
	runID, ok := s.pathID(w, r)
	if !ok {
		return
	}

	result, err := s.db.GetRunResults(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if result == nil {
		notFound := &ErrResultsNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// pathID parses the {id} path segment as a UUID, writing an error response
// on failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.PathValue("id")
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
