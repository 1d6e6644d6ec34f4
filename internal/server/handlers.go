package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "advisor",
	})
}

type analyzeRequest struct {
	Portfolio *advisor.PortfolioInput `json:"portfolio"`
}

type analyzeResponse struct {
	*advisor.Analysis
	AIInsight agent.Insight `json:"aiInsight"`
}

// handleAnalyze runs the analysis of the submitted portfolio and narrates it.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Portfolio == nil {
		s.writeError(w, http.StatusBadRequest, "Missing portfolio.")
		return
	}
	if err := req.Portfolio.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Portfolio.Currency == "" {
		req.Portfolio.Currency = s.currency
	}
	a := s.analyzer.Analyze(req.Portfolio)
	ins, err := s.narrator.Narrate(r.Context(), a)
	if err != nil {
		s.log.Error().Err(err).Str("analysis", a.ID).Msg("Failed to narrate analysis")
		s.writeError(w, http.StatusInternalServerError, "Analysis failed. Please try again.")
		return
	}
	s.log.Debug().Str("analysis", a.ID).Int("actions", len(a.Actions)).Msg("Portfolio analyzed")
	s.writeJSON(w, http.StatusOK, analyzeResponse{Analysis: a, AIInsight: ins})
}

// handleChat answers a follow-up question about an analysis.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var conv agent.Conversation
	if err := s.decode(w, r, &conv); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reply, err := s.chat.Reply(r.Context(), conv)
	switch {
	case errors.Is(err, agent.ErrNoMessages):
		s.writeError(w, http.StatusBadRequest, "No messages provided.")
	case errors.Is(err, agent.ErrLastNotUser):
		s.writeError(w, http.StatusBadRequest, "Last message must be from user.")
	case errors.Is(err, agent.ErrNoAnalysis):
		s.writeError(w, http.StatusBadRequest, "Missing analysis.")
	case err != nil:
		s.log.Error().Err(err).Msg("Chat failed")
		s.writeError(w, http.StatusInternalServerError, agent.FailedReply)
	default:
		s.writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
