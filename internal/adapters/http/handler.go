package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"futureyou/internal/app/simulation"
	"futureyou/internal/domain"
)

type Server struct {
	svc *simulation.Service
}

// NewServer builds the REST surface over the simulation service.
func NewServer(svc *simulation.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /simulations → run the whole pipeline (POST)
	mux.HandleFunc("/simulations", s.handleSimulations)

	// /sessions/{id} → GET: persisted snapshot
	mux.HandleFunc("/sessions/", s.handleSessionWithID)

	// /users/{id}/sessions → GET: user history
	mux.HandleFunc("/users/", s.handleUserWithID)

	// /decisions → POST: track a chosen decision, GET: list tracked
	mux.HandleFunc("/decisions", s.handleDecisions)

	return chainMiddlewares(mux, withRequestID, withCORS, withLogging)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type simulateRequest struct {
	UserProfile *domain.UserProfile `json:"user_profile"`
	Decision    string              `json:"decision"`
	Timelines   []domain.Timeline   `json:"timelines,omitempty"`
}

type simulateResponse struct {
	SessionID string                  `json:"session_id"`
	DNA       *domain.DecisionDNA     `json:"decision_dna"`
	Scenarios []domain.FutureScenario `json:"scenarios"`
	Analysis  *domain.AnalysisResult  `json:"analysis"`
	Advice    string                  `json:"advice"`
}

type sessionResponse struct {
	ID        string                    `json:"session_id"`
	Profile   *domain.UserProfile       `json:"user_profile"`
	DNA       *domain.DecisionDNA       `json:"decision_dna,omitempty"`
	Scenarios []domain.FutureScenario   `json:"scenarios"`
	History   []domain.ConversationTurn `json:"conversation_history"`
	CreatedAt time.Time                 `json:"created_at"`
}

type trackDecisionRequest struct {
	Decision   string `json:"decision"`
	ChosenPath string `json:"chosen_path"`
	Reasoning  string `json:"reasoning,omitempty"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSimulations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.UserProfile == nil {
		badRequest(w, "user_profile is required")
		return
	}
	timelines := req.Timelines
	if len(timelines) == 0 {
		timelines = domain.AllTimelines()
	}

	session := s.svc.CreateSession(req.UserProfile)
	result, err := s.svc.SimulateDecision(r.Context(), session, req.Decision, timelines)
	if err != nil {
		if domain.IsValidationError(err) {
			badRequest(w, err.Error())
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, simulateResponse{
		SessionID: string(result.SessionID),
		DNA:       result.DNA,
		Scenarios: result.Scenarios,
		Analysis:  result.Analysis,
		Advice:    result.Advice,
	})
}

// /sessions/{id}
func (s *Server) handleSessionWithID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/sessions/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	session, ok := s.svc.GetSession(domain.SessionID(id))
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

// /users/{id}/sessions
func (s *Server) handleUserWithID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/users/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] != "sessions" {
		http.NotFound(w, r)
		return
	}

	sessions := s.svc.UserHistory(domain.UserID(parts[0]))
	out := make([]sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, toSessionResponse(session))
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": out})
}

func (s *Server) handleDecisions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req trackDecisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		if req.Decision == "" || req.ChosenPath == "" {
			badRequest(w, "decision and chosen_path are required")
			return
		}
		if err := s.svc.TrackDecision(req.Decision, req.ChosenPath, req.Reasoning); err != nil {
			internalError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"status": "tracked"})

	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"decisions": s.svc.DecisionHistory()})

	default:
		methodNotAllowed(w)
	}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:        string(s.ID),
		Profile:   s.Profile,
		DNA:       s.DNA,
		Scenarios: s.Scenarios,
		History:   s.History,
		CreatedAt: s.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": err.Error(),
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
