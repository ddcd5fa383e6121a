// Package simulation drives the agent pipeline end to end for one session:
// DNA extraction (once, cached on the session), scenario simulation per
// timeline, comparative analysis, advice, and session persistence.
package simulation

import (
	"context"
	"fmt"
	"time"

	"futureyou/internal/app/agents"
	"futureyou/internal/app/validate"
	"futureyou/internal/domain"
	"futureyou/internal/observability"
)

// DefaultModel is used when the caller does not pick one.
const DefaultModel = "gemini-3-pro-preview"

// Options configures the agents the service builds.
type Options struct {
	Model      string
	NewBackoff agents.BackoffFactory // nil means production backoff
}

// Service orchestrates the four agents over a session. Any stage failure is
// terminal for the run; there is no resume from midpoint.
type Service struct {
	profiler  *agents.Profiler
	simulator *agents.Simulator
	analyzer  *agents.Analyzer
	advisor   *agents.Advisor
	bank      domain.SessionBank
	tracker   domain.DecisionTracker
	now       func() time.Time
}

// NewService builds the pipeline. Construction fails fast when the model
// client is unusable.
func NewService(llm domain.TextGenerator, opts Options, bank domain.SessionBank, tracker domain.DecisionTracker) (*Service, error) {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	profiler, err := agents.NewProfiler(llm, model, opts.NewBackoff)
	if err != nil {
		return nil, err
	}
	simulator, err := agents.NewSimulator(llm, model, opts.NewBackoff)
	if err != nil {
		return nil, err
	}
	analyzer, err := agents.NewAnalyzer(llm, model, opts.NewBackoff)
	if err != nil {
		return nil, err
	}
	advisor, err := agents.NewAdvisor(llm, model, opts.NewBackoff)
	if err != nil {
		return nil, err
	}

	return &Service{
		profiler:  profiler,
		simulator: simulator,
		analyzer:  analyzer,
		advisor:   advisor,
		bank:      bank,
		tracker:   tracker,
		now:       time.Now,
	}, nil
}

// CreateSession starts a new session around a profile. One session per
// decision-simulation request; its id is time-derived and unique.
func (s *Service) CreateSession(profile *domain.UserProfile) *domain.Session {
	now := s.now()
	return &domain.Session{
		ID:        domain.SessionID(fmt.Sprintf("session_%d", now.UnixNano())),
		Profile:   profile,
		Scenarios: []domain.FutureScenario{},
		History:   []domain.ConversationTurn{},
		CreatedAt: now,
	}
}

// SimulateDecision runs the whole pipeline for one decision across the
// requested timelines, in the given order. DNA extraction is skipped when
// the session already carries one; all later stages always run. A failure
// on any timeline aborts the run; no partial scenario set reaches the
// Analyzer.
func (s *Service) SimulateDecision(ctx context.Context, session *domain.Session, decision string, timelines []domain.Timeline) (*domain.SimulationResult, error) {
	log := observability.LoggerFromContext(ctx).With(
		"session_id", session.ID,
		"user_id", session.Profile.UserID,
	)

	decision, err := validate.Decision(decision)
	if err != nil {
		return nil, err
	}
	if err := validate.Timelines(timelines); err != nil {
		return nil, err
	}

	log.Info("simulation started", "timelines", len(timelines))
	session.History = append(session.History, domain.ConversationTurn{Role: domain.RoleUser, Text: decision})

	if session.DNA == nil {
		start := s.now()
		dna, err := s.profiler.AnalyzeProfile(ctx, session.Profile)
		if err != nil {
			return nil, err
		}
		session.DNA = dna
		log.Info("profiler stage done", "elapsed_ms", time.Since(start).Milliseconds())
	} else {
		log.Info("profiler stage skipped, DNA cached on session")
	}

	scenarios := make([]domain.FutureScenario, 0, len(timelines)*3)
	for _, timeline := range timelines {
		batch, err := s.simulator.SimulateFutures(ctx, decision, session.DNA, timeline)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, batch...)
		log.Info("simulator stage done", "timeline", timeline, "scenarios", len(batch))
	}
	session.Scenarios = scenarios

	analysis, err := s.analyzer.AnalyzeScenarios(ctx, session.Scenarios, session.DNA)
	if err != nil {
		return nil, err
	}
	log.Info("analyzer stage done", "best_scenario", analysis.BestScenario)

	advice, err := s.advisor.GenerateAdvice(ctx, analysis, session.DNA)
	if err != nil {
		return nil, err
	}
	session.History = append(session.History, domain.ConversationTurn{Role: domain.RoleAgent, Text: advice})

	if err := s.bank.Save(session); err != nil {
		return nil, &domain.PersistenceError{Op: "save session", Err: err}
	}

	log.Info("simulation completed", "scenarios", len(session.Scenarios))
	return &domain.SimulationResult{
		SessionID: session.ID,
		DNA:       session.DNA,
		Scenarios: session.Scenarios,
		Analysis:  analysis,
		Advice:    advice,
	}, nil
}

// GetSession returns the persisted snapshot, if any.
func (s *Service) GetSession(id domain.SessionID) (*domain.Session, bool) {
	return s.bank.Get(id)
}

// UserHistory lists every persisted snapshot owned by the user.
func (s *Service) UserHistory(userID domain.UserID) []*domain.Session {
	return s.bank.History(userID)
}

// TrackDecision records the path the user ultimately chose. Independent of
// the simulation pipeline.
func (s *Service) TrackDecision(decision, chosenPath, reasoning string) error {
	return s.tracker.Append(&domain.DecisionRecord{
		Timestamp:  s.now(),
		Decision:   decision,
		ChosenPath: chosenPath,
		Reasoning:  reasoning,
	})
}

// DecisionHistory returns the tracked decisions, oldest first.
func (s *Service) DecisionHistory() []*domain.DecisionRecord {
	return s.tracker.History()
}
