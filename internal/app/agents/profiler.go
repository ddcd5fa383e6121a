package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"futureyou/internal/app/validate"
	"futureyou/internal/domain"
	"futureyou/internal/observability"
)

// dnaFields is the Profiler's field-requirement table: all five keys must
// be present, and risk tolerance must sit in [0,1].
var dnaFields = []fieldSpec{
	{key: "risk_tolerance", kind: kindUnitInterval},
	{key: "time_horizon_preference", kind: kindString},
	{key: "value_priorities", kind: kindStringList},
	{key: "decision_patterns", kind: kindObject},
	{key: "emotional_drivers", kind: kindStringList},
}

// Profiler turns a user profile into that user's Decision DNA.
type Profiler struct {
	llm        domain.TextGenerator
	model      string
	newBackoff BackoffFactory
}

func NewProfiler(llm domain.TextGenerator, model string, newBackoff BackoffFactory) (*Profiler, error) {
	if llm == nil {
		return nil, errors.New("profiler: model client is required")
	}
	if model == "" {
		return nil, errors.New("profiler: model name is required")
	}
	return &Profiler{llm: llm, model: model, newBackoff: newBackoff}, nil
}

// AnalyzeProfile extracts the Decision DNA for a validated profile.
func (p *Profiler) AnalyzeProfile(ctx context.Context, profile *domain.UserProfile) (*domain.DecisionDNA, error) {
	if err := validate.Profile(profile); err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With("agent", "profiler", "user_id", profile.UserID)
	log.Info("analyzing profile")

	payload, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("profiler: encode profile: %w", err)
	}
	prompt := fmt.Sprintf(profilerPromptTemplate, payload)

	var dna *domain.DecisionDNA
	err = retryCall(ctx, p.newBackoff, func() error {
		text, err := generateText(ctx, p.llm, p.model, prompt)
		if err != nil {
			return err
		}
		parsed, err := decodeJSON(text)
		if err != nil {
			return err
		}
		m, err := asObject(parsed)
		if err != nil {
			return err
		}
		if err := checkFields(m, dnaFields); err != nil {
			return err
		}

		risk, _ := toFloat(m["risk_tolerance"])
		horizon, _ := m["time_horizon_preference"].(string)
		values, _ := toStringList(m["value_priorities"])
		patterns, _ := m["decision_patterns"].(map[string]any)
		drivers, _ := toStringList(m["emotional_drivers"])

		dna = &domain.DecisionDNA{
			RiskTolerance:         risk,
			TimeHorizonPreference: horizon,
			ValuePriorities:       values,
			DecisionPatterns:      patterns,
			EmotionalDrivers:      drivers,
		}
		return nil
	})
	if err != nil {
		log.Error("decision DNA extraction failed", "error", err)
		return nil, fmt.Errorf("profiler: %w", err)
	}

	log.Info("decision DNA extracted", "risk_tolerance", dna.RiskTolerance)
	return dna, nil
}
