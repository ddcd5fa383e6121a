package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"futureyou/internal/domain"
	"futureyou/internal/observability"
)

var analysisFields = []fieldSpec{
	{key: "best_scenario", kind: kindString},
	{key: "risk_analysis", kind: kindString},
	{key: "opportunity_analysis", kind: kindString},
	{key: "alignment_score", kind: kindObject},
	{key: "trade_offs", kind: kindString},
}

// Analyzer compares the full accumulated scenario set against the user's
// Decision DNA.
type Analyzer struct {
	llm        domain.TextGenerator
	model      string
	newBackoff BackoffFactory
}

func NewAnalyzer(llm domain.TextGenerator, model string, newBackoff BackoffFactory) (*Analyzer, error) {
	if llm == nil {
		return nil, errors.New("analyzer: model client is required")
	}
	if model == "" {
		return nil, errors.New("analyzer: model name is required")
	}
	return &Analyzer{llm: llm, model: model, newBackoff: newBackoff}, nil
}

// AnalyzeScenarios produces one comparative analysis over all scenarios.
// An empty scenario set short-circuits before any external call; a
// best_scenario that does not reference a supplied scenario id counts as a
// schema violation, so the model gets its retries to fix it.
func (a *Analyzer) AnalyzeScenarios(ctx context.Context, scenarios []domain.FutureScenario, dna *domain.DecisionDNA) (*domain.AnalysisResult, error) {
	if len(scenarios) == 0 {
		return nil, &domain.ValidationError{Field: "scenarios", Reason: "no scenarios provided for analysis"}
	}
	if dna == nil {
		return nil, &domain.ValidationError{Field: "decision_dna", Reason: "missing required field"}
	}

	log := observability.LoggerFromContext(ctx).With("agent", "analyzer")
	log.Info("analyzing scenarios", "count", len(scenarios))

	knownIDs := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		knownIDs[s.ScenarioID] = true
	}

	scenarioJSON, err := json.MarshalIndent(scenarios, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("analyzer: encode scenarios: %w", err)
	}
	dnaJSON, err := json.MarshalIndent(dna, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("analyzer: encode dna: %w", err)
	}
	prompt := fmt.Sprintf(analyzerPromptTemplate, scenarioJSON, dnaJSON)

	var analysis *domain.AnalysisResult
	err = retryCall(ctx, a.newBackoff, func() error {
		text, err := generateText(ctx, a.llm, a.model, prompt)
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
		if err := checkFields(m, analysisFields); err != nil {
			return err
		}

		best, _ := m["best_scenario"].(string)
		if !knownIDs[best] {
			return &domain.SchemaViolationError{
				Key:    "best_scenario",
				Reason: fmt.Sprintf("references unknown scenario id %q", best),
			}
		}
		scores, ok := toScoreMap(m["alignment_score"])
		if !ok {
			return &domain.SchemaViolationError{Key: "alignment_score", Reason: "values must be numbers"}
		}

		riskText, _ := m["risk_analysis"].(string)
		oppText, _ := m["opportunity_analysis"].(string)
		tradeOffs, _ := m["trade_offs"].(string)

		analysis = &domain.AnalysisResult{
			BestScenario:        best,
			RiskAnalysis:        riskText,
			OpportunityAnalysis: oppText,
			AlignmentScore:      scores,
			TradeOffs:           tradeOffs,
		}
		return nil
	})
	if err != nil {
		log.Error("scenario analysis failed", "error", err)
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	log.Info("analysis complete", "best_scenario", analysis.BestScenario)
	return analysis, nil
}
