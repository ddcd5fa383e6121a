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

// scenariosPerTimeline is the contract with the model: an optimistic, a
// realistic and a pessimistic framing, in any order.
const scenariosPerTimeline = 3

var scenarioFields = []fieldSpec{
	{key: "decision_path", kind: kindString},
	{key: "outcomes", kind: kindObject},
	{key: "probability", kind: kindUnitInterval},
	{key: "key_events", kind: kindStringList},
	{key: "risks", kind: kindStringList},
	{key: "opportunities", kind: kindStringList},
}

// Simulator generates the three future scenarios of one decision on one
// timeline.
type Simulator struct {
	llm        domain.TextGenerator
	model      string
	newBackoff BackoffFactory
}

func NewSimulator(llm domain.TextGenerator, model string, newBackoff BackoffFactory) (*Simulator, error) {
	if llm == nil {
		return nil, errors.New("simulator: model client is required")
	}
	if model == "" {
		return nil, errors.New("simulator: model name is required")
	}
	return &Simulator{llm: llm, model: model, newBackoff: newBackoff}, nil
}

// SimulateFutures returns exactly three scenarios for the decision over the
// given timeline. Scenario ids are assigned here, in response array order,
// as {timeline}_{index}, never by the model.
func (s *Simulator) SimulateFutures(ctx context.Context, decision string, dna *domain.DecisionDNA, timeline domain.Timeline) ([]domain.FutureScenario, error) {
	decision, err := validate.Decision(decision)
	if err != nil {
		return nil, err
	}
	if err := validate.Timeline(timeline); err != nil {
		return nil, err
	}
	if dna == nil {
		return nil, &domain.ValidationError{Field: "decision_dna", Reason: "missing required field"}
	}

	log := observability.LoggerFromContext(ctx).With("agent", "simulator", "timeline", timeline)
	log.Info("simulating futures")

	dnaJSON, err := json.MarshalIndent(dna, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("simulator: encode dna: %w", err)
	}
	prompt := fmt.Sprintf(simulatorPromptTemplate, decision, timeline, dnaJSON)

	var scenarios []domain.FutureScenario
	err = retryCall(ctx, s.newBackoff, func() error {
		text, err := generateText(ctx, s.llm, s.model, prompt)
		if err != nil {
			return err
		}
		parsed, err := decodeJSON(text)
		if err != nil {
			return err
		}
		items, err := asArray(parsed)
		if err != nil {
			return err
		}
		if len(items) != scenariosPerTimeline {
			return &domain.SchemaViolationError{
				Key:    "response",
				Reason: fmt.Sprintf("expected %d scenarios, got %d", scenariosPerTimeline, len(items)),
			}
		}

		out := make([]domain.FutureScenario, 0, scenariosPerTimeline)
		for i, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				return &domain.SchemaViolationError{
					Key:    fmt.Sprintf("scenario %d", i),
					Reason: "must be a JSON object",
				}
			}
			if err := checkFields(item, scenarioFields); err != nil {
				return err
			}

			path, _ := item["decision_path"].(string)
			outcomes, _ := toStringMap(item["outcomes"])
			prob, _ := toFloat(item["probability"])
			keyEvents, _ := toStringList(item["key_events"])
			risks, _ := toStringList(item["risks"])
			opportunities, _ := toStringList(item["opportunities"])

			out = append(out, domain.FutureScenario{
				ScenarioID:    domain.ScenarioIDFor(timeline, i),
				Timeline:      timeline,
				DecisionPath:  path,
				Outcomes:      outcomes,
				Probability:   prob,
				KeyEvents:     keyEvents,
				Risks:         risks,
				Opportunities: opportunities,
			})
		}
		scenarios = out
		return nil
	})
	if err != nil {
		log.Error("scenario simulation failed", "error", err)
		return nil, fmt.Errorf("simulator: timeline %s: %w", timeline, err)
	}

	log.Info("scenarios generated", "count", len(scenarios))
	return scenarios, nil
}
