package domain

import "fmt"

// FutureScenario is one simulated branch of outcomes for a decision at a
// given timeline. Each timeline always yields exactly three scenarios
// (optimistic/realistic/pessimistic framings, not enforced by id).
type FutureScenario struct {
	ScenarioID    string            `json:"scenario_id"`
	Timeline      Timeline          `json:"timeline"`
	DecisionPath  string            `json:"decision_path"`
	Outcomes      map[string]string `json:"outcomes"`
	Probability   float64           `json:"probability"`
	KeyEvents     []string          `json:"key_events"`
	Risks         []string          `json:"risks"`
	Opportunities []string          `json:"opportunities"`
}

// ScenarioID derives the stable identifier for the index-th scenario of a
// timeline. IDs are assigned locally, never by the model, so they are
// unique within a timeline and reproducible for a fixed response order.
func ScenarioIDFor(timeline Timeline, index int) string {
	return fmt.Sprintf("%s_%d", timeline, index)
}

// Clone returns a deep copy of the scenario.
func (s *FutureScenario) Clone() *FutureScenario {
	if s == nil {
		return nil
	}
	cp := *s
	cp.KeyEvents = append([]string(nil), s.KeyEvents...)
	cp.Risks = append([]string(nil), s.Risks...)
	cp.Opportunities = append([]string(nil), s.Opportunities...)
	if s.Outcomes != nil {
		cp.Outcomes = make(map[string]string, len(s.Outcomes))
		for k, v := range s.Outcomes {
			cp.Outcomes[k] = v
		}
	}
	return &cp
}
