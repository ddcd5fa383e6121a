package agents_test

import (
	"fmt"

	backoff "github.com/cenkalti/backoff/v4"

	"futureyou/internal/app/agents"
	"futureyou/internal/domain"
)

// instant removes the waiting between retries so failure paths run fast.
func instant() agents.BackoffFactory {
	return func() backoff.BackOff { return &backoff.ZeroBackOff{} }
}

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{
		UserID:      "u1",
		Age:         30,
		CurrentRole: "Software Engineer",
		Skills:      []string{"Go", "distributed systems"},
		LifeGoals:   []string{"financial independence"},
	}
}

func testDNA() *domain.DecisionDNA {
	return &domain.DecisionDNA{
		RiskTolerance:         0.7,
		TimeHorizonPreference: "long-term",
		ValuePriorities:       []string{"growth", "stability"},
		DecisionPatterns:      map[string]any{"style": "analytical"},
		EmotionalDrivers:      []string{"fear of stagnation"},
	}
}

const dnaJSON = `{
  "risk_tolerance": 0.7,
  "time_horizon_preference": "long-term",
  "value_priorities": ["growth", "stability"],
  "decision_patterns": {"style": "analytical"},
  "emotional_drivers": ["fear of stagnation"]
}`

func scenarioItemJSON(path string, prob float64) string {
	return fmt.Sprintf(`{
  "decision_path": %q,
  "outcomes": {"career": "promoted", "financial": "stable"},
  "probability": %g,
  "key_events": ["new role"],
  "risks": ["burnout"],
  "opportunities": ["wider network"]
}`, path, prob)
}

func scenariosJSON() string {
	return "[" +
		scenarioItemJSON("stay and grow", 0.5) + "," +
		scenarioItemJSON("switch to product", 0.3) + "," +
		scenarioItemJSON("start a company", 0.2) + "]"
}

func analysisJSON(best string) string {
	return fmt.Sprintf(`{
  "best_scenario": %q,
  "risk_analysis": "moderate downside across paths",
  "opportunity_analysis": "strong upside on the switch path",
  "alignment_score": {%q: 0.8},
  "trade_offs": "salary dip against long-term growth"
}`, best, best)
}

func testScenarios(timeline domain.Timeline) []domain.FutureScenario {
	out := make([]domain.FutureScenario, 3)
	for i := range out {
		out[i] = domain.FutureScenario{
			ScenarioID:   domain.ScenarioIDFor(timeline, i),
			Timeline:     timeline,
			DecisionPath: fmt.Sprintf("path %d", i),
			Outcomes:     map[string]string{"career": "ok"},
			Probability:  0.3,
		}
	}
	return out
}
