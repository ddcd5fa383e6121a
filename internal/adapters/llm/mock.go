package llm

import (
	"context"
	"regexp"
	"strings"

	"futureyou/internal/domain"
)

// MockClient is an offline TextGenerator for local development: it sniffs
// which agent is asking from the prompt's first line and returns a canned,
// schema-valid response. No network, no credentials.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

var scenarioIDPattern = regexp.MustCompile(`"scenario_id":\s*"([^"]+)"`)

func (m *MockClient) GenerateText(_ context.Context, _ string, prompt string) (string, error) {
	switch {
	case strings.HasPrefix(prompt, "Analyze this user profile"):
		return mockDNA, nil
	case strings.HasPrefix(prompt, "Simulate 3 different future scenarios"):
		return mockScenarios, nil
	case strings.HasPrefix(prompt, "Analyze these future scenarios"):
		// best_scenario must reference a real id, so lift the first one
		// out of the prompt's scenario dump.
		best := "1yr_0"
		if match := scenarioIDPattern.FindStringSubmatch(prompt); match != nil {
			best = match[1]
		}
		return strings.ReplaceAll(mockAnalysis, "__BEST__", best), nil
	default:
		return mockAdvice, nil
	}
}

const mockDNA = `{
  "risk_tolerance": 0.6,
  "time_horizon_preference": "medium",
  "value_priorities": ["career", "freedom", "health"],
  "decision_patterns": {"style": "analytical", "speed": "deliberate"},
  "emotional_drivers": ["growth", "security"]
}`

const mockScenarios = `[
  {
    "decision_path": "Commit fully to the new path",
    "outcomes": {"career": "Rapid growth", "finance": "Short-term dip, long-term gain"},
    "probability": 0.35,
    "key_events": ["First milestone reached", "New network formed"],
    "risks": ["Burnout"],
    "opportunities": ["Compounding skills"]
  },
  {
    "decision_path": "Transition gradually while keeping options open",
    "outcomes": {"career": "Steady progress", "finance": "Stable"},
    "probability": 0.5,
    "key_events": ["Side project ships"],
    "risks": ["Slower momentum"],
    "opportunities": ["Lower downside"]
  },
  {
    "decision_path": "Stay the current course",
    "outcomes": {"career": "Plateau", "finance": "Predictable"},
    "probability": 0.15,
    "key_events": ["Routine promotion cycle"],
    "risks": ["Regret", "Stagnation"],
    "opportunities": ["Security"]
  }
]`

const mockAnalysis = `{
  "best_scenario": "__BEST__",
  "risk_analysis": "The main risks concentrate in the aggressive path: burnout and short-term financial strain.",
  "opportunity_analysis": "Gradual transition captures most upside while keeping the downside bounded.",
  "alignment_score": {"__BEST__": 0.8},
  "trade_offs": "Speed of change versus stability of income and routine."
}`

const mockAdvice = `Recommendation: pursue the gradual transition. It matches your medium time horizon and balanced risk tolerance.

Next 30 days: scope a small proof-of-concept in the new direction. Next 60: validate it with people already on that path. Next 90: decide on full commitment using what you learned.

Warning signs: slipping deadlines on the side effort, or dread about the current role deepening. Success indicators: consistent weekly progress and growing pull from the new field. Contingency: if the experiment stalls twice in a row, pause and reassess the decision itself.`

var _ domain.TextGenerator = (*MockClient)(nil)
