package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futureyou/internal/domain"
)

func TestTimelineValid(t *testing.T) {
	for _, tl := range domain.AllTimelines() {
		assert.True(t, tl.Valid(), string(tl))
	}
	assert.False(t, domain.Timeline("10yr").Valid())
	assert.False(t, domain.Timeline("").Valid())
}

func TestScenarioIDFor(t *testing.T) {
	assert.Equal(t, "1yr_0", domain.ScenarioIDFor(domain.TimelineOneYear, 0))
	assert.Equal(t, "5yr_2", domain.ScenarioIDFor(domain.TimelineFiveYear, 2))
}

func TestSessionCloneIsDeep(t *testing.T) {
	session := &domain.Session{
		ID: "s1",
		Profile: &domain.UserProfile{
			UserID:      "u1",
			Age:         30,
			CurrentRole: "Engineer",
			Skills:      []string{"Go"},
		},
		DNA: &domain.DecisionDNA{
			RiskTolerance:    0.5,
			ValuePriorities:  []string{"growth"},
			DecisionPatterns: map[string]any{"style": "fast"},
		},
		Scenarios: []domain.FutureScenario{
			{ScenarioID: "1yr_0", Outcomes: map[string]string{"career": "up"}, KeyEvents: []string{"promo"}},
		},
		History:   []domain.ConversationTurn{{Role: domain.RoleUser, Text: "hi"}},
		CreatedAt: time.Now(),
	}

	clone := session.Clone()
	clone.Profile.Skills[0] = "Rust"
	clone.DNA.ValuePriorities[0] = "speed"
	clone.DNA.DecisionPatterns["style"] = "slow"
	clone.Scenarios[0].Outcomes["career"] = "down"
	clone.History[0].Text = "changed"

	assert.Equal(t, "Go", session.Profile.Skills[0])
	assert.Equal(t, "growth", session.DNA.ValuePriorities[0])
	assert.Equal(t, "fast", session.DNA.DecisionPatterns["style"])
	assert.Equal(t, "up", session.Scenarios[0].Outcomes["career"])
	assert.Equal(t, "hi", session.History[0].Text)
}

func TestCloneNilReceivers(t *testing.T) {
	var p *domain.UserProfile
	assert.Nil(t, p.Clone())
	var d *domain.DecisionDNA
	assert.Nil(t, d.Clone())
}

func TestDecisionDNAJSONTags(t *testing.T) {
	dna := &domain.DecisionDNA{
		RiskTolerance:         0.7,
		TimeHorizonPreference: "long-term",
		ValuePriorities:       []string{"growth"},
		DecisionPatterns:      map[string]any{"style": "analytical"},
		EmotionalDrivers:      []string{"curiosity"},
	}
	raw, err := json.Marshal(dna)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"risk_tolerance", "time_horizon_preference", "value_priorities", "decision_patterns", "emotional_drivers"} {
		assert.Contains(t, m, key)
	}
}

func TestAnalysisResultJSONRoundTrip(t *testing.T) {
	in := &domain.AnalysisResult{
		BestScenario:        "3yr_1",
		RiskAnalysis:        "moderate",
		OpportunityAnalysis: "strong",
		AlignmentScore:      map[string]float64{"3yr_1": 0.8},
		TradeOffs:           "speed against stability",
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"best_scenario"`)
	assert.Contains(t, string(raw), `"trade_offs"`)

	var out domain.AnalysisResult
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, *in, out)
}

func TestScenarioJSONTags(t *testing.T) {
	raw, err := json.Marshal(domain.FutureScenario{ScenarioID: "1yr_0", Timeline: domain.TimelineOneYear})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "scenario_id")
	assert.Contains(t, m, "decision_path")
	assert.Contains(t, m, "probability")
}
