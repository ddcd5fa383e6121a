package agents_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futureyou/internal/adapters/llm"
	"futureyou/internal/app/agents"
	"futureyou/internal/domain"
)

func newProfiler(t *testing.T, client *llm.ScriptedClient) *agents.Profiler {
	t.Helper()
	p, err := agents.NewProfiler(client, "test-model", instant())
	require.NoError(t, err)
	return p
}

func TestProfilerExtractsDNA(t *testing.T) {
	client := llm.NewScriptedClient().Reply(dnaJSON)
	p := newProfiler(t, client)

	dna, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.NoError(t, err)

	assert.InDelta(t, 0.7, dna.RiskTolerance, 1e-9)
	assert.Equal(t, "long-term", dna.TimeHorizonPreference)
	assert.Equal(t, []string{"growth", "stability"}, dna.ValuePriorities)
	assert.Equal(t, []string{"fear of stagnation"}, dna.EmotionalDrivers)
	assert.Equal(t, 1, client.CallCount())
}

func TestProfilerStripsCodeFences(t *testing.T) {
	client := llm.NewScriptedClient().Reply("```json\n" + dnaJSON + "\n```")
	p := newProfiler(t, client)

	dna, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, "long-term", dna.TimeHorizonPreference)
}

func TestProfilerRetriesMalformedResponse(t *testing.T) {
	client := llm.NewScriptedClient().Reply("I am sorry, I cannot answer that.")
	p := newProfiler(t, client)

	_, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.Error(t, err)

	var malformed *domain.MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, 3, client.CallCount())
}

func TestProfilerEmptyResponse(t *testing.T) {
	client := llm.NewScriptedClient().Reply("   ")
	p := newProfiler(t, client)

	_, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyResponse))
	assert.Equal(t, 3, client.CallCount())
}

func TestProfilerMissingKey(t *testing.T) {
	client := llm.NewScriptedClient().Reply(`{"risk_tolerance": 0.5}`)
	p := newProfiler(t, client)

	_, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.Error(t, err)

	var schema *domain.SchemaViolationError
	assert.True(t, errors.As(err, &schema))
}

func TestProfilerRiskToleranceOutOfRange(t *testing.T) {
	client := llm.NewScriptedClient().Reply(`{
  "risk_tolerance": 1.5,
  "time_horizon_preference": "long-term",
  "value_priorities": ["growth"],
  "decision_patterns": {},
  "emotional_drivers": ["curiosity"]
}`)
	p := newProfiler(t, client)

	_, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.Error(t, err)

	var schema *domain.SchemaViolationError
	require.True(t, errors.As(err, &schema))
	assert.Equal(t, "risk_tolerance", schema.Key)
}

func TestProfilerRecoversOnSecondAttempt(t *testing.T) {
	client := llm.NewScriptedClient().
		Reply("garbage that is not structured at all").
		Reply(dnaJSON)
	p := newProfiler(t, client)

	dna, err := p.AnalyzeProfile(context.Background(), testProfile())
	require.NoError(t, err)
	assert.InDelta(t, 0.7, dna.RiskTolerance, 1e-9)
	assert.Equal(t, 2, client.CallCount())
}

func TestProfilerInvalidProfileMakesNoCalls(t *testing.T) {
	client := llm.NewScriptedClient().Reply(dnaJSON)
	p := newProfiler(t, client)

	profile := testProfile()
	profile.Age = 12

	_, err := p.AnalyzeProfile(context.Background(), profile)
	assert.True(t, domain.IsValidationError(err))
	assert.Equal(t, 0, client.CallCount())
}
