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

const testDecision = "Should I switch careers to product management?"

func newSimulator(t *testing.T, client *llm.ScriptedClient) *agents.Simulator {
	t.Helper()
	s, err := agents.NewSimulator(client, "test-model", instant())
	require.NoError(t, err)
	return s
}

func TestSimulatorAssignsIDsInResponseOrder(t *testing.T) {
	client := llm.NewScriptedClient().Reply(scenariosJSON())
	s := newSimulator(t, client)

	scenarios, err := s.SimulateFutures(context.Background(), testDecision, testDNA(), domain.TimelineThreeYear)
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	assert.Equal(t, "3yr_0", scenarios[0].ScenarioID)
	assert.Equal(t, "3yr_1", scenarios[1].ScenarioID)
	assert.Equal(t, "3yr_2", scenarios[2].ScenarioID)
	assert.Equal(t, "stay and grow", scenarios[0].DecisionPath)
	assert.Equal(t, domain.TimelineThreeYear, scenarios[1].Timeline)
	assert.Equal(t, "promoted", scenarios[0].Outcomes["career"])
}

func TestSimulatorRejectsWrongScenarioCount(t *testing.T) {
	two := "[" + scenarioItemJSON("a path", 0.5) + "," + scenarioItemJSON("b path", 0.5) + "]"
	client := llm.NewScriptedClient().Reply(two)
	s := newSimulator(t, client)

	_, err := s.SimulateFutures(context.Background(), testDecision, testDNA(), domain.TimelineOneYear)
	require.Error(t, err)

	var schema *domain.SchemaViolationError
	require.True(t, errors.As(err, &schema))
	assert.Contains(t, schema.Reason, "expected 3 scenarios, got 2")
	assert.Equal(t, 3, client.CallCount())
}

func TestSimulatorRejectsObjectResponse(t *testing.T) {
	client := llm.NewScriptedClient().Reply(`{"scenarios": []}`)
	s := newSimulator(t, client)

	_, err := s.SimulateFutures(context.Background(), testDecision, testDNA(), domain.TimelineOneYear)
	require.Error(t, err)

	var schema *domain.SchemaViolationError
	require.True(t, errors.As(err, &schema))
	assert.Contains(t, schema.Reason, "array")
}

func TestSimulatorRejectsProbabilityOutOfRange(t *testing.T) {
	bad := "[" +
		scenarioItemJSON("a path", 0.5) + "," +
		scenarioItemJSON("b path", 1.2) + "," +
		scenarioItemJSON("c path", 0.1) + "]"
	client := llm.NewScriptedClient().Reply(bad)
	s := newSimulator(t, client)

	_, err := s.SimulateFutures(context.Background(), testDecision, testDNA(), domain.TimelineFiveYear)
	require.Error(t, err)

	var schema *domain.SchemaViolationError
	require.True(t, errors.As(err, &schema))
	assert.Equal(t, "probability", schema.Key)
}

func TestSimulatorValidatesInputsWithoutCalling(t *testing.T) {
	client := llm.NewScriptedClient().Reply(scenariosJSON())
	s := newSimulator(t, client)
	ctx := context.Background()

	_, err := s.SimulateFutures(ctx, "too short", testDNA(), domain.TimelineOneYear)
	assert.True(t, domain.IsValidationError(err))

	_, err = s.SimulateFutures(ctx, testDecision, testDNA(), domain.Timeline("10yr"))
	assert.True(t, domain.IsValidationError(err))

	_, err = s.SimulateFutures(ctx, testDecision, nil, domain.TimelineOneYear)
	assert.True(t, domain.IsValidationError(err))

	assert.Equal(t, 0, client.CallCount())
}
