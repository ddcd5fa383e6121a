package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futureyou/internal/adapters/report"
	"futureyou/internal/domain"
)

func sampleResult() (*domain.SimulationResult, *domain.UserProfile, string) {
	profile := &domain.UserProfile{UserID: "u1", Age: 30, CurrentRole: "Software Engineer"}
	result := &domain.SimulationResult{
		SessionID: "session_42",
		DNA: &domain.DecisionDNA{
			RiskTolerance:         0.7,
			TimeHorizonPreference: "long-term",
			ValuePriorities:       []string{"growth", "stability"},
			DecisionPatterns:      map[string]any{"style": "analytical"},
			EmotionalDrivers:      []string{"curiosity"},
		},
		Scenarios: []domain.FutureScenario{
			{
				ScenarioID:   "1yr_0",
				Timeline:     domain.TimelineOneYear,
				DecisionPath: "switch to product",
				Outcomes:     map[string]string{"career": "reset"},
				Probability:  0.4,
				KeyEvents:    []string{"bootcamp"},
			},
		},
		Analysis: &domain.AnalysisResult{
			BestScenario:        "1yr_0",
			RiskAnalysis:        "moderate",
			OpportunityAnalysis: "strong",
			AlignmentScore:      map[string]float64{"1yr_0": 0.8},
			TradeOffs:           "salary dip against growth",
		},
		Advice: "Take the year to build product skills on the side, then make the jump.",
	}
	return result, profile, "Should I switch careers to product management?"
}

func TestWriteAllProducesEveryFile(t *testing.T) {
	dir := t.TempDir()
	result, profile, decision := sampleResult()

	files, err := report.NewWriter(dir).WriteAll(result, profile, decision)
	require.NoError(t, err)

	assert.FileExists(t, files.HTMLReport)
	assert.FileExists(t, files.JSONResult)
	assert.FileExists(t, files.JSONSummary)
	assert.FileExists(t, filepath.Join(dir, "index.html"))

	html, err := os.ReadFile(files.HTMLReport)
	require.NoError(t, err)
	assert.Contains(t, string(html), "session_42")
	assert.Contains(t, string(html), "switch to product")
	assert.Contains(t, string(html), "40%")
}

func TestWriteAllResultJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	result, profile, decision := sampleResult()

	files, err := report.NewWriter(dir).WriteAll(result, profile, decision)
	require.NoError(t, err)

	raw, err := os.ReadFile(files.JSONResult)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, "session_42", parsed["session_id"])
	assert.Contains(t, parsed, "decision_dna")
	assert.Contains(t, parsed, "scenarios")
	assert.Contains(t, parsed, "advice")
}

func TestWriteAllCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	result, profile, decision := sampleResult()

	_, err := report.NewWriter(dir).WriteAll(result, profile, decision)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestWriteDNAChart(t *testing.T) {
	dir := t.TempDir()
	result, _, _ := sampleResult()

	path, err := report.WriteDNAChart(result, dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	svg, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
