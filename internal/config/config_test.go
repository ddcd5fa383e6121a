package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futureyou/internal/config"
	"futureyou/internal/domain"
)

const validInput = `{
  "user_profile": {"user_id": "u1", "age": 30, "current_role": "Software Engineer"},
  "decision": "Should I switch careers to product management?",
  "timelines": ["1yr", "3yr"]
}`

func writeTempInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, "gemini-3-pro-preview", cfg.Model)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "results/outputs", cfg.OutputDir)
	assert.Equal(t, "results/visualizations", cfg.VisualsDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FUTUREYOU_MODEL", "gemini-test")
	t.Setenv("FUTUREYOU_PORT", "9999")
	t.Setenv("FUTUREYOU_USE_MOCK_LLM", "true")

	cfg := config.Load()
	assert.Equal(t, "gemini-test", cfg.Model)
	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.UseMockLLM)
}

func TestLoadAPIKeyFallback(t *testing.T) {
	t.Setenv("FUTUREYOU_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "from-gemini-var")

	cfg := config.Load()
	assert.Equal(t, "from-gemini-var", cfg.APIKey)
}

func TestLoadInput(t *testing.T) {
	in, err := config.LoadInput(writeTempInput(t, validInput))
	require.NoError(t, err)

	assert.Equal(t, "u1", in.UserProfile.UserID)
	assert.Equal(t, []domain.Timeline{domain.TimelineOneYear, domain.TimelineThreeYear}, in.Timelines)
}

func TestLoadInputDefaultsTimelines(t *testing.T) {
	noTimelines := strings.Replace(validInput, `"timelines": ["1yr", "3yr"]`, `"timelines": []`, 1)
	in, err := config.LoadInput(writeTempInput(t, noTimelines))
	require.NoError(t, err)
	assert.Equal(t, domain.AllTimelines(), in.Timelines)
}

func TestLoadInputMissingFields(t *testing.T) {
	_, err := config.LoadInput(writeTempInput(t, `{"decision": "Should I switch careers to product management?"}`))
	assert.True(t, domain.IsValidationError(err))

	_, err = config.LoadInput(writeTempInput(t, `{"user_profile": {"user_id": "u1"}}`))
	assert.True(t, domain.IsValidationError(err))

	_, err = config.LoadInput(writeTempInput(t, "{not json"))
	assert.Error(t, err)

	_, err = config.LoadInput(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCheckEnvironment(t *testing.T) {
	dir := t.TempDir()

	cfg := &config.Config{UseMockLLM: true, OutputDir: filepath.Join(dir, "out"), VisualsDir: filepath.Join(dir, "vis")}
	report := config.CheckEnvironment(cfg)
	assert.True(t, report.OK)
	assert.DirExists(t, cfg.OutputDir)

	report = config.CheckEnvironment(&config.Config{})
	assert.False(t, report.OK)

	report = config.CheckEnvironment(&config.Config{APIKey: "your_gemini_api_key_here"})
	assert.False(t, report.OK)

	report = config.CheckEnvironment(&config.Config{APIKey: "short"})
	assert.True(t, report.OK)
	assert.NotEmpty(t, report.Warnings)
}

func TestCheckInputFile(t *testing.T) {
	report := config.CheckInputFile(writeTempInput(t, validInput))
	assert.True(t, report.OK)

	bad := strings.Replace(validInput, `"age": 30`, `"age": 12`, 1)
	report = config.CheckInputFile(writeTempInput(t, bad))
	assert.False(t, report.OK)

	report = config.CheckInputFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.False(t, report.OK)
}
