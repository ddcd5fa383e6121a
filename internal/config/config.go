package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything the process needs from the environment. Passed
// explicitly into constructors; there is no process-wide client state.
type Config struct {
	APIKey     string
	Model      string
	Port       string
	OutputDir  string
	VisualsDir string
	UseMockLLM bool
}

// Load reads FUTUREYOU_* variables (GEMINI_API_KEY as a fallback for the
// key) and applies defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("FUTUREYOU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("model", "gemini-3-pro-preview")
	v.SetDefault("port", "8080")
	v.SetDefault("output-dir", "results/outputs")
	v.SetDefault("visuals-dir", "results/visualizations")

	apiKey := v.GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		APIKey:     apiKey,
		Model:      v.GetString("model"),
		Port:       v.GetString("port"),
		OutputDir:  v.GetString("output-dir"),
		VisualsDir: v.GetString("visuals-dir"),
		UseMockLLM: v.GetBool("use-mock-llm"),
	}
}
